package sqlinline

const QSelectSubscriptionByAccount = `--sql d45daa73-2470-4592-921a-4acc7d97d244
select id, account_id, status, plan_name, provider,
       provider_customer_id, provider_subscription_id,
       current_period_end, cancel_at_period_end,
       created_at, updated_at
from subscriptions
where account_id = $1
limit 1;
`

const QUpsertSubscriptionStatus = `--sql 80e809f1-4784-4ada-8512-99006b58845a
insert into subscriptions (account_id, status, plan_name, provider, created_at, updated_at)
values ($1, $2, 'free', 'manual', now(), now())
on conflict (account_id) do update set
    status = excluded.status,
    updated_at = now();
`

const QUpsertSubscriptionPlan = `--sql 9680f8c5-b713-4d52-943f-a18748b8c6f0
insert into subscriptions (account_id, status, plan_name, provider, created_at, updated_at)
values ($1, 'active', $2, 'manual', now(), now())
on conflict (account_id) do update set
    plan_name = excluded.plan_name,
    status = 'active',
    updated_at = now();
`
