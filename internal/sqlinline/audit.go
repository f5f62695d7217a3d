package sqlinline

const QInsertAuthzEvent = `--sql 535fbcc3-e3ce-4f0c-b12f-0bd6a7c40820
insert into authz_events (account_id, user_id, request_id, capability, allowed, reason, country, created_at)
values ($1, $2, $3, $4, $5, $6, $7, now());
`
