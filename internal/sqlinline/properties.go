package sqlinline

const QListSavedPropertiesByAccount = `--sql fc0718c4-dd36-436e-842a-a9dbf055e74e
select id, account_id, user_id, property_name, city, state, strategy, deal_grade, created_at
from saved_properties
where account_id = $1
order by created_at desc
limit $2;
`
