package sqlinline

const QCountSavedProperties = `--sql e1866307-0d43-46c6-ba99-4f280baa9ece
select count(*)
from saved_properties
where account_id = $1;
`

const QCountScenarios = `--sql 22e628c5-ac5d-481a-a74c-dab3272da358
select count(*)
from scenarios
where account_id = $1;
`
