package sqlinline

const QInsertDonation = `--sql c602e048-4835-44f1-b6a5-0262a0cba29a
insert into donations(donor_name, donor_phone, food_type, quantity_kg, description, latitude, longitude, address, status, created_at, expires_at)
values ($1::text, $2::text, $3::text, $4::double precision, $5::text, $6::double precision, $7::double precision, $8::text, $9::text, now(), $10::timestamptz)
returning id, created_at;
`

const QGetDonation = `--sql 29d559ec-94c8-44d0-8165-8f31086793e1
select id, donor_name, donor_phone, food_type, quantity_kg, description, latitude, longitude, address, status, created_at, expires_at, assigned_volunteer_id, assigned_at
from donations
where id = $1::bigint;
`

const QListDonations = `--sql 356dbebd-9e8d-4de6-b68f-11378da2b7c8
select id, donor_name, donor_phone, food_type, quantity_kg, description, latitude, longitude, address, status, created_at, expires_at, assigned_volunteer_id, assigned_at
from donations
order by created_at desc
limit $1::int offset $2::int;
`

const QListDonationsByStatus = `--sql d4be38ad-cc63-4ed0-bf87-66d0f17ff35e
select id, donor_name, donor_phone, food_type, quantity_kg, description, latitude, longitude, address, status, created_at, expires_at, assigned_volunteer_id, assigned_at
from donations
where status = $1::text
order by expires_at asc;
`

const QUpdateDonationStatus = `--sql 070b2671-94df-453f-b691-4396f6101c6f
update donations
set status = $3::text,
    assigned_volunteer_id = coalesce($4::bigint, assigned_volunteer_id),
    assigned_at = coalesce($5::timestamptz, assigned_at)
where id = $1::bigint and status = $2::text;
`

const QDeleteExpiredDonations = `--sql af5283b1-59bd-4fe7-8d43-a835584742c2
delete from donations
where expires_at < $1::timestamptz
returning id;
`

const QHealthCheck = `--sql 696e6aa4-040e-40c1-810d-03721fc0450f
select 1;
`
