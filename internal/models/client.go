package models

import "database/sql"

// Client is the clients table row. Latitude and longitude are either both set or both null.
type Client struct {
	ClientID             string          `db:"client_id"`
	RouteID              string          `db:"route_id"`
	IdentificationNumber string          `db:"identification_number"`
	Name                 string          `db:"name"`
	Alias                string          `db:"alias"`
	Address              string          `db:"address"`
	Phone                string          `db:"phone"`
	RouteOrder           int             `db:"route_order"`
	Status               string          `db:"status"`
	Latitude             sql.NullFloat64 `db:"latitude"`
	Longitude            sql.NullFloat64 `db:"longitude"`
	AuditFields
}
