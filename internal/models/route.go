package models

// Route is the routes table row.
type Route struct {
	RouteID     string `db:"route_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}
