package domain

// Route is a named collection zone.
type Route struct {
	RouteID     string `json:"routeID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
