package domain

// ClientStatus is whether a client is currently visited on its route.
type ClientStatus string

const (
	ClientActive   ClientStatus = "ACTIVE"
	ClientInactive ClientStatus = "INACTIVE"
)

// GeoPoint is an optional client location.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Client is a person or business enrolled on a route. Order is only meaningful
// while the client is Active; Inactive clients keep whatever order they had.
type Client struct {
	ClientID             string       `json:"clientID"`
	RouteID              string       `json:"routeID"`
	IdentificationNumber string       `json:"identificationNumber"`
	Name                 string       `json:"name"`
	Alias                string       `json:"alias"`
	Address              string       `json:"address"`
	Phone                string       `json:"phone"`
	Order                int          `json:"order"`
	Status               ClientStatus `json:"status"`
	Location             *GeoPoint    `json:"location,omitempty"`
	AuditFields
}

// IsActive reports whether the client takes part in its route's ordering.
func (c Client) IsActive() bool {
	return c.Status == ClientActive
}

// ClientMutation is one client record that must be written as part of a batch.
type ClientMutation struct {
	Client          Client `json:"client"`
	PreviousRouteID string `json:"previousRouteID"`
	PreviousOrder   int    `json:"previousOrder"`
}
