package domain

// Person mirrors the connections service node: the platform user id plus the
// display name the graph knows the user by. ID identifies the graph record,
// UserID addresses every connection mutation endpoint.
type Person struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
}
