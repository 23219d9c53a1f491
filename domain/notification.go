package domain

// Notification mirrors the notification service DTO. Read is client-local
// state only: the service is fed by asynchronous events and exposes no
// mark-as-read endpoint, so the flag never round-trips to the server.
type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Message   string `json:"message"`
	CreatedAt Time   `json:"createdAt"`
	Read      bool   `json:"-"`
}
