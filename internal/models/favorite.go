package models

// FavoriteEntry is one favorite currency scoped to a client identifier. The
// id is server-assigned and opaque; the client never invents one.
// swagger:model FavoriteEntry
type FavoriteEntry struct {
	// Server-assigned identifier
	// example: 42
	ID int64 `json:"id"`

	// Currency code
	// example: USD
	Code string `json:"code"`

	// Creation timestamp as reported by the profile backend
	// example: 2025-09-02T10:00:00
	CreatedAt string `json:"created_at"`

	// Owning client identifier
	ClientID string `json:"client_id"`
}

// HistoryEvent is one usage event recorded by the profile backend.
// swagger:model HistoryEvent
type HistoryEvent struct {
	ID        int64  `json:"id"`
	ClientID  string `json:"client_id"`
	Event     string `json:"event"`
	Payload   string `json:"payload"`
	CreatedAt string `json:"created_at"`
}
