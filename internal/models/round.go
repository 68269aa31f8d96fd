package models

// Round is the last resolved round, kept so a reconnecting page can redraw it
type Round struct {
	Number   int     `json:"number"`
	Player   Choice  `json:"player"`
	Computer Choice  `json:"computer"`
	Outcome  Outcome `json:"outcome"`
	Streak   string  `json:"streak,omitempty"`
}

// SSEMessage represents a message sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "scores", "lock")
	Data  string // HTML content or data to send
}
