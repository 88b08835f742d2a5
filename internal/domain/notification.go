package domain

type Notification struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt,omitempty"`
}
