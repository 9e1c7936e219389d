package models

// ChecklistItem is a single entry in a checklist. Items are toggled and
// deleted through their parent checklist's endpoints.
type ChecklistItem struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

// Checklist is a shared to-do list.
type Checklist struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Emoji       string          `json:"emoji"`
	Creator     *UserProfile    `json:"creator,omitempty"`
	Items       []ChecklistItem `json:"items"`
}

// ChecklistInput is the request body for creating a checklist.
type ChecklistInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji"`
}
