package models

// TagColor is one of the fixed palette colors a tag may carry.
type TagColor string

const (
	TagRose   TagColor = "rose"
	TagGold   TagColor = "gold"
	TagGreen  TagColor = "green"
	TagBlue   TagColor = "blue"
	TagPurple TagColor = "purple"
)

// TagColors lists the palette in display order.
var TagColors = []TagColor{TagRose, TagGold, TagGreen, TagBlue, TagPurple}

// Valid reports whether the color belongs to the palette.
func (c TagColor) Valid() bool {
	switch c {
	case TagRose, TagGold, TagGreen, TagBlue, TagPurple:
		return true
	}
	return false
}

// Tag is a label attached to an event.
type Tag struct {
	Label string   `json:"label"`
	Color TagColor `json:"color"`
}

// Event is a planned date or occasion shared by the couple.
type Event struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`

	// Date is the calendar day of the event. Time is optional ("15:04" or
	// empty) and kept separate from Date, matching the API.
	Date Date   `json:"event_date"`
	Time string `json:"event_time,omitempty"`

	Venue   string       `json:"venue,omitempty"`
	Notes   string       `json:"notes,omitempty"`
	Emoji   string       `json:"emoji"`
	Tags    []Tag        `json:"tags"`
	Creator *UserProfile `json:"creator,omitempty"`
}

// EventInput is the request body for creating or updating an event.
type EventInput struct {
	Title string `json:"title"`
	Date  string `json:"event_date"`
	Time  string `json:"event_time,omitempty"`
	Venue string `json:"venue,omitempty"`
	Notes string `json:"notes,omitempty"`
	Emoji string `json:"emoji"`
	Tags  []Tag  `json:"tags"`
}
