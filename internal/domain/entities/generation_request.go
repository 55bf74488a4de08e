package entities

// Style controls how much detail the generated minutes carry
type Style string

const (
	StyleShort    Style = "short"
	StyleDetailed Style = "detailed"
)

// IsValid checks if the style is one of the supported values
func (s Style) IsValid() bool {
	switch s {
	case StyleShort, StyleDetailed:
		return true
	}
	return false
}

// GenerationRequest is a validated request with defaults applied.
// MeetingDate and Purpose are empty when the caller omitted them.
type GenerationRequest struct {
	RawNotes    string
	MeetingDate string
	Attendees   []string
	Purpose     string
	Style       Style
}
