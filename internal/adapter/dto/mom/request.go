package mom

// GenerateRequest represents the request to generate meeting minutes.
// Optional scalars are pointers so that an explicit empty value can be told
// apart from an omitted one.
type GenerateRequest struct {
	RawNotes    string   `json:"raw_notes" validate:"required" example:"We discussed Q3 budget. Decided to increase marketing spend by 10%. Bob will prepare the revised budget by Friday."`
	MeetingDate *string  `json:"meeting_date,omitempty" example:"2024-07-01"`
	Attendees   []string `json:"attendees,omitempty" example:"Alice,Bob"`
	Purpose     *string  `json:"purpose,omitempty" example:"Q3 budget review"`
	Style       *string  `json:"style,omitempty" enums:"short,detailed" default:"short"`
}
