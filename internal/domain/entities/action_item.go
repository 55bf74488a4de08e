package entities

// PICPlaceholder is rendered wherever a person in charge would appear.
// Ownership is always assigned by a human after generation.
const PICPlaceholder = "[To be assigned]"

// MOMItem is one discussion point together with its follow-up action
type MOMItem struct {
	Title      string `json:"title"`
	Discussion string `json:"discussion"`
	ActionItem string `json:"action_item"`
	PIC        string `json:"pic"`
}
