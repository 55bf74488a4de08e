package mom

// GenerateResponse represents the generated minutes and their text renderings
type GenerateResponse struct {
	MOM        MOM        `json:"mom"`
	CopyBlocks CopyBlocks `json:"copy_blocks"`
	Tokens     Tokens     `json:"tokens"`
}

// MOM represents the normalized minutes record
type MOM struct {
	Date      string    `json:"date" example:"2024-07-01"`
	Attendees []string  `json:"attendees"`
	Purpose   string    `json:"purpose"`
	Items     []MOMItem `json:"items"`
}

// MOMItem represents one discussion point and its action item
type MOMItem struct {
	Title      string `json:"title"`
	Discussion string `json:"discussion"`
	ActionItem string `json:"action_item"`
	PIC        string `json:"pic"` // always empty, assigned by a human
}

// CopyBlocks represents the three ready-to-paste renderings
type CopyBlocks struct {
	PPTBullets string `json:"ppt_bullets"`
	Markdown   string `json:"markdown"`
	Plaintext  string `json:"plaintext"`
}

// Tokens represents model token usage
type Tokens struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}
