package entities

// TokenUsage reports the model token accounting for one generation
type TokenUsage struct {
	Input  int `json:"input"`
	Output int `json:"output"`
}

// MOMResult is the structured output of the generator
type MOMResult struct {
	Items  []MOMItem
	Tokens TokenUsage
}

// FormattedMOM is the normalized minutes record returned to the caller
type FormattedMOM struct {
	Date      string    `json:"date"`
	Attendees []string  `json:"attendees"`
	Purpose   string    `json:"purpose"`
	Items     []MOMItem `json:"items"`
}

// CopyBlocks holds the text renderings of a FormattedMOM
type CopyBlocks struct {
	PPTBullets string `json:"ppt_bullets"`
	Markdown   string `json:"markdown"`
	Plaintext  string `json:"plaintext"`
}

// GenerationResponse is the full result of the minutes pipeline
type GenerationResponse struct {
	MOM        FormattedMOM `json:"mom"`
	CopyBlocks CopyBlocks   `json:"copy_blocks"`
	Tokens     TokenUsage   `json:"tokens"`
}
