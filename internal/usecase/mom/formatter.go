package mom

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

const dateLayout = "2006-01-02"

// Formatter renders generator output into the response shape. It holds no state.
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format builds the normalized record and all three copy blocks.
// now is only consulted when the request has no meeting date.
func (f *Formatter) Format(result *entities.MOMResult, req entities.GenerationRequest, now time.Time) *entities.GenerationResponse {
	mom := Normalize(result, req, now)
	return &entities.GenerationResponse{
		MOM: mom,
		CopyBlocks: entities.CopyBlocks{
			PPTBullets: RenderPPTBullets(mom),
			Markdown:   RenderMarkdown(mom),
			Plaintext:  RenderPlaintext(mom),
		},
		Tokens: result.Tokens,
	}
}

// Normalize merges request metadata with the generated items
func Normalize(result *entities.MOMResult, req entities.GenerationRequest, now time.Time) entities.FormattedMOM {
	date := req.MeetingDate
	if date == "" {
		date = now.UTC().Format(dateLayout)
	}

	attendees := make([]string, len(req.Attendees))
	copy(attendees, req.Attendees)

	items := make([]entities.MOMItem, 0, len(result.Items))
	for _, it := range result.Items {
		it.PIC = ""
		items = append(items, it)
	}

	return entities.FormattedMOM{
		Date:      date,
		Attendees: attendees,
		Purpose:   req.Purpose,
		Items:     items,
	}
}

// RenderPPTBullets renders one slide bullet group per item
func RenderPPTBullets(mom entities.FormattedMOM) string {
	blocks := make([]string, 0, len(mom.Items))
	for _, it := range mom.Items {
		blocks = append(blocks, fmt.Sprintf("• %s\n  - Discussion: %s\n  - Action: %s\n  - PIC: %s",
			it.Title, it.Discussion, it.ActionItem, entities.PICPlaceholder))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderMarkdown renders the minutes as a Markdown document
func RenderMarkdown(mom entities.FormattedMOM) string {
	var sb strings.Builder
	sb.WriteString("# Meeting Minutes\n\n")
	fmt.Fprintf(&sb, "**Date:** %s\n", mom.Date)
	if len(mom.Attendees) > 0 {
		fmt.Fprintf(&sb, "**Attendees:** %s\n", strings.Join(mom.Attendees, ", "))
	}
	if mom.Purpose != "" {
		fmt.Fprintf(&sb, "**Purpose:** %s\n", mom.Purpose)
	}
	sb.WriteString("\n## Discussion Items\n\n")

	for i, it := range mom.Items {
		fmt.Fprintf(&sb, "### %d. %s\n\n", i+1, it.Title)
		fmt.Fprintf(&sb, "**Discussion:** %s\n\n", it.Discussion)
		fmt.Fprintf(&sb, "**Action Item:** %s\n\n", it.ActionItem)
		fmt.Fprintf(&sb, "**PIC:** _%s_\n\n", entities.PICPlaceholder)
	}
	return sb.String()
}

// RenderPlaintext renders the minutes without any markup
func RenderPlaintext(mom entities.FormattedMOM) string {
	var sb strings.Builder
	sb.WriteString("MEETING MINUTES\n\n")
	fmt.Fprintf(&sb, "Date: %s\n", mom.Date)
	if len(mom.Attendees) > 0 {
		fmt.Fprintf(&sb, "Attendees: %s\n", strings.Join(mom.Attendees, ", "))
	}
	if mom.Purpose != "" {
		fmt.Fprintf(&sb, "Purpose: %s\n", mom.Purpose)
	}
	sb.WriteString("\n=== DISCUSSION ITEMS ===\n\n")

	for i, it := range mom.Items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, it.Title)
		fmt.Fprintf(&sb, "   Discussion: %s\n", it.Discussion)
		fmt.Fprintf(&sb, "   Action Item: %s\n", it.ActionItem)
		fmt.Fprintf(&sb, "   PIC: %s\n\n", entities.PICPlaceholder)
	}
	return sb.String()
}
