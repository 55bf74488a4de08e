package mom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

var fixedNow = time.Date(2024, time.July, 15, 9, 30, 0, 0, time.UTC)

func sampleResult() *entities.MOMResult {
	return &entities.MOMResult{
		Items: []entities.MOMItem{
			{Title: "Q3 budget", Discussion: "Marketing spend up 10%", ActionItem: "Prepare the revised budget by Friday", PIC: "Bob"},
			{Title: "Hiring", Discussion: "Two roles open", ActionItem: "Post job ads"},
		},
		Tokens: entities.TokenUsage{Input: 100, Output: 40},
	}
}

func TestFormat_FullRequest(t *testing.T) {
	req := entities.GenerationRequest{
		RawNotes:    "notes",
		MeetingDate: "2024-07-01",
		Attendees:   []string{"Alice", "Bob"},
		Purpose:     "Quarterly planning",
		Style:       entities.StyleShort,
	}

	resp := NewFormatter().Format(sampleResult(), req, fixedNow)

	assert.Equal(t, "2024-07-01", resp.MOM.Date)
	assert.Equal(t, []string{"Alice", "Bob"}, resp.MOM.Attendees)
	assert.Equal(t, "Quarterly planning", resp.MOM.Purpose)
	assert.Equal(t, entities.TokenUsage{Input: 100, Output: 40}, resp.Tokens)
	require.Len(t, resp.MOM.Items, 2)
	assert.Empty(t, resp.MOM.Items[0].PIC)

	assert.Equal(t,
		"• Q3 budget\n  - Discussion: Marketing spend up 10%\n  - Action: Prepare the revised budget by Friday\n  - PIC: [To be assigned]"+
			"\n\n"+
			"• Hiring\n  - Discussion: Two roles open\n  - Action: Post job ads\n  - PIC: [To be assigned]",
		resp.CopyBlocks.PPTBullets)

	assert.Equal(t,
		"# Meeting Minutes\n\n"+
			"**Date:** 2024-07-01\n"+
			"**Attendees:** Alice, Bob\n"+
			"**Purpose:** Quarterly planning\n"+
			"\n## Discussion Items\n\n"+
			"### 1. Q3 budget\n\n**Discussion:** Marketing spend up 10%\n\n**Action Item:** Prepare the revised budget by Friday\n\n**PIC:** _[To be assigned]_\n\n"+
			"### 2. Hiring\n\n**Discussion:** Two roles open\n\n**Action Item:** Post job ads\n\n**PIC:** _[To be assigned]_\n\n",
		resp.CopyBlocks.Markdown)

	assert.Equal(t,
		"MEETING MINUTES\n\n"+
			"Date: 2024-07-01\n"+
			"Attendees: Alice, Bob\n"+
			"Purpose: Quarterly planning\n"+
			"\n=== DISCUSSION ITEMS ===\n\n"+
			"1. Q3 budget\n   Discussion: Marketing spend up 10%\n   Action Item: Prepare the revised budget by Friday\n   PIC: [To be assigned]\n\n"+
			"2. Hiring\n   Discussion: Two roles open\n   Action Item: Post job ads\n   PIC: [To be assigned]\n\n",
		resp.CopyBlocks.Plaintext)
}

func TestFormat_DateFallbackAndOptionalLines(t *testing.T) {
	req := entities.GenerationRequest{RawNotes: "notes", Attendees: []string{}, Style: entities.StyleShort}

	resp := NewFormatter().Format(sampleResult(), req, fixedNow)

	assert.Equal(t, "2024-07-15", resp.MOM.Date)
	assert.NotNil(t, resp.MOM.Attendees)
	assert.Empty(t, resp.MOM.Purpose)
	assert.True(t, strings.HasPrefix(resp.CopyBlocks.Markdown, "# Meeting Minutes\n\n**Date:** 2024-07-15\n\n## Discussion Items"))
	assert.True(t, strings.HasPrefix(resp.CopyBlocks.Plaintext, "MEETING MINUTES\n\nDate: 2024-07-15\n\n=== DISCUSSION ITEMS ==="))
	assert.NotContains(t, resp.CopyBlocks.Markdown, "Attendees")
	assert.NotContains(t, resp.CopyBlocks.Plaintext, "Purpose")
}

func TestFormat_DateFallbackUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	lateEvening := time.Date(2024, time.July, 15, 23, 30, 0, 0, time.UTC).In(loc)

	resp := NewFormatter().Format(sampleResult(), entities.GenerationRequest{RawNotes: "n"}, lateEvening)
	assert.Equal(t, "2024-07-15", resp.MOM.Date)
}

func TestFormat_EmptyItems(t *testing.T) {
	resp := NewFormatter().Format(&entities.MOMResult{Items: []entities.MOMItem{}}, entities.GenerationRequest{RawNotes: "n", MeetingDate: "d"}, fixedNow)

	assert.NotNil(t, resp.MOM.Items)
	assert.Empty(t, resp.MOM.Items)
	assert.Equal(t, "", resp.CopyBlocks.PPTBullets)
	assert.Equal(t, "# Meeting Minutes\n\n**Date:** d\n\n## Discussion Items\n\n", resp.CopyBlocks.Markdown)
	assert.Equal(t, "MEETING MINUTES\n\nDate: d\n\n=== DISCUSSION ITEMS ===\n\n", resp.CopyBlocks.Plaintext)
}

func TestFormat_BlockCountsMatchItems(t *testing.T) {
	for n := 0; n <= 5; n++ {
		result := &entities.MOMResult{}
		for i := 0; i < n; i++ {
			result.Items = append(result.Items, entities.MOMItem{Title: "t", Discussion: "d", ActionItem: "a", PIC: "someone"})
		}

		resp := NewFormatter().Format(result, entities.GenerationRequest{RawNotes: "n", MeetingDate: "2024-01-01"}, fixedNow)

		assert.Len(t, resp.MOM.Items, n)
		assert.Equal(t, n, strings.Count(resp.CopyBlocks.PPTBullets, "• "))
		assert.Equal(t, n, strings.Count(resp.CopyBlocks.PPTBullets, "PIC: [To be assigned]"))
		assert.Equal(t, n, strings.Count(resp.CopyBlocks.Markdown, "**PIC:** _[To be assigned]_"))
		assert.Equal(t, n, strings.Count(resp.CopyBlocks.Plaintext, "PIC: [To be assigned]"))
		assert.NotContains(t, resp.CopyBlocks.PPTBullets+resp.CopyBlocks.Markdown+resp.CopyBlocks.Plaintext, "someone")
		assert.Equal(t, n, countHeadings(t, resp.CopyBlocks.Markdown, 3))
	}
}

func TestFormat_MarkdownStructure(t *testing.T) {
	resp := NewFormatter().Format(sampleResult(), entities.GenerationRequest{RawNotes: "n", Attendees: []string{"A"}}, fixedNow)

	assert.Equal(t, 1, countHeadings(t, resp.CopyBlocks.Markdown, 1))
	assert.Equal(t, 1, countHeadings(t, resp.CopyBlocks.Markdown, 2))
	assert.Equal(t, 2, countHeadings(t, resp.CopyBlocks.Markdown, 3))
}

func TestFormat_Idempotent(t *testing.T) {
	req := entities.GenerationRequest{RawNotes: "n", Attendees: []string{"A"}, Purpose: "p"}
	f := NewFormatter()

	first := f.Format(sampleResult(), req, fixedNow)
	second := f.Format(sampleResult(), req, fixedNow)
	assert.Equal(t, first, second)
}

func TestFormat_DoesNotAliasRequest(t *testing.T) {
	req := entities.GenerationRequest{RawNotes: "n", Attendees: []string{"A"}}
	resp := NewFormatter().Format(sampleResult(), req, fixedNow)

	req.Attendees[0] = "changed"
	assert.Equal(t, []string{"A"}, resp.MOM.Attendees)
}

func countHeadings(t *testing.T, markdown string, level int) int {
	t.Helper()
	src := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	count := 0
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if h, ok := n.(*ast.Heading); ok && entering && h.Level == level {
			count++
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return count
}
