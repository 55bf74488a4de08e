package mom

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"strings"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// Parser validates the model reply before anything downstream trusts it
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

type itemReply struct {
	Title      string `json:"title"`
	Discussion string `json:"discussion"`
	ActionItem string `json:"action_item"`
	PIC        string `json:"pic"`
}

// ParseItems extracts the MOM items from a JSON reply.
// Any pic value the model produced is discarded.
func (p *Parser) ParseItems(content string) ([]entities.MOMItem, error) {
	content = extractJSON(content)
	if content == "" {
		return nil, entities.ErrNoContent
	}

	var envelope struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stdErrors.As(err, &typeErr) {
			return nil, entities.ErrInvalidFormat
		}
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	raw := bytes.TrimSpace(envelope.Items)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, entities.ErrInvalidFormat
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidFormat, err)
	}

	items := make([]entities.MOMItem, 0, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, fmt.Errorf("%w: item %d is not an object", entities.ErrInvalidFormat, i)
		}

		var it itemReply
		if err := json.Unmarshal(elem, &it); err != nil {
			return nil, fmt.Errorf("%w: item %d: %v", entities.ErrInvalidFormat, i, err)
		}

		items = append(items, entities.MOMItem{
			Title:      it.Title,
			Discussion: it.Discussion,
			ActionItem: it.ActionItem,
			PIC:        "",
		})
	}

	return items, nil
}

// extractJSON strips a markdown code fence some providers wrap JSON in
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
