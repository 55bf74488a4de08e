package presenter

import (
	momDTO "github.com/johnquangdev/mom-generator/internal/adapter/dto/mom"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// ToGenerateResponse converts a GenerationResponse entity to its DTO
func ToGenerateResponse(r *entities.GenerationResponse) *momDTO.GenerateResponse {
	if r == nil {
		return nil
	}

	items := make([]momDTO.MOMItem, 0, len(r.MOM.Items))
	for _, it := range r.MOM.Items {
		items = append(items, momDTO.MOMItem{
			Title:      it.Title,
			Discussion: it.Discussion,
			ActionItem: it.ActionItem,
			PIC:        it.PIC,
		})
	}

	attendees := r.MOM.Attendees
	if attendees == nil {
		attendees = []string{}
	}

	return &momDTO.GenerateResponse{
		MOM: momDTO.MOM{
			Date:      r.MOM.Date,
			Attendees: attendees,
			Purpose:   r.MOM.Purpose,
			Items:     items,
		},
		CopyBlocks: momDTO.CopyBlocks{
			PPTBullets: r.CopyBlocks.PPTBullets,
			Markdown:   r.CopyBlocks.Markdown,
			Plaintext:  r.CopyBlocks.Plaintext,
		},
		Tokens: momDTO.Tokens{
			Input:  r.Tokens.Input,
			Output: r.Tokens.Output,
		},
	}
}
