package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
	"github.com/jhoicas/dolphin-crm/pkg/clock"
)

// NoteUseCase caso de uso del libro de notas por contacto (solo añadir).
type NoteUseCase struct {
	notes    repository.NoteRepository
	contacts repository.ContactRepository
	clk      clock.Clock
}

// NewNoteUseCase construye el caso de uso.
func NewNoteUseCase(notes repository.NoteRepository, contacts repository.ContactRepository, clk clock.Clock) *NoteUseCase {
	return &NoteUseCase{notes: notes, contacts: contacts, clk: clk}
}

// Add inserta una nota atribuida al usuario actuante y re-estampa el updated_at
// del contacto. Un comentario vacío tras recortar no inserta nada.
// authorName es el nombre de sesión del actuante (firstname + lastname).
func (uc *NoteUseCase) Add(ctx context.Context, contactID int64, comment string, authorID int64, authorName string) (*dto.AddNoteResponse, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, domain.ErrInvalidInput
	}

	now := uc.clk.Now()
	note := &entity.Note{
		ContactID: contactID,
		Comment:   comment,
		CreatedBy: authorID,
		CreatedAt: now,
	}
	if _, err := uc.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	if err := uc.contacts.Touch(ctx, contactID, now); err != nil {
		return nil, err
	}

	return &dto.AddNoteResponse{
		Success:   true,
		Comment:   comment,
		CreatedAt: dto.FormatTime(now),
		UserName:  authorName,
	}, nil
}
