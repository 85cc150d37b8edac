package usecase

import (
	"context"
	"net/mail"
	"strconv"
	"strings"

	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
	"github.com/jhoicas/dolphin-crm/pkg/clock"
)

// Filtros del directorio de contactos. Un valor desconocido equivale a "all".
const (
	FilterAll      = "all"
	FilterSales    = "sales"
	FilterSupport  = "support"
	FilterAssigned = "assigned"
)

// ContactUseCase casos de uso del directorio y detalle de contactos.
type ContactUseCase struct {
	contacts repository.ContactRepository
	notes    repository.NoteRepository
	clk      clock.Clock
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(contacts repository.ContactRepository, notes repository.NoteRepository, clk clock.Clock) *ContactUseCase {
	return &ContactUseCase{contacts: contacts, notes: notes, clk: clk}
}

// List devuelve las filas del dashboard según el filtro: all (defecto), sales,
// support o assigned (= asignados al usuario actual).
func (uc *ContactUseCase) List(ctx context.Context, filter string, currentUserID int64) ([]dto.ContactRowView, error) {
	var f repository.ContactFilter
	switch filter {
	case FilterSales:
		f.Type = entity.TypeSalesLead
	case FilterSupport:
		f.Type = entity.TypeSupport
	case FilterAssigned:
		f.AssignedTo = &currentUserID
	}

	rows, err := uc.contacts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContactRowView, 0, len(rows))
	for _, r := range rows {
		view := dto.ContactRowView{
			ID:          r.ID,
			DisplayName: strings.TrimSpace(r.Title + " " + r.FirstName + " " + r.LastName),
			Email:       r.Email,
			Company:     r.Company,
			Type:        r.Type,
		}
		if r.AssigneeFirst != nil {
			view.Assignee = *r.AssigneeFirst + " " + deref(r.AssigneeLast)
		} else {
			view.Assignee = "Unassigned"
			view.Unassigned = true
		}
		out = append(out, view)
	}
	return out, nil
}

// Detail devuelve la vista de detalle con notas (más recientes primero) y la
// precomputación del botón de cambio de tipo.
func (uc *ContactUseCase) Detail(ctx context.Context, id int64) (*dto.ContactDetailView, error) {
	d, err := uc.contacts.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrContactNotFound
	}

	notes, err := uc.notes.ListByContact(ctx, id)
	if err != nil {
		return nil, err
	}

	label, target := entity.NextToggle(d.Contact.Type)
	view := &dto.ContactDetailView{
		ID:           d.Contact.ID,
		DisplayName:  d.Contact.DisplayName(),
		Email:        d.Contact.Email,
		Telephone:    d.Contact.Telephone,
		Company:      d.Contact.Company,
		Type:         d.Contact.Type,
		CreatedAt:    dto.FormatTime(d.Contact.CreatedAt),
		UpdatedAt:    dto.FormatTime(d.Contact.UpdatedAt),
		ToggleLabel:  label,
		ToggleTarget: target,
	}
	if d.CreatorFirst != nil {
		view.CreatorName = strings.TrimSpace(*d.CreatorFirst + " " + deref(d.CreatorLast))
	}
	if d.AssigneeFirst != nil {
		view.Assignee = *d.AssigneeFirst + " " + deref(d.AssigneeLast)
	} else {
		view.Assignee = "Unassigned"
	}
	for _, n := range notes {
		view.Notes = append(view.Notes, dto.NoteView{
			Comment:   n.Comment,
			CreatedAt: dto.FormatTime(n.CreatedAt),
			Author:    n.AuthorFirst + " " + n.AuthorLast,
		})
	}
	return view, nil
}

// Create valida y persiste un contacto nuevo. Los fallos de validación llevan
// el mensaje que re-renderiza el formulario.
func (uc *ContactUseCase) Create(ctx context.Context, in dto.CreateContactRequest, createdBy int64) (int64, error) {
	firstName := strings.TrimSpace(in.FirstName)
	lastName := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)
	contactType := strings.TrimSpace(in.Type)

	if firstName == "" || lastName == "" || email == "" || contactType == "" || in.AssignedTo == "" {
		return 0, domain.NewValidationError("Please fill in all required fields.")
	}
	if !validEmail(email) {
		return 0, domain.NewValidationError("Please enter a valid email address.")
	}
	if !entity.ValidContactType(contactType) {
		return 0, domain.NewValidationError("Invalid contact type.")
	}
	assignedTo, err := strconv.ParseInt(in.AssignedTo, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("Please fill in all required fields.")
	}

	now := uc.clk.Now()
	contact := &entity.Contact{
		Title:      strings.TrimSpace(in.Title),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Telephone:  strings.TrimSpace(in.Telephone),
		Company:    strings.TrimSpace(in.Company),
		Type:       contactType,
		AssignedTo: &assignedTo,
		CreatedBy:  createdBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return uc.contacts.Create(ctx, contact)
}

// Assign asigna el contacto al usuario actuante y devuelve los campos mutados.
func (uc *ContactUseCase) Assign(ctx context.Context, contactID, userID int64) (*dto.AssignResponse, error) {
	res, err := uc.contacts.Assign(ctx, contactID, userID, uc.clk.Now())
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrContactNotFound
	}
	return &dto.AssignResponse{
		Success:    true,
		UpdatedAt:  dto.FormatTime(res.UpdatedAt),
		AssignedTo: res.AssigneeFirst + " " + res.AssigneeLast,
	}, nil
}

// ToggleType fija el tipo destino y devuelve, además del estado escrito, la
// etiqueta y el tipo del siguiente toggle. Un valor fuera del enum se rechaza
// sin mutar nada.
func (uc *ContactUseCase) ToggleType(ctx context.Context, contactID int64, newType string) (*dto.ToggleTypeResponse, error) {
	if !entity.ValidContactType(newType) {
		return nil, domain.ErrInvalidContactType
	}
	res, err := uc.contacts.SetType(ctx, contactID, newType, uc.clk.Now())
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, domain.ErrContactNotFound
	}
	nextLabel, nextTarget := entity.NextToggle(res.Type)
	return &dto.ToggleTypeResponse{
		Success:     true,
		Type:        res.Type,
		UpdatedAt:   dto.FormatTime(res.UpdatedAt),
		NextLabel:   nextLabel,
		NextNewType: nextTarget,
	}, nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
