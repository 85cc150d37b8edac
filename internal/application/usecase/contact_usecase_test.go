package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/dolphin-crm/internal/application/dto"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
	"github.com/jhoicas/dolphin-crm/internal/domain"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
	"github.com/jhoicas/dolphin-crm/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)

func newContactUC(contacts *fakeContactRepo, notes *fakeNoteRepo) *usecase.ContactUseCase {
	return usecase.NewContactUseCase(contacts, notes, clock.Fixed{T: fixedNow})
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltrosMapeanAlPredicadoCorrecto(t *testing.T) {
	cases := []struct {
		filter     string
		wantType   string
		wantUserID *int64
	}{
		{usecase.FilterAll, "", nil},
		{usecase.FilterSales, entity.TypeSalesLead, nil},
		{usecase.FilterSupport, entity.TypeSupport, nil},
		{usecase.FilterAssigned, "", int64Ptr(7)},
		{"cualquier-cosa", "", nil}, // filtro desconocido = all
	}
	for _, tc := range cases {
		t.Run(tc.filter, func(t *testing.T) {
			repo := &fakeContactRepo{}
			uc := newContactUC(repo, &fakeNoteRepo{})

			_, err := uc.List(context.Background(), tc.filter, 7)
			require.NoError(t, err)
			require.True(t, repo.listCalled)

			assert.Equal(t, tc.wantType, repo.lastFilter.Type)
			if tc.wantUserID == nil {
				assert.Nil(t, repo.lastFilter.AssignedTo)
			} else {
				require.NotNil(t, repo.lastFilter.AssignedTo)
				assert.Equal(t, *tc.wantUserID, *repo.lastFilter.AssignedTo)
			}
		})
	}
}

func TestList_FilaConYSinAsignado(t *testing.T) {
	repo := &fakeContactRepo{rows: []*repository.ContactRow{
		{ID: 1, Title: "Dr", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
			Company: "Analytical", Type: entity.TypeSalesLead,
			AssigneeFirst: strPtr("Jane"), AssigneeLast: strPtr("Doe")},
		{ID: 2, FirstName: "Bob", LastName: "Stone", Email: "bob@example.com",
			Type: entity.TypeSupport},
	}}
	uc := newContactUC(repo, &fakeNoteRepo{})

	rows, err := uc.List(context.Background(), usecase.FilterAll, 7)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Dr Ada Lovelace", rows[0].DisplayName)
	assert.Equal(t, "Jane Doe", rows[0].Assignee)
	assert.False(t, rows[0].Unassigned)

	// Sin título no quedan espacios sobrantes; sin asignado sale el literal
	assert.Equal(t, "Bob Stone", rows[1].DisplayName)
	assert.Equal(t, "Unassigned", rows[1].Assignee)
	assert.True(t, rows[1].Unassigned)
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalle
// ──────────────────────────────────────────────────────────────────────────────

func TestDetail_ContactoInexistente(t *testing.T) {
	uc := newContactUC(&fakeContactRepo{}, &fakeNoteRepo{})

	_, err := uc.Detail(context.Background(), 123)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestDetail_IncluyeNotasYToggle(t *testing.T) {
	contacts := &fakeContactRepo{detail: &repository.ContactDetail{
		Contact: entity.Contact{
			ID: 3, Title: "Ms", FirstName: "Ada", LastName: "Lovelace",
			Email: "ada@example.com", Type: entity.TypeSalesLead,
			CreatedAt: fixedNow, UpdatedAt: fixedNow,
		},
		CreatorFirst: strPtr("Jane"), CreatorLast: strPtr("Doe"),
	}}
	notes := &fakeNoteRepo{rows: []*repository.NoteRow{
		{ID: 2, Comment: "segunda", CreatedAt: fixedNow, AuthorFirst: "Jane", AuthorLast: "Doe"},
		{ID: 1, Comment: "primera", CreatedAt: fixedNow.Add(-time.Hour), AuthorFirst: "Bob", AuthorLast: "Stone"},
	}}
	uc := newContactUC(contacts, notes)

	view, err := uc.Detail(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, "Ms Ada Lovelace", view.DisplayName)
	assert.Equal(t, "Jane Doe", view.CreatorName)
	assert.Equal(t, "Unassigned", view.Assignee)
	assert.Equal(t, "Switch to Support", view.ToggleLabel)
	assert.Equal(t, entity.TypeSupport, view.ToggleTarget)
	assert.Equal(t, "2024-05-10 12:30:00", view.UpdatedAt)

	require.Len(t, view.Notes, 2)
	assert.Equal(t, "segunda", view.Notes[0].Comment)
	assert.Equal(t, "Jane Doe", view.Notes[0].Author)
}

// ──────────────────────────────────────────────────────────────────────────────
// Assign
// ──────────────────────────────────────────────────────────────────────────────

func TestAssign_DevuelveAsignadoYUpdatedAt(t *testing.T) {
	repo := &fakeContactRepo{assignResult: &repository.AssignResult{
		UpdatedAt:     fixedNow,
		AssigneeFirst: "Jane",
		AssigneeLast:  "Doe",
	}}
	uc := newContactUC(repo, &fakeNoteRepo{})

	res, err := uc.Assign(context.Background(), 3, 7)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Jane Doe", res.AssignedTo)
	assert.Equal(t, "2024-05-10 12:30:00", res.UpdatedAt)
	assert.Equal(t, fixedNow, repo.assignedAt, "el timestamp debe venir del reloj inyectado")
}

func TestAssign_ContactoInexistente(t *testing.T) {
	uc := newContactUC(&fakeContactRepo{}, &fakeNoteRepo{})

	_, err := uc.Assign(context.Background(), 999, 7)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// ToggleType
// ──────────────────────────────────────────────────────────────────────────────

func TestToggleType_RechazaTipoInvalidoSinMutar(t *testing.T) {
	repo := &fakeContactRepo{}
	uc := newContactUC(repo, &fakeNoteRepo{})

	_, err := uc.ToggleType(context.Background(), 3, "Premium")
	assert.ErrorIs(t, err, domain.ErrInvalidContactType)
	assert.Zero(t, repo.setTypeCalls, "un tipo inválido no debe llegar al repositorio")
}

func TestToggleType_PrecomputaSiguienteToggle(t *testing.T) {
	repo := &fakeContactRepo{typeResult: &repository.TypeResult{
		Type:      entity.TypeSupport,
		UpdatedAt: fixedNow,
	}}
	uc := newContactUC(repo, &fakeNoteRepo{})

	res, err := uc.ToggleType(context.Background(), 3, entity.TypeSupport)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, entity.TypeSupport, res.Type)
	assert.Equal(t, "Switch to Sales Lead", res.NextLabel)
	assert.Equal(t, entity.TypeSalesLead, res.NextNewType)
}

// Dos toggles seguidos vuelven al estado original: la precomputación de cada
// respuesta apunta siempre al otro tipo.
func TestToggleType_DobleToggleVuelveAlOriginal(t *testing.T) {
	repo := &fakeContactRepo{typeResult: &repository.TypeResult{
		Type: entity.TypeSupport, UpdatedAt: fixedNow,
	}}
	uc := newContactUC(repo, &fakeNoteRepo{})

	first, err := uc.ToggleType(context.Background(), 3, entity.TypeSupport)
	require.NoError(t, err)

	repo.typeResult = &repository.TypeResult{Type: first.NextNewType, UpdatedAt: fixedNow}
	second, err := uc.ToggleType(context.Background(), 3, first.NextNewType)
	require.NoError(t, err)

	assert.Equal(t, entity.TypeSalesLead, second.Type)
	assert.Equal(t, "Switch to Support", second.NextLabel)
	assert.Equal(t, entity.TypeSupport, second.NextNewType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateContact_Validaciones(t *testing.T) {
	valid := dto.CreateContactRequest{
		Title: "Mr", FirstName: "Bob", LastName: "Stone",
		Email: "bob@example.com", Type: entity.TypeSupport, AssignedTo: "7",
	}

	cases := []struct {
		name    string
		mutate  func(*dto.CreateContactRequest)
		wantMsg string
	}{
		{"sin nombre", func(in *dto.CreateContactRequest) { in.FirstName = "" }, "Please fill in all required fields."},
		{"sin asignado", func(in *dto.CreateContactRequest) { in.AssignedTo = "" }, "Please fill in all required fields."},
		{"email inválido", func(in *dto.CreateContactRequest) { in.Email = "no-es-un-email" }, "Please enter a valid email address."},
		{"tipo inválido", func(in *dto.CreateContactRequest) { in.Type = "Premium" }, "Invalid contact type."},
		{"asignado no numérico", func(in *dto.CreateContactRequest) { in.AssignedTo = "abc" }, "Please fill in all required fields."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			uc := newContactUC(repo, &fakeNoteRepo{})

			in := valid
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in, 7)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantMsg, ve.Message)
			assert.Nil(t, repo.created, "no debe insertarse nada en un fallo de validación")
		})
	}
}

func TestCreateContact_Exitoso(t *testing.T) {
	repo := &fakeContactRepo{createID: 11}
	uc := newContactUC(repo, &fakeNoteRepo{})

	id, err := uc.Create(context.Background(), dto.CreateContactRequest{
		Title: "Mrs", FirstName: " Ada ", LastName: "Lovelace",
		Email: "ada@example.com", Telephone: "555-0100", Company: "Analytical",
		Type: entity.TypeSalesLead, AssignedTo: "7",
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	require.NotNil(t, repo.created)
	assert.Equal(t, "Ada", repo.created.FirstName, "los campos de texto se recortan")
	assert.Equal(t, int64(3), repo.created.CreatedBy)
	require.NotNil(t, repo.created.AssignedTo)
	assert.Equal(t, int64(7), *repo.created.AssignedTo)
	assert.Equal(t, fixedNow, repo.created.CreatedAt)
	assert.Equal(t, fixedNow, repo.created.UpdatedAt)
}
