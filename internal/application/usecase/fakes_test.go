package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Capturan los argumentos de la
// última llamada para poder afirmar sobre lo que el use case pidió al repositorio.

type fakeContactRepo struct {
	lastFilter   repository.ContactFilter
	listCalled   bool
	rows         []*repository.ContactRow
	detail       *repository.ContactDetail
	assignResult *repository.AssignResult
	assignedAt   time.Time
	typeResult   *repository.TypeResult
	setTypeCalls int
	created      *entity.Contact
	createID     int64
	touchedAt    []time.Time
	err          error
}

func (f *fakeContactRepo) Create(ctx context.Context, c *entity.Contact) (int64, error) {
	f.created = c
	return f.createID, f.err
}

func (f *fakeContactRepo) List(ctx context.Context, filter repository.ContactFilter) ([]*repository.ContactRow, error) {
	f.listCalled = true
	f.lastFilter = filter
	return f.rows, f.err
}

func (f *fakeContactRepo) GetDetail(ctx context.Context, id int64) (*repository.ContactDetail, error) {
	return f.detail, f.err
}

func (f *fakeContactRepo) Assign(ctx context.Context, contactID, userID int64, now time.Time) (*repository.AssignResult, error) {
	f.assignedAt = now
	return f.assignResult, f.err
}

func (f *fakeContactRepo) SetType(ctx context.Context, contactID int64, newType string, now time.Time) (*repository.TypeResult, error) {
	f.setTypeCalls++
	return f.typeResult, f.err
}

func (f *fakeContactRepo) Touch(ctx context.Context, contactID int64, now time.Time) error {
	f.touchedAt = append(f.touchedAt, now)
	return f.err
}

type fakeNoteRepo struct {
	created *entity.Note
	rows    []*repository.NoteRow
	err     error
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) (int64, error) {
	f.created = note
	return 99, f.err
}

func (f *fakeNoteRepo) ListByContact(ctx context.Context, contactID int64) ([]*repository.NoteRow, error) {
	return f.rows, f.err
}

type fakeUserRepo struct {
	created   *entity.User
	createErr error
	list      []*entity.User
	byName    []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = u
	return 5, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) { return f.list, nil }

func (f *fakeUserRepo) ListForAssignment(ctx context.Context) ([]*entity.User, error) {
	return f.byName, nil
}

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }
