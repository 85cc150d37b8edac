package http_test

import (
	"context"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/jhoicas/dolphin-crm/internal/application/auth"
	"github.com/jhoicas/dolphin-crm/internal/application/usecase"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
	crmhttp "github.com/jhoicas/dolphin-crm/internal/interfaces/http"
	"github.com/jhoicas/dolphin-crm/pkg/clock"
	pkgjwt "github.com/jhoicas/dolphin-crm/pkg/jwt"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret     = "test-secret-key-for-http-tests"
	testCookieName = "crm_session"
	testIssuer     = "dolphin-crm-test"
)

var fixedNow = time.Date(2024, 5, 10, 12, 30, 0, 0, time.UTC)

// Fakes en memoria de los puertos de persistencia, con datos configurables por test.

type fakeContactRepo struct {
	lastFilter   repository.ContactFilter
	rows         []*repository.ContactRow
	detail       *repository.ContactDetail
	assignResult *repository.AssignResult
	typeResult   *repository.TypeResult
	created      *entity.Contact
}

func (f *fakeContactRepo) Create(ctx context.Context, c *entity.Contact) (int64, error) {
	f.created = c
	return 11, nil
}

func (f *fakeContactRepo) List(ctx context.Context, filter repository.ContactFilter) ([]*repository.ContactRow, error) {
	f.lastFilter = filter
	return f.rows, nil
}

func (f *fakeContactRepo) GetDetail(ctx context.Context, id int64) (*repository.ContactDetail, error) {
	return f.detail, nil
}

func (f *fakeContactRepo) Assign(ctx context.Context, contactID, userID int64, now time.Time) (*repository.AssignResult, error) {
	return f.assignResult, nil
}

func (f *fakeContactRepo) SetType(ctx context.Context, contactID int64, newType string, now time.Time) (*repository.TypeResult, error) {
	return f.typeResult, nil
}

func (f *fakeContactRepo) Touch(ctx context.Context, contactID int64, now time.Time) error {
	return nil
}

type fakeNoteRepo struct {
	created *entity.Note
	rows    []*repository.NoteRow
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) (int64, error) {
	f.created = note
	return 99, nil
}

func (f *fakeNoteRepo) ListByContact(ctx context.Context, contactID int64) ([]*repository.NoteRow, error) {
	return f.rows, nil
}

type fakeUserRepo struct {
	created   *entity.User
	createErr error
	byEmail   map[string]*entity.User
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
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) { return f.list, nil }

func (f *fakeUserRepo) ListForAssignment(ctx context.Context) ([]*entity.User, error) {
	return f.byName, nil
}

// testEnv app de Fiber completa con las rutas reales montadas sobre fakes.
type testEnv struct {
	app      *fiber.App
	contacts *fakeContactRepo
	notes    *fakeNoteRepo
	users    *fakeUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	contacts := &fakeContactRepo{}
	notes := &fakeNoteRepo{}
	users := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	clk := clock.Fixed{T: fixedNow}

	session := crmhttp.SessionCookieConfig{
		Secret:     testSecret,
		CookieName: testCookieName,
		ExpMinutes: 60,
	}

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	crmhttp.Router(app, crmhttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(users, auth.SessionConfig{
			Secret:     testSecret,
			ExpMinutes: 60,
			Issuer:     testIssuer,
		}),
		ContactUC: usecase.NewContactUseCase(contacts, notes, clk),
		NoteUC:    usecase.NewNoteUseCase(notes, contacts, clk),
		UserUC:    usecase.NewUserUseCase(users, clk),
		Session:   session,
	})

	return &testEnv{app: app, contacts: contacts, notes: notes, users: users}
}

// sessionCookie emite una cookie de sesión válida para un usuario con ese rol.
func (e *testEnv) sessionCookie(t *testing.T, role string) *nethttp.Cookie {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, 7, role, "Jane Doe", testIssuer, 60)
	require.NoError(t, err)
	return &nethttp.Cookie{Name: testCookieName, Value: tok}
}

func (e *testEnv) seedUser(t *testing.T, email, plainPassword, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.MinCost)
	require.NoError(t, err)
	e.users.byEmail[email] = &entity.User{
		ID:           7,
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    fixedNow,
	}
}

func get(t *testing.T, app *fiber.App, path string, cookie *nethttp.Cookie) *nethttp.Response {
	t.Helper()
	req, err := nethttp.NewRequest(nethttp.MethodGet, path, nil)
	require.NoError(t, err)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie *nethttp.Cookie) *nethttp.Response {
	t.Helper()
	req, err := nethttp.NewRequest(nethttp.MethodPost, path, strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *nethttp.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
