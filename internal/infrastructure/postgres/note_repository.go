package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
)

var _ repository.NoteRepository = (*NoteRepo)(nil)

// NoteRepo implementación del puerto NoteRepository sobre PostgreSQL.
type NoteRepo struct {
	pool *pgxpool.Pool
}

// NewNoteRepository construye el adaptador de persistencia para notas.
func NewNoteRepository(pool *pgxpool.Pool) *NoteRepo {
	return &NoteRepo{pool: pool}
}

// Create persiste una nota y devuelve el id generado.
func (r *NoteRepo) Create(ctx context.Context, note *entity.Note) (int64, error) {
	query := `
		INSERT INTO notes (contact_id, comment, created_by, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		note.ContactID, note.Comment, note.CreatedBy, note.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	return id, nil
}

// ListByContact devuelve las notas del contacto con su autor, más recientes primero.
// Desempate por id para que dos notas del mismo instante rendericen siempre igual.
func (r *NoteRepo) ListByContact(ctx context.Context, contactID int64) ([]*repository.NoteRow, error) {
	query := `
		SELECT n.id, n.comment, n.created_at, u.firstname, u.lastname
		FROM notes n
		JOIN users u ON n.created_by = u.id
		WHERE n.contact_id = $1
		ORDER BY n.created_at DESC, n.id DESC`
	rows, err := r.pool.Query(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()
	var list []*repository.NoteRow
	for rows.Next() {
		var row repository.NoteRow
		if err := rows.Scan(&row.ID, &row.Comment, &row.CreatedAt, &row.AuthorFirst, &row.AuthorLast); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
