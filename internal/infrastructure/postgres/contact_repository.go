package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/dolphin-crm/internal/domain/entity"
	"github.com/jhoicas/dolphin-crm/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador de persistencia para contactos.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// Create persiste un nuevo contacto y devuelve el id generado.
func (r *ContactRepo) Create(ctx context.Context, c *entity.Contact) (int64, error) {
	query := `
		INSERT INTO contacts (title, firstname, lastname, email, telephone, company, type,
		                      assigned_to, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		c.Title, c.FirstName, c.LastName, c.Email, c.Telephone, c.Company, c.Type,
		c.AssignedTo, c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert contact: %w", err)
	}
	return id, nil
}

// List devuelve los contactos que cumplen el filtro con el nombre del asignado,
// ordenados por lastname, firstname.
func (r *ContactRepo) List(ctx context.Context, filter repository.ContactFilter) ([]*repository.ContactRow, error) {
	query := `
		SELECT c.id, c.title, c.firstname, c.lastname, c.email, c.company, c.type,
		       u.firstname AS assigned_firstname,
		       u.lastname  AS assigned_lastname
		FROM contacts c
		LEFT JOIN users u ON c.assigned_to = u.id`

	var args []any
	switch {
	case filter.Type != "":
		query += ` WHERE c.type = $1`
		args = append(args, filter.Type)
	case filter.AssignedTo != nil:
		query += ` WHERE c.assigned_to = $1`
		args = append(args, *filter.AssignedTo)
	}
	query += ` ORDER BY c.lastname, c.firstname`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()
	var list []*repository.ContactRow
	for rows.Next() {
		var row repository.ContactRow
		if err := rows.Scan(&row.ID, &row.Title, &row.FirstName, &row.LastName, &row.Email,
			&row.Company, &row.Type, &row.AssigneeFirst, &row.AssigneeLast); err != nil {
			return nil, fmt.Errorf("scan contact row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// GetDetail devuelve el contacto con los nombres de creador y asignado.
func (r *ContactRepo) GetDetail(ctx context.Context, id int64) (*repository.ContactDetail, error) {
	query := `
		SELECT c.id, c.title, c.firstname, c.lastname, c.email, c.telephone, c.company,
		       c.type, c.assigned_to, c.created_by, c.created_at, c.updated_at,
		       creator.firstname  AS creator_first,
		       creator.lastname   AS creator_last,
		       assignee.firstname AS assignee_first,
		       assignee.lastname  AS assignee_last
		FROM contacts c
		LEFT JOIN users creator  ON c.created_by  = creator.id
		LEFT JOIN users assignee ON c.assigned_to = assignee.id
		WHERE c.id = $1`
	var d repository.ContactDetail
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.Contact.ID, &d.Contact.Title, &d.Contact.FirstName, &d.Contact.LastName,
		&d.Contact.Email, &d.Contact.Telephone, &d.Contact.Company, &d.Contact.Type,
		&d.Contact.AssignedTo, &d.Contact.CreatedBy, &d.Contact.CreatedAt, &d.Contact.UpdatedAt,
		&d.CreatorFirst, &d.CreatorLast, &d.AssigneeFirst, &d.AssigneeLast,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact detail: %w", err)
	}
	return &d, nil
}

// Assign fija assigned_to y updated_at, devolviendo en la misma sentencia el
// updated_at escrito y el nombre del nuevo asignado (UPDATE ... FROM ... RETURNING).
func (r *ContactRepo) Assign(ctx context.Context, contactID, userID int64, now time.Time) (*repository.AssignResult, error) {
	query := `
		UPDATE contacts c
		SET assigned_to = $1, updated_at = $2
		FROM users u
		WHERE c.id = $3 AND u.id = $1
		RETURNING c.updated_at, u.firstname, u.lastname`
	var res repository.AssignResult
	err := r.pool.QueryRow(ctx, query, userID, now, contactID).Scan(
		&res.UpdatedAt, &res.AssigneeFirst, &res.AssigneeLast,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("assign contact: %w", err)
	}
	return &res, nil
}

// SetType fija type y updated_at, devolviendo los valores escritos.
func (r *ContactRepo) SetType(ctx context.Context, contactID int64, newType string, now time.Time) (*repository.TypeResult, error) {
	query := `
		UPDATE contacts SET type = $1, updated_at = $2
		WHERE id = $3
		RETURNING type, updated_at`
	var res repository.TypeResult
	err := r.pool.QueryRow(ctx, query, newType, now, contactID).Scan(&res.Type, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("set contact type: %w", err)
	}
	return &res, nil
}

// Touch re-estampa updated_at del contacto.
func (r *ContactRepo) Touch(ctx context.Context, contactID int64, now time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE contacts SET updated_at = $1 WHERE id = $2`, now, contactID)
	if err != nil {
		return fmt.Errorf("touch contact: %w", err)
	}
	return nil
}
