package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
)

// Repo provides persistence operations for contact submissions.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Create appends a submission and returns its assigned id.
func (r *Repo) Create(ctx context.Context, name, email, message string) (int64, error) {
	const q = `
insert into contacts (name, email, message)
values ($1, $2, $3)
returning id;
`
	var id int64
	if err := r.db.QueryRow(ctx, q, name, email, message).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// List returns all submissions, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `
select id, name, email, message, created_at
from contacts
order by created_at desc;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Contact, 0, 16)
	for rows.Next() {
		var ct domain.Contact
		if err := rows.Scan(&ct.ID, &ct.Name, &ct.Email, &ct.Message, &ct.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}
