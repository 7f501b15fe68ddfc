package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

// Repo provides persistence operations for projects.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectColumns = `id, title, description, tags, image, images, link, is_visible, is_featured, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Tags, &p.Image, &p.Images,
		&p.Link, &p.IsVisible, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}

// ListVisible returns publicly listed projects, featured first, newest first
// within each group.
func (r *Repo) ListVisible(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where is_visible
order by is_featured desc, created_at desc;
`
	return r.list(ctx, q)
}

// ListAll returns every project, hidden ones included, in the same order as
// the public listing.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
order by is_featured desc, created_at desc;
`
	return r.list(ctx, q)
}

func (r *Repo) list(ctx context.Context, q string) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

// GetVisible fetches a visible project by id. Hidden and absent ids are both
// reported as domain.ErrNotFound.
func (r *Repo) GetVisible(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where id = $1 and is_visible;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

// GetByID fetches any project by id, regardless of visibility.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
select ` + projectColumns + `
from projects
where id = $1;
`
	p, err := scanProject(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

// Create inserts a new record. Image/Images must already be durable URLs.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
insert into projects (title, description, tags, image, images, link, is_visible, is_featured)
values ($1, $2, $3, $4, $5, $6, $7, $8)
returning ` + projectColumns + `;
`
	return scanProject(r.db.QueryRow(ctx, q,
		p.Title, p.Description, p.Tags, p.Image, p.Images, p.Link, p.IsVisible, p.IsFeatured,
	))
}

// Update writes the fully merged record. Last write wins; there is no
// optimistic concurrency check.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
update projects
set title = $2, description = $3, tags = $4, image = $5, images = $6,
    link = $7, is_visible = $8, is_featured = $9, updated_at = now()
where id = $1
returning ` + projectColumns + `;
`
	out, err := scanProject(r.db.QueryRow(ctx, q,
		p.ID, p.Title, p.Description, p.Tags, p.Image, p.Images, p.Link, p.IsVisible, p.IsFeatured,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return out, err
}

// Delete removes a project. Returns false when the id did not exist.
func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
