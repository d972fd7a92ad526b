package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resume-site/resume-backend/internal/requests/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 100
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// NewRequest carries the caller-supplied fields for Create; id,
// status and created_at are assigned by the store.
type NewRequest struct {
	Name               string
	Email              string
	ProjectDescription string
	Budget             *string
	Timeline           *string
	ProjectType        *string
}

func (r *Repo) Create(ctx context.Context, req NewRequest) (*domain.ProjectRequest, error) {
	const q = `
insert into project_requests (name, email, project_description, budget, timeline, project_type, status)
values ($1, $2, $3, $4, $5, $6, $7)
returning id, name, email, project_description, budget, timeline, project_type, status, created_at;
`
	var p domain.ProjectRequest
	err := r.db.QueryRow(ctx, q,
		req.Name, req.Email, req.ProjectDescription,
		req.Budget, req.Timeline, req.ProjectType,
		domain.StatusPending,
	).Scan(&p.ID, &p.Name, &p.Email, &p.ProjectDescription,
		&p.Budget, &p.Timeline, &p.ProjectType, &p.Status, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context, skip, limit int) ([]domain.ProjectRequest, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}

	const q = `
select id, name, email, project_description, budget, timeline, project_type, status, created_at
from project_requests
order by id
offset $1 limit $2;
`
	rows, err := r.db.Query(ctx, q, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ProjectRequest, 0, 16)
	for rows.Next() {
		var p domain.ProjectRequest
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.ProjectDescription,
			&p.Budget, &p.Timeline, &p.ProjectType, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, id int64) (*domain.ProjectRequest, error) {
	const q = `
select id, name, email, project_description, budget, timeline, project_type, status, created_at
from project_requests
where id = $1;
`
	var p domain.ProjectRequest
	err := r.db.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.ProjectDescription,
			&p.Budget, &p.Timeline, &p.ProjectType, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.ProjectRequest, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	const q = `
update project_requests
set status = $2
where id = $1
returning id, name, email, project_description, budget, timeline, project_type, status, created_at;
`
	var p domain.ProjectRequest
	err := r.db.QueryRow(ctx, q, id, status).
		Scan(&p.ID, &p.Name, &p.Email, &p.ProjectDescription,
			&p.Budget, &p.Timeline, &p.ProjectType, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	const q = `delete from project_requests where id = $1;`

	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
