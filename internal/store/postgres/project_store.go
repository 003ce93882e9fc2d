package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/axionlabs/axion-backend/internal/query"
	"github.com/axionlabs/axion-backend/internal/store"
	"github.com/axionlabs/axion-backend/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const projectColumns = "id, name, description, image, category, completion_date, technologies, client, created_at, updated_at"

// ProjectStore implements store.ResourceStore for portfolio projects.
type ProjectStore struct {
	db DB
}

func NewProjectStore(db DB) *ProjectStore {
	return &ProjectStore{db: db}
}

func scanProject(row pgx.Row) (*types.Project, error) {
	p := &types.Project{}
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Image,
		&p.Category,
		&p.CompletionDate,
		&p.Technologies,
		&p.Client,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectStore) List(ctx context.Context, q query.Query) ([]*types.Project, error) {
	rows, err := s.db.Query(ctx, "SELECT "+projectColumns+" FROM projects"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *ProjectStore) Get(ctx context.Context, id string) (*types.Project, error) {
	row := s.db.QueryRow(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = $1", id)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProjectStore) Create(ctx context.Context, p *types.Project) error {
	p.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO projects (id, name, description, image, category, completion_date, technologies, client, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.Name, p.Description, p.Image, p.Category, p.CompletionDate,
		p.Technologies, p.Client, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (s *ProjectStore) Update(ctx context.Context, p *types.Project) error {
	p.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE projects
		SET name = $2, description = $3, image = $4, category = $5, completion_date = $6,
			technologies = $7, client = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Image, p.Category, p.CompletionDate,
		p.Technologies, p.Client, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
