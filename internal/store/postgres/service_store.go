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

const serviceColumns = "id, name, description, image, features, created_at, updated_at"

// ServiceStore implements store.ResourceStore for service offerings.
type ServiceStore struct {
	db DB
}

func NewServiceStore(db DB) *ServiceStore {
	return &ServiceStore{db: db}
}

func scanService(row pgx.Row) (*types.Service, error) {
	s := &types.Service{}
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.Image,
		&s.Features,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ServiceStore) List(ctx context.Context, q query.Query) ([]*types.Service, error) {
	rows, err := s.db.Query(ctx, "SELECT "+serviceColumns+" FROM services"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*types.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (s *ServiceStore) Get(ctx context.Context, id string) (*types.Service, error) {
	row := s.db.QueryRow(ctx, "SELECT "+serviceColumns+" FROM services WHERE id = $1", id)
	svc, err := scanService(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return svc, nil
}

func (s *ServiceStore) Create(ctx context.Context, svc *types.Service) error {
	svc.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO services (id, name, description, image, features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		svc.ID, svc.Name, svc.Description, svc.Image, svc.Features, svc.CreatedAt, svc.UpdatedAt,
	)
	return err
}

func (s *ServiceStore) Update(ctx context.Context, svc *types.Service) error {
	svc.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE services
		SET name = $2, description = $3, image = $4, features = $5, updated_at = $6
		WHERE id = $1`,
		svc.ID, svc.Name, svc.Description, svc.Image, svc.Features, svc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ServiceStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
