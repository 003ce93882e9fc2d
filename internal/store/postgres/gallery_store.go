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

const galleryColumns = "id, filename, image, category, upload_date, description, created_at, updated_at"

// GalleryStore implements store.ResourceStore for gallery items.
type GalleryStore struct {
	db DB
}

func NewGalleryStore(db DB) *GalleryStore {
	return &GalleryStore{db: db}
}

func scanGalleryItem(row pgx.Row) (*types.GalleryItem, error) {
	g := &types.GalleryItem{}
	err := row.Scan(
		&g.ID,
		&g.Filename,
		&g.Image,
		&g.Category,
		&g.UploadDate,
		&g.Description,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GalleryStore) List(ctx context.Context, q query.Query) ([]*types.GalleryItem, error) {
	rows, err := s.db.Query(ctx, "SELECT "+galleryColumns+" FROM gallery_items"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*types.GalleryItem
	for rows.Next() {
		g, err := scanGalleryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (s *GalleryStore) Get(ctx context.Context, id string) (*types.GalleryItem, error) {
	row := s.db.QueryRow(ctx, "SELECT "+galleryColumns+" FROM gallery_items WHERE id = $1", id)
	g, err := scanGalleryItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *GalleryStore) Create(ctx context.Context, g *types.GalleryItem) error {
	g.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO gallery_items (id, filename, image, category, upload_date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.Filename, g.Image, g.Category, g.UploadDate, g.Description, g.CreatedAt, g.UpdatedAt,
	)
	return err
}

func (s *GalleryStore) Update(ctx context.Context, g *types.GalleryItem) error {
	g.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE gallery_items
		SET filename = $2, image = $3, category = $4, upload_date = $5, description = $6, updated_at = $7
		WHERE id = $1`,
		g.ID, g.Filename, g.Image, g.Category, g.UploadDate, g.Description, g.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *GalleryStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM gallery_items WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
