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

const articleColumns = "id, title, description, image, author, publish_date, read_time, category, external_link, created_at, updated_at"

// ArticleStore implements store.ResourceStore for articles.
type ArticleStore struct {
	db DB
}

func NewArticleStore(db DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func scanArticle(row pgx.Row) (*types.Article, error) {
	a := &types.Article{}
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.Image,
		&a.Author,
		&a.PublishDate,
		&a.ReadTime,
		&a.Category,
		&a.ExternalLink,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArticleStore) List(ctx context.Context, q query.Query) ([]*types.Article, error) {
	rows, err := s.db.Query(ctx, "SELECT "+articleColumns+" FROM articles"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*types.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (s *ArticleStore) Get(ctx context.Context, id string) (*types.Article, error) {
	row := s.db.QueryRow(ctx, "SELECT "+articleColumns+" FROM articles WHERE id = $1", id)
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *ArticleStore) Create(ctx context.Context, a *types.Article) error {
	a.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO articles (id, title, description, image, author, publish_date, read_time, category, external_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.Title, a.Description, a.Image, a.Author, a.PublishDate,
		a.ReadTime, a.Category, a.ExternalLink, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (s *ArticleStore) Update(ctx context.Context, a *types.Article) error {
	a.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE articles
		SET title = $2, description = $3, image = $4, author = $5, publish_date = $6,
			read_time = $7, category = $8, external_link = $9, updated_at = $10
		WHERE id = $1`,
		a.ID, a.Title, a.Description, a.Image, a.Author, a.PublishDate,
		a.ReadTime, a.Category, a.ExternalLink, a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
