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

const feedbackColumns = "id, name, email, company, rating, review, approved, created_at, updated_at"

// FeedbackStore implements store.FeedbackStore, adding the moderation
// transition to the uniform resource contract.
type FeedbackStore struct {
	db DB
}

func NewFeedbackStore(db DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func scanFeedback(row pgx.Row) (*types.Feedback, error) {
	f := &types.Feedback{}
	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.Email,
		&f.Company,
		&f.Rating,
		&f.Review,
		&f.Approved,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FeedbackStore) List(ctx context.Context, q query.Query) ([]*types.Feedback, error) {
	rows, err := s.db.Query(ctx, "SELECT "+feedbackColumns+" FROM feedback"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*types.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, f)
	}
	return entries, rows.Err()
}

func (s *FeedbackStore) Get(ctx context.Context, id string) (*types.Feedback, error) {
	row := s.db.QueryRow(ctx, "SELECT "+feedbackColumns+" FROM feedback WHERE id = $1", id)
	f, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *FeedbackStore) Create(ctx context.Context, f *types.Feedback) error {
	// New submissions always start in the pending state.
	f.Approved = false
	f.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO feedback (id, name, email, company, rating, review, approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID, f.Name, f.Email, f.Company, f.Rating, f.Review, f.Approved, f.CreatedAt, f.UpdatedAt,
	)
	return err
}

func (s *FeedbackStore) Update(ctx context.Context, f *types.Feedback) error {
	f.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE feedback
		SET name = $2, email = $3, company = $4, rating = $5, review = $6, approved = $7, updated_at = $8
		WHERE id = $1`,
		f.ID, f.Name, f.Email, f.Company, f.Rating, f.Review, f.Approved, f.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *FeedbackStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM feedback WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// SetApproved writes the moderation state. Re-applying the current state is
// a no-op that still advances updated_at.
func (s *FeedbackStore) SetApproved(ctx context.Context, id string, approved bool) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE feedback
		SET approved = $2, updated_at = $3
		WHERE id = $1`,
		id, approved, time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
