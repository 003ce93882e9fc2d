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

const contactColumns = "id, full_name, email, phone, company, country, job_title, job_details, created_at, updated_at"

// ContactStore implements store.ResourceStore for contact inquiries.
type ContactStore struct {
	db DB
}

func NewContactStore(db DB) *ContactStore {
	return &ContactStore{db: db}
}

func scanContact(row pgx.Row) (*types.Contact, error) {
	c := &types.Contact{}
	err := row.Scan(
		&c.ID,
		&c.FullName,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.Country,
		&c.JobTitle,
		&c.JobDetails,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactStore) List(ctx context.Context, q query.Query) ([]*types.Contact, error) {
	rows, err := s.db.Query(ctx, "SELECT "+contactColumns+" FROM contacts"+q.SQL(), q.Args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*types.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (s *ContactStore) Get(ctx context.Context, id string) (*types.Contact, error) {
	row := s.db.QueryRow(ctx, "SELECT "+contactColumns+" FROM contacts WHERE id = $1", id)
	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *ContactStore) Create(ctx context.Context, c *types.Contact) error {
	c.Stamp(uuid.New().String(), time.Now().UTC())
	_, err := s.db.Exec(ctx, `
		INSERT INTO contacts (id, full_name, email, phone, company, country, job_title, job_details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.FullName, c.Email, c.Phone, c.Company, c.Country, c.JobTitle,
		c.JobDetails, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (s *ContactStore) Update(ctx context.Context, c *types.Contact) error {
	c.Touch(time.Now().UTC())
	tag, err := s.db.Exec(ctx, `
		UPDATE contacts
		SET full_name = $2, email = $3, phone = $4, company = $5, country = $6,
			job_title = $7, job_details = $8, updated_at = $9
		WHERE id = $1`,
		c.ID, c.FullName, c.Email, c.Phone, c.Company, c.Country, c.JobTitle,
		c.JobDetails, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ContactStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, "DELETE FROM contacts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
