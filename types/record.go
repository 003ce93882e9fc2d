package types

import "time"

// Record is the identity and timestamp substrate embedded in every entity.
// ID and CreatedAt are assigned once at creation; UpdatedAt advances on
// every successful mutation.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordID returns the opaque unique identifier.
func (r *Record) RecordID() string {
	return r.ID
}

// Stamp assigns identity and creation timestamps. Used by stores at create.
func (r *Record) Stamp(id string, now time.Time) {
	r.ID = id
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch advances UpdatedAt to the time of mutation.
func (r *Record) Touch(now time.Time) {
	r.UpdatedAt = now
}

// RecordRef exposes the embedded record so callers can preserve identity
// fields across a request-body bind.
func (r *Record) RecordRef() *Record {
	return r
}

// Entity is implemented by every resource type via its embedded Record.
type Entity interface {
	RecordID() string
	RecordRef() *Record
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}
