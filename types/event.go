package types

import "time"

// EventType distinguishes upcoming events from past ones.
type EventType string

const (
	EventTypeUpcoming EventType = "upcoming"
	EventTypePast     EventType = "past"
)

// Event is a conference, webinar, or meetup entry.
type Event struct {
	Record
	Title            string    `json:"title" binding:"required,max=200"`
	Description      string    `json:"description" binding:"required"`
	Image            string    `json:"image" binding:"required,url,max=500"`
	Date             time.Time `json:"date" binding:"required"`
	Time             string    `json:"time" binding:"required,max=20"`
	Location         string    `json:"location" binding:"required,max=300"`
	EventType        EventType `json:"event_type" binding:"required,oneof=upcoming past"`
	MaxAttendees     *int      `json:"max_attendees" binding:"omitempty,min=1"`
	RegistrationLink string    `json:"registration_link" binding:"omitempty,url,max=500"`
}
