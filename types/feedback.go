package types

// Feedback is a visitor review. New submissions start unapproved and are
// hidden from unauthenticated listings until moderated.
type Feedback struct {
	Record
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Company  string `json:"company" binding:"max=200"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Review   string `json:"review" binding:"required"`
	Approved bool   `json:"approved"`
}
