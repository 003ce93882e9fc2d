package types

// Contact is an inbound business inquiry submitted through the contact form.
type Contact struct {
	Record
	FullName   string `json:"full_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Phone      string `json:"phone" binding:"max=20"`
	Company    string `json:"company" binding:"max=200"`
	Country    string `json:"country" binding:"required,max=100"`
	JobTitle   string `json:"job_title" binding:"max=100"`
	JobDetails string `json:"job_details" binding:"required"`
}
