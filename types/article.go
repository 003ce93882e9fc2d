package types

import "time"

// Article is a published blog or news entry.
type Article struct {
	Record
	Title        string    `json:"title" binding:"required,max=300"`
	Description  string    `json:"description" binding:"required"`
	Image        string    `json:"image" binding:"required,url,max=500"`
	Author       string    `json:"author" binding:"required,max=100"`
	PublishDate  time.Time `json:"publish_date" binding:"required"`
	ReadTime     string    `json:"read_time" binding:"required,max=20"`
	Category     string    `json:"category" binding:"required,max=100"`
	ExternalLink string    `json:"external_link" binding:"omitempty,url,max=500"`
}
