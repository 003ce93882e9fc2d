package types

import "time"

// GalleryItem is a single image entry in the site gallery.
type GalleryItem struct {
	Record
	Filename    string    `json:"filename" binding:"required,max=200"`
	Image       string    `json:"image" binding:"required,url,max=500"`
	Category    string    `json:"category" binding:"required,max=100"`
	UploadDate  time.Time `json:"upload_date" binding:"required"`
	Description string    `json:"description"`
}
