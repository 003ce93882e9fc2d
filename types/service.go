package types

// Service describes a consulting or product offering shown on the site.
type Service struct {
	Record
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"required"`
	Image       string   `json:"image" binding:"required,url,max=500"`
	Features    []string `json:"features"`
}
