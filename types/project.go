package types

import "time"

// Project is a delivered client engagement listed in the portfolio.
type Project struct {
	Record
	Name           string    `json:"name" binding:"required,max=200"`
	Description    string    `json:"description" binding:"required"`
	Image          string    `json:"image" binding:"required,url,max=500"`
	Category       string    `json:"category" binding:"required,max=100"`
	CompletionDate time.Time `json:"completion_date" binding:"required"`
	Technologies   []string  `json:"technologies"`
	Client         string    `json:"client" binding:"required,max=200"`
}
