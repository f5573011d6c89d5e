package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Event is an occasion we'll want to send greeting (or thank-you) cards for.
type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Descriptive name of the event
	Name string `json:"name"`

	// Date of the event, if applicable; annual events may only carry a year
	Date *time.Time `gorm:"type:date" json:"date"`

	// For annual events like holiday cards, the event's year
	Year int `json:"year"`

	// Events get archived once all cards are sent
	IsArchived bool `gorm:"column:is_archived" json:"is_archived"`

	// Additional context about this event
	Notes string `json:"notes"`
}

// TableName sets the table name for this model
func (Event) TableName() string {
	return "event"
}

// ToDict serializes this record for the wire
func (e *Event) ToDict() gin.H {
	return gin.H{
		"id":          e.ID,
		"name":        e.Name,
		"date":        formatDate(e.Date),
		"year":        e.Year,
		"is_archived": e.IsArchived,
		"notes":       e.Notes,
	}
}
