package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Gift stores data about a gift received for a particular event. One
// thank-you card gets sent per gift record.
type Gift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Event the gift was from
	EventID *uint `gorm:"column:event_id;index" json:"event_id"`

	// Household who gifted the item
	// TODO: migrate to a households list to support joint-household gifts
	HouseholdID *uint `gorm:"column:household_id;index" json:"household_id"`

	// Description of the item(s)
	Description string `json:"description"`

	// Basic category for this gift: Book, Clothing, Toy, ...
	Type string `json:"type"`

	// Where the gift originated from (store, homemade, etc.), if known
	Origin string `json:"origin"`

	// Date the gift was received
	Date *time.Time `gorm:"type:date;index" json:"date"`

	// Some friends & family ask you not to send a thank-you card
	ShouldACardBeSent bool `gorm:"column:should_a_card_be_sent" json:"should_a_card_be_sent"`

	// Additional context about this gift
	Notes string `json:"notes"`
}

// TableName sets the table name for this model
func (Gift) TableName() string {
	return "gift"
}

// ToDict serializes this record for the wire
func (g *Gift) ToDict() gin.H {
	return gin.H{
		"id":                    g.ID,
		"event_id":              g.EventID,
		"household_id":          g.HouseholdID,
		"description":           g.Description,
		"type":                  g.Type,
		"origin":                g.Origin,
		"date":                  formatDate(g.Date),
		"should_a_card_be_sent": g.ShouldACardBeSent,
		"notes":                 g.Notes,
	}
}
