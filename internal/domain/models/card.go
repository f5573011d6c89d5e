package models

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CardStatus is the lifecycle status of a card:
// New --> Written --> Addressed --> Sent.
// The order is a convention only; any status may be set at any time.
type CardStatus string

const (
	CardStatusNew       CardStatus = "New"
	CardStatusWritten   CardStatus = "Written"
	CardStatusAddressed CardStatus = "Addressed"
	CardStatusSent      CardStatus = "Sent"
)

// NormalizeStatus canonicalizes a wire status value, matching
// case-insensitively. Returns false for anything outside the closed set.
func NormalizeStatus(s string) (CardStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "new":
		return CardStatusNew, true
	case "written":
		return CardStatusWritten, true
	case "addressed":
		return CardStatusAddressed, true
	case "sent":
		return CardStatusSent, true
	}
	return "", false
}

// IsSent reports whether a status equals Sent, case-insensitively.
func (s CardStatus) IsSent() bool {
	return strings.EqualFold(string(s), string(CardStatusSent))
}

// Card tracks one physical card mailed for an event (and/or gift).
type Card struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// What type of card: Thank You, Holiday, Greeting, Other
	Type string `json:"type"`

	// Lifecycle status; stored canonically
	Status CardStatus `gorm:"type:varchar(20);not null" json:"status"`

	// For thank-you cards, which gift this card is for
	GiftID *uint `gorm:"column:gift_id;index" json:"gift_id"`

	// Which event this card is for
	EventID *uint `gorm:"column:event_id;index" json:"event_id"`

	// Denormalized household reference for query convenience
	HouseholdID *uint `gorm:"column:household_id;index" json:"household_id"`

	// Which of the household's addresses this card was intended for
	AddressID *uint `gorm:"column:address_id;index" json:"address_id"`

	// Set automatically on the first transition into Sent if not supplied
	DateSent *time.Time `gorm:"column:date_sent;type:date;index" json:"date_sent"`

	// Additional context about this card
	Notes string `json:"notes"`
}

// TableName sets the table name for this model
func (Card) TableName() string {
	return "card"
}

// ToDict serializes this record for the wire
func (c *Card) ToDict() gin.H {
	return gin.H{
		"id":           c.ID,
		"type":         c.Type,
		"status":       c.Status,
		"gift_id":      c.GiftID,
		"event_id":     c.EventID,
		"household_id": c.HouseholdID,
		"address_id":   c.AddressID,
		"date_sent":    formatDate(c.DateSent),
		"notes":        c.Notes,
	}
}
