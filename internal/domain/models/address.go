package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Address stores one mailing address for a household. A household may have
// multiple addresses.
type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Related household for this address record
	HouseholdID uint `gorm:"column:household_id;index" json:"household_id"`

	// First line of the street address
	Line1 string `gorm:"column:line_1" json:"line_1"`

	// Second line, typically an apartment / unit number
	Line2 string `gorm:"column:line_2" json:"line_2"`

	City string `json:"city"`

	// `state` and `zip` pigeonhole the structured fields as US-only;
	// non-US addresses use the full_address blob below instead
	State string `json:"state"`
	Zip   string `json:"zip"`

	Country string `json:"country"`

	// Opaque multi-line mailing address for non-US households
	FullAddress string `gorm:"column:full_address" json:"full_address"`

	// Quick way to flag stale data, or friends in a temporary spot
	IsCurrent bool `gorm:"column:is_current" json:"is_current"`

	// Apartment addresses default to true
	IsLikelyToChange bool `gorm:"column:is_likely_to_change" json:"is_likely_to_change"`

	// When a household has more than one address, which one gets the card?
	MailTheCardToThisAddress bool `gorm:"column:mail_the_card_to_this_address" json:"mail_the_card_to_this_address"`

	CreatedDate  time.Time `gorm:"column:created_date;index;not null" json:"created_date"`
	LastModified time.Time `gorm:"column:last_modified;index;not null" json:"last_modified"`

	// Additional context about this particular address
	Notes string `json:"notes"`
}

// TableName sets the table name for this model
func (Address) TableName() string {
	return "address"
}

// DefaultCountry is assumed for addresses created without one.
const DefaultCountry = "United States"

// ToDict serializes this record for the wire
func (a *Address) ToDict() gin.H {
	return gin.H{
		"id":                            a.ID,
		"household_id":                  a.HouseholdID,
		"line_1":                        a.Line1,
		"line_2":                        a.Line2,
		"city":                          a.City,
		"state":                         a.State,
		"zip":                           a.Zip,
		"country":                       a.Country,
		"full_address":                  a.FullAddress,
		"is_current":                    a.IsCurrent,
		"is_likely_to_change":           a.IsLikelyToChange,
		"mail_the_card_to_this_address": a.MailTheCardToThisAddress,
		"created_date":                  formatTimestamp(a.CreatedDate),
		"last_modified":                 formatTimestamp(a.LastModified),
		"notes":                         a.Notes,
	}
}
