package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Household represents a group of people living together, the primary
// addressee unit for cards.
type Household struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Human-friendly reference for a particular household; uniqueness enforced
	Nickname string `gorm:"type:varchar(255);uniqueIndex;not null" json:"nickname"`

	// First names of the heads of household
	FirstNames string `gorm:"column:first_names" json:"first_names"`

	// Primary surname for this household
	Surname string `json:"surname"`

	// To whom letters should be addressed
	AddressTo string `gorm:"column:address_to" json:"address_to"`

	// Formal salutation, e.g. "Mr. & Mrs. John Doe"
	FormalName string `gorm:"column:formal_name" json:"formal_name"`

	// Where we know these people from
	KnownFrom string `gorm:"column:known_from" json:"known_from"`

	// How we know them: Childhood friends, Colleagues, Neighbors, ...
	Relationship string `json:"relationship"`

	// Family, Friends, or Acquaintances
	RelationshipType string `gorm:"column:relationship_type" json:"relationship_type"`

	// For family relationships, whose side of the family
	FamilySide string `gorm:"column:family_side" json:"family_side"`

	// Names of children in this household
	Kids string `json:"kids"`

	// Pets are household members too
	Pets string `json:"pets"`

	// Should this household be on the holiday card list?
	ShouldReceiveHolidayCard bool `gorm:"column:should_receive_holiday_card" json:"should_receive_holiday_card"`

	// Are these people still relevant to us?
	IsRelevant bool `gorm:"column:is_relevant" json:"is_relevant"`

	CreatedDate  time.Time `gorm:"column:created_date;index;not null" json:"created_date"`
	LastModified time.Time `gorm:"column:last_modified;index;not null" json:"last_modified"`

	// Additional context about this household
	Notes string `json:"notes"`

	// Relations
	Addresses []Address `gorm:"foreignKey:HouseholdID" json:"addresses,omitempty"`
}

// TableName sets the table name for this model
func (Household) TableName() string {
	return "household"
}

// ToDict serializes this record for the wire
func (h *Household) ToDict() gin.H {
	return gin.H{
		"id":                          h.ID,
		"nickname":                    h.Nickname,
		"first_names":                 h.FirstNames,
		"surname":                     h.Surname,
		"address_to":                  h.AddressTo,
		"formal_name":                 h.FormalName,
		"known_from":                  h.KnownFrom,
		"relationship":                h.Relationship,
		"relationship_type":           h.RelationshipType,
		"family_side":                 h.FamilySide,
		"kids":                        h.Kids,
		"pets":                        h.Pets,
		"should_receive_holiday_card": h.ShouldReceiveHolidayCard,
		"is_relevant":                 h.IsRelevant,
		"created_date":                formatTimestamp(h.CreatedDate),
		"last_modified":               formatTimestamp(h.LastModified),
		"notes":                       h.Notes,
	}
}
