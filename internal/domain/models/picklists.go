package models

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Picklists is a singleton configuration row holding comma-separated value
// lists for fields rendered as dropdowns in the UI. Not an optimal way of
// storing these, but not every option has an associated record, so this is
// the quick solution we use.
type Picklists struct {
	// Version is the primary key; the API always serves version 1
	Version uint `gorm:"primaryKey" json:"version"`

	// Household picklists
	HouseholdRelationship     string `gorm:"column:household_relationship" json:"household_relationship"`
	HouseholdRelationshipType string `gorm:"column:household_relationship_type" json:"household_relationship_type"`
	HouseholdFamilySide       string `gorm:"column:household_family_side" json:"household_family_side"`

	// Card picklists
	CardType   string `gorm:"column:card_type" json:"card_type"`
	CardStatus string `gorm:"column:card_status" json:"card_status"`
}

// TableName sets the table name for this model
func (Picklists) TableName() string {
	return "picklist_values"
}

// DefaultPicklistVersion is the singleton row the API serves.
const DefaultPicklistVersion = 1

// splitPicklist turns a comma-separated field into a list of trimmed tokens.
func splitPicklist(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		values = append(values, strings.TrimSpace(p))
	}
	return values
}

// ToDict serializes the picklists for the wire, split into lists
func (p *Picklists) ToDict() gin.H {
	return gin.H{
		"version":                     p.Version,
		"household_relationship":      splitPicklist(p.HouseholdRelationship),
		"household_relationship_type": splitPicklist(p.HouseholdRelationshipType),
		"household_family_side":       splitPicklist(p.HouseholdFamilySide),
		"card_type":                   splitPicklist(p.CardType),
		"card_status":                 splitPicklist(p.CardStatus),
	}
}
