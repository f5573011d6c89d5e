package services

import (
	"testing"

	"github.com/brystmar/greeting-cards/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetDefaultPicklists(t *testing.T) {
	db := newTestDB(t)
	svc := NewPicklistService(db, testConfig())

	seeded := models.Picklists{
		Version:                   models.DefaultPicklistVersion,
		CardStatus:                "New,Written,Addressed,Sent",
		CardType:                  "Thank You,Holiday",
		HouseholdRelationship:     "Friends,Coworkers",
		HouseholdRelationshipType: "Family,Friends",
		HouseholdFamilySide:       "Mine,Spouse",
	}
	require.NoError(t, db.Create(&seeded).Error)

	picklists, err := svc.GetDefaultPicklists()
	require.NoError(t, err)
	assert.EqualValues(t, models.DefaultPicklistVersion, picklists.Version)
	assert.Equal(t, "New,Written,Addressed,Sent", picklists.CardStatus)
}

func TestGetDefaultPicklistsMissingRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewPicklistService(db, testConfig())

	_, err := svc.GetDefaultPicklists()
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetDefaultPicklistsIgnoresOtherVersions(t *testing.T) {
	db := newTestDB(t)
	svc := NewPicklistService(db, testConfig())

	require.NoError(t, db.Create(&models.Picklists{Version: 2, CardStatus: "Draft"}).Error)

	_, err := svc.GetDefaultPicklists()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
