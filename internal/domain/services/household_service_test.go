package services

import (
	"testing"
	"time"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateHouseholdStampsTimestamps(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	household := &models.Household{Nickname: "Smith Family"}
	require.NoError(t, svc.CreateHousehold(household))

	assert.NotZero(t, household.ID)
	assert.False(t, household.CreatedDate.IsZero(), "created_date should be stamped")
	assert.False(t, household.LastModified.IsZero(), "last_modified should be stamped")
}

func TestCreateHouseholdKeepsSuppliedTimestamps(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	supplied := time.Date(2020, 3, 14, 9, 26, 53, 0, time.UTC)
	household := &models.Household{
		Nickname:     "Jones Family",
		CreatedDate:  supplied,
		LastModified: supplied,
	}
	require.NoError(t, svc.CreateHousehold(household))

	saved, err := svc.GetHouseholdByID(household.ID)
	require.NoError(t, err)
	assert.Equal(t, supplied.Unix(), saved.CreatedDate.Unix())
}

func TestGetHouseholdByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	_, err := svc.GetHouseholdByID(999)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetAllHouseholdsOrderedByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	for _, nickname := range []string{"First", "Second", "Third"} {
		require.NoError(t, svc.CreateHousehold(&models.Household{Nickname: nickname}))
	}

	households, err := svc.GetAllHouseholds()
	require.NoError(t, err)
	require.Len(t, households, 3)
	assert.Equal(t, "First", households[0].Nickname)
	assert.Equal(t, "Third", households[2].Nickname)
	assert.Less(t, households[0].ID, households[1].ID)
}

func TestUpdateHouseholdRefreshesLastModified(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	household := &models.Household{Nickname: "Original", CreatedDate: old, LastModified: old}
	require.NoError(t, svc.CreateHousehold(household))

	updated, err := svc.UpdateHousehold(household.ID, map[string]interface{}{
		"nickname": "Renamed",
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Nickname)
	assert.True(t, updated.LastModified.After(old), "last_modified should move forward on update")
	assert.Equal(t, old.Unix(), updated.CreatedDate.Unix(), "created_date should be untouched")
}

func TestUpdateHouseholdNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	_, err := svc.UpdateHousehold(42, map[string]interface{}{"nickname": "Nobody"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteHouseholdLeavesAddressesByDefault(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, testConfig())

	household := &models.Household{Nickname: "Movers"}
	require.NoError(t, svc.CreateHousehold(household))

	address := models.Address{HouseholdID: household.ID, Line1: "123 Main St"}
	require.NoError(t, db.Create(&address).Error)

	require.NoError(t, svc.DeleteHousehold(household.ID))

	_, err := svc.GetHouseholdByID(household.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var count int64
	db.Model(&models.Address{}).Where("household_id = ?", household.ID).Count(&count)
	assert.EqualValues(t, 1, count, "orphaned address should survive the delete")
}

func TestDeleteHouseholdCascadesWhenEnabled(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	cfg.CascadeDeletes = true
	svc := NewHouseholdService(db, cfg)

	household := &models.Household{Nickname: "Leavers"}
	require.NoError(t, svc.CreateHousehold(household))

	address := models.Address{HouseholdID: household.ID, Line1: "456 Oak Ave"}
	require.NoError(t, db.Create(&address).Error)

	require.NoError(t, svc.DeleteHousehold(household.ID))

	var count int64
	db.Model(&models.Address{}).Where("household_id = ?", household.ID).Count(&count)
	assert.EqualValues(t, 0, count, "addresses should be deleted with the household")
}

func TestDeleteHouseholdNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewHouseholdService(db, &config.Config{})

	err := svc.DeleteHousehold(7)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
