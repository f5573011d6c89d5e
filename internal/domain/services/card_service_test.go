package services

import (
	"testing"
	"time"

	"github.com/brystmar/greeting-cards/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCardDefaultsToNew(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Type: "Thank You"}
	require.NoError(t, svc.CreateCard(card))

	saved, err := svc.GetCardByID(card.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CardStatusNew, saved.Status)
	assert.Nil(t, saved.DateSent)
}

func TestCreateCardAsSentStampsDateSent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Status: models.CardStatusSent}
	require.NoError(t, svc.CreateCard(card))

	saved, err := svc.GetCardByID(card.ID)
	require.NoError(t, err)
	require.NotNil(t, saved.DateSent)
	assert.Equal(t, time.Now().UTC().Format(models.DateLayout), saved.DateSent.Format(models.DateLayout))
}

func TestCreateCardAsSentKeepsSuppliedDateSent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	supplied := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)
	card := &models.Card{Status: models.CardStatusSent, DateSent: &supplied}
	require.NoError(t, svc.CreateCard(card))

	saved, err := svc.GetCardByID(card.ID)
	require.NoError(t, err)
	require.NotNil(t, saved.DateSent)
	assert.Equal(t, "2023-12-20", saved.DateSent.Format(models.DateLayout))
}

func TestUpdateCardToSentStampsDateSent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Status: models.CardStatusAddressed}
	require.NoError(t, svc.CreateCard(card))

	updated, err := svc.UpdateCard(card.ID, map[string]interface{}{
		"status": models.CardStatusSent,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CardStatusSent, updated.Status)
	require.NotNil(t, updated.DateSent, "date_sent should be stamped on the transition to Sent")
	assert.Equal(t, time.Now().UTC().Format(models.DateLayout), updated.DateSent.Format(models.DateLayout))
}

func TestUpdateCardToSentRespectsSuppliedDateSent(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Status: models.CardStatusWritten}
	require.NoError(t, svc.CreateCard(card))

	supplied := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateCard(card.ID, map[string]interface{}{
		"status":    models.CardStatusSent,
		"date_sent": supplied,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.DateSent)
	assert.Equal(t, "2024-01-02", updated.DateSent.Format(models.DateLayout))
}

func TestUpdateCardAlreadySentDoesNotRestamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	sentOn := time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC)
	card := &models.Card{Status: models.CardStatusSent, DateSent: &sentOn}
	require.NoError(t, svc.CreateCard(card))

	// Re-sending the same Sent status should not move date_sent
	updated, err := svc.UpdateCard(card.ID, map[string]interface{}{
		"status": models.CardStatusSent,
		"notes":  "dropped at the post office",
	})
	require.NoError(t, err)

	require.NotNil(t, updated.DateSent)
	assert.Equal(t, "2023-12-20", updated.DateSent.Format(models.DateLayout))
	assert.Equal(t, "dropped at the post office", updated.Notes)
}

func TestUpdateCardNonSentTransitionLeavesDateSentAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Status: models.CardStatusNew}
	require.NoError(t, svc.CreateCard(card))

	updated, err := svc.UpdateCard(card.ID, map[string]interface{}{
		"status": models.CardStatusWritten,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CardStatusWritten, updated.Status)
	assert.Nil(t, updated.DateSent)
}

func TestUpdateCardStatusStringIsHandled(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Status: models.CardStatusNew}
	require.NoError(t, svc.CreateCard(card))

	// Plain string status values come through the updates map too
	updated, err := svc.UpdateCard(card.ID, map[string]interface{}{
		"status": "Sent",
	})
	require.NoError(t, err)

	require.NotNil(t, updated.DateSent)
}

func TestDeleteCard(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	card := &models.Card{Status: models.CardStatusNew}
	require.NoError(t, svc.CreateCard(card))

	require.NoError(t, svc.DeleteCard(card.ID))

	_, err := svc.GetCardByID(card.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetCardByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewCardService(db, testConfig())

	_, err := svc.GetCardByID(12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
