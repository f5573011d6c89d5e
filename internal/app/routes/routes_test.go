package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brystmar/greeting-cards/internal/domain/models"
	"github.com/brystmar/greeting-cards/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestRouter builds a router backed by an isolated in-memory database
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	err = db.AutoMigrate(
		&models.Household{},
		&models.Address{},
		&models.Event{},
		&models.Gift{},
		&models.Card{},
		&models.Picklists{},
	)
	require.NoError(t, err, "failed to migrate test schema")

	cfg := &config.Config{
		EnvType:    "LOCAL",
		ServerPort: "5000",
		// High enough that tests never trip the limiter
		RateLimitRate:  10000,
		RateLimitBurst: 10000,
	}

	return SetupRouter(db, cfg), db
}

// doRequest performs one request against the router and returns the recorder
func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a JSON object response body
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response was not a JSON object: %s", w.Body.String())
	return body
}

func TestPing(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", decodeBody(t, w)["message"])
}

func TestHouseholdLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t)

	// Create
	w := doRequest(r, http.MethodPost, "/api/v1/household", gin.H{
		"nickname":    "Smith Family",
		"surname":     "Smith",
		"first_names": "John & Jane",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)
	require.NotZero(t, id)

	// Read it back, checking the defaults
	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Smith Family", body["nickname"])
	assert.Equal(t, true, body["is_relevant"], "is_relevant should default to true")
	assert.Equal(t, false, body["should_receive_holiday_card"], "should_receive_holiday_card should default to false")
	assert.NotEmpty(t, body["created_date"])

	// Update
	w = doRequest(r, http.MethodPut, "/api/v1/household", gin.H{
		"id":       id,
		"nickname": "The Smiths",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, id, decodeBody(t, w)["id"])

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "The Smiths", decodeBody(t, w)["nickname"])

	// List
	w = doRequest(r, http.MethodGet, "/api/v1/all_households", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	// Delete, then confirm it is gone
	w = doRequest(r, http.MethodDelete, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "successfully deleted")

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "no household found")
}

func TestCreateHouseholdRequiresNickname(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/household", gin.H{"surname": "Anonymous"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/household", gin.H{"nickname": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHouseholdBooleanNormalization(t *testing.T) {
	r, _ := setupTestRouter(t)

	// Loose truthy string values are accepted on the wire
	w := doRequest(r, http.MethodPost, "/api/v1/household", gin.H{
		"nickname":                    "Flexible Family",
		"should_receive_holiday_card": "yes",
		"is_relevant":                 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["should_receive_holiday_card"])
	assert.Equal(t, true, body["is_relevant"])

	// Unrecognized values coerce to false rather than erroring
	w = doRequest(r, http.MethodPost, "/api/v1/household", gin.H{
		"nickname":                    "Strict Family",
		"should_receive_holiday_card": "maybe",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id = decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	assert.Equal(t, false, decodeBody(t, w)["should_receive_holiday_card"])
}

func TestGetHouseholdBadID(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/household?id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/household", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/household?id=9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAddressDefaults(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/household", gin.H{"nickname": "Renters"})
	require.Equal(t, http.StatusCreated, w.Code)
	householdID := decodeBody(t, w)["id"].(float64)

	// Apartment address: line_2 implies likely-to-change
	w = doRequest(r, http.MethodPost, "/api/v1/address", gin.H{
		"household_id": householdID,
		"line_1":       "123 Main St",
		"line_2":       "Apt 4",
		"city":         "Springfield",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/address?id=%.0f", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "United States", body["country"])
	assert.Equal(t, true, body["is_current"])
	assert.Equal(t, true, body["is_likely_to_change"])
	assert.Equal(t, true, body["mail_the_card_to_this_address"])

	// The explicit caller value wins over the apartment rule
	w = doRequest(r, http.MethodPost, "/api/v1/address", gin.H{
		"household_id":        householdID,
		"line_1":              "456 Oak Ave",
		"line_2":              "Unit B",
		"is_likely_to_change": false,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id = decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/address?id=%.0f", id), nil)
	assert.Equal(t, false, decodeBody(t, w)["is_likely_to_change"])
}

func TestCreateAddressRequiresHouseholdID(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/address", gin.H{"line_1": "123 Main St"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventCreateDefaultsYear(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/event", gin.H{
		"name": "Wedding",
		"date": "2024-06-15",
		"year": 2024,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/event?id=%.0f", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Wedding", body["name"])
	assert.Equal(t, "2024-06-15", body["date"])
	assert.EqualValues(t, 2024, body["year"])

	// Annual events can omit the date; year falls back to the current year
	w = doRequest(r, http.MethodPost, "/api/v1/event", gin.H{"name": "Christmas"})
	require.Equal(t, http.StatusCreated, w.Code)
	id = decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/event?id=%.0f", id), nil)
	body = decodeBody(t, w)
	assert.Nil(t, body["date"])
	assert.NotZero(t, body["year"])
}

func TestEventRejectsBadDate(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/event", gin.H{
		"name": "Typo",
		"date": "06/15/2024",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGiftDefaults(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/gift", gin.H{
		"description": "Hand-knit blanket",
		"type":        "Homemade",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/gift?id=%.0f", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Hand-knit blanket", body["description"])
	assert.Equal(t, true, body["should_a_card_be_sent"], "gifts default to needing a thank-you card")
}

func TestCardSentStamping(t *testing.T) {
	r, _ := setupTestRouter(t)

	// A card created with no status starts as New
	w := doRequest(r, http.MethodPost, "/api/v1/card", gin.H{"type": "Thank You"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/card?id=%.0f", id), nil)
	body := decodeBody(t, w)
	assert.Equal(t, "New", body["status"])
	assert.Nil(t, body["date_sent"])

	// Moving it to Sent without date_sent stamps today; case-insensitive
	w = doRequest(r, http.MethodPut, "/api/v1/card", gin.H{
		"id":     id,
		"status": "sent",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/card?id=%.0f", id), nil)
	body = decodeBody(t, w)
	assert.Equal(t, "Sent", body["status"], "status should be stored canonically")
	assert.NotNil(t, body["date_sent"])
}

func TestCardExplicitDateSentWins(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/card", gin.H{"status": "Written"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodPut, "/api/v1/card", gin.H{
		"id":        id,
		"status":    "Sent",
		"date_sent": "2023-12-20",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/card?id=%.0f", id), nil)
	assert.Equal(t, "2023-12-20", decodeBody(t, w)["date_sent"])
}

func TestCardRejectsInvalidStatus(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/card", gin.H{"status": "Mailed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/v1/card", gin.H{"status": "Addressed"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	w = doRequest(r, http.MethodPut, "/api/v1/card", gin.H{
		"id":     id,
		"status": "Lost",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPicklistValues(t *testing.T) {
	r, db := setupTestRouter(t)

	// No row seeded yet: configuration error
	w := doRequest(r, http.MethodGet, "/api/v1/picklist_values", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	require.NoError(t, db.Create(&models.Picklists{
		Version:                   models.DefaultPicklistVersion,
		CardStatus:                "New,Written,Addressed,Sent",
		CardType:                  "Thank You,Holiday",
		HouseholdRelationship:     "Friends, Coworkers",
		HouseholdRelationshipType: "Family,Friends",
		HouseholdFamilySide:       "Mine,Spouse",
	}).Error)

	w = doRequest(r, http.MethodGet, "/api/v1/picklist_values", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	assert.Equal(t, []interface{}{"New", "Written", "Addressed", "Sent"}, body["card_status"])
	assert.Equal(t, []interface{}{"Friends", "Coworkers"}, body["household_relationship"], "tokens should be trimmed")
}

func TestUpdateIsIdempotent(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodPost, "/api/v1/household", gin.H{"nickname": "Repeat Family"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(float64)

	payload := gin.H{
		"id":       id,
		"nickname": "Repeat Family",
		"surname":  "Repeat",
	}

	// Replaying the same update should succeed and leave the record unchanged
	for i := 0; i < 3; i++ {
		w = doRequest(r, http.MethodPut, "/api/v1/household", payload)
		require.Equal(t, http.StatusOK, w.Code, "attempt %d: %s", i, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/api/v1/household?id=%.0f", id), nil)
	body := decodeBody(t, w)
	assert.Equal(t, "Repeat Family", body["nickname"])
	assert.Equal(t, "Repeat", body["surname"])
}

func TestUpdateMissingRecordReturns404(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, tc := range []struct {
		path    string
		payload gin.H
	}{
		{"/api/v1/household", gin.H{"id": 9999, "nickname": "Ghost"}},
		{"/api/v1/address", gin.H{"id": 9999, "city": "Nowhere"}},
		{"/api/v1/event", gin.H{"id": 9999, "name": "Never"}},
		{"/api/v1/gift", gin.H{"id": 9999, "description": "Nothing"}},
		{"/api/v1/card", gin.H{"id": 9999, "status": "New"}},
	} {
		w := doRequest(r, http.MethodPut, tc.path, tc.payload)
		assert.Equal(t, http.StatusNotFound, w.Code, "PUT %s should 404", tc.path)
	}
}

func TestCollectionEndpointsReturnEmptyArray(t *testing.T) {
	r, _ := setupTestRouter(t)

	for _, path := range []string{
		"/api/v1/all_households",
		"/api/v1/all_addresses",
		"/api/v1/all_events",
		"/api/v1/all_gifts",
		"/api/v1/all_cards",
	} {
		w := doRequest(r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", w.Body.String(), "%s should serialize an empty list, not null", path)
	}
}
