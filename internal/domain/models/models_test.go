package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		input string
		want  CardStatus
		ok    bool
	}{
		{"New", CardStatusNew, true},
		{"new", CardStatusNew, true},
		{"WRITTEN", CardStatusWritten, true},
		{"addressed", CardStatusAddressed, true},
		{"sent", CardStatusSent, true},
		{"SENT", CardStatusSent, true},
		{"  Sent  ", CardStatusSent, true},
		{"mailed", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeStatus(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestCardStatusIsSent(t *testing.T) {
	assert.True(t, CardStatusSent.IsSent())
	assert.True(t, CardStatus("sent").IsSent())
	assert.True(t, CardStatus("SENT").IsSent())
	assert.False(t, CardStatusNew.IsSent())
	assert.False(t, CardStatus("").IsSent())
}

func TestSplitPicklist(t *testing.T) {
	assert.Equal(t, []string{}, splitPicklist(""))
	assert.Equal(t, []string{"New", "Written", "Addressed", "Sent"},
		splitPicklist("New,Written,Addressed,Sent"))
	assert.Equal(t, []string{"Thank You", "Holiday"},
		splitPicklist("Thank You, Holiday"))
}

func TestPicklistsToDict(t *testing.T) {
	p := Picklists{
		Version:             1,
		CardStatus:          "New,Sent",
		HouseholdFamilySide: "",
	}
	dict := p.ToDict()

	assert.Equal(t, []string{"New", "Sent"}, dict["card_status"])
	assert.Equal(t, []string{}, dict["household_family_side"], "empty field should split to an empty list, not null")
}

func TestFormatDate(t *testing.T) {
	assert.Nil(t, formatDate(nil))

	zero := time.Time{}
	assert.Nil(t, formatDate(&zero))

	d := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-15", formatDate(&d))
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2020, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "2020-03-14 09:26:53+0000", formatTimestamp(ts))

	// Missing timestamps render as the current time rather than a zero date
	assert.NotContains(t, formatTimestamp(time.Time{}), "0001")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-12-20")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 20, d.Day())

	_, err = ParseDate("12/20/2024")
	assert.Error(t, err)
}

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2020-03-14 09:26:53-0700")
	require.NoError(t, err)
	assert.Equal(t, 2020, ts.Year())

	// Zone offset is optional on input
	ts, err = ParseTimestamp("2020-03-14 09:26:53")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())

	_, err = ParseTimestamp("not a timestamp")
	assert.Error(t, err)
}

func TestCardToDict(t *testing.T) {
	giftID := uint(3)
	sent := time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC)
	card := Card{
		ID:       7,
		Type:     "Thank You",
		Status:   CardStatusSent,
		GiftID:   &giftID,
		DateSent: &sent,
	}

	dict := card.ToDict()
	assert.Equal(t, uint(7), dict["id"])
	assert.Equal(t, CardStatusSent, dict["status"])
	assert.Equal(t, &giftID, dict["gift_id"])
	assert.Equal(t, "2024-12-20", dict["date_sent"])
	assert.Nil(t, dict["event_id"], "unset foreign keys serialize as null")
}
