package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webnexa/api/app/models"
)

func TestValidStatus(t *testing.T) {
	for _, s := range models.InquiryStatuses {
		assert.True(t, models.ValidStatus(s), s)
	}
	assert.False(t, models.ValidStatus("archived"))
	assert.False(t, models.ValidStatus(""))
	assert.False(t, models.ValidStatus("New"))
}

func TestAdminAccountHidesPasswordHash(t *testing.T) {
	raw, err := json.Marshal(models.AdminAccount{
		Username:     "admin",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "$2a$10$")
	assert.Contains(t, string(raw), "admin")
}

func TestPortfolioEntryDocDropsEmptyFields(t *testing.T) {
	doc := models.PortfolioEntry{
		Name:   "Acme Corp",
		Rating: 5,
	}.Doc()

	assert.Equal(t, "Acme Corp", doc["name"])
	assert.Equal(t, 5.0, doc["rating"])
	assert.NotContains(t, doc, "logo")
	assert.NotContains(t, doc, "testimonial")
}
