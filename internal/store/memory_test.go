package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/internal/store"
)

func TestInquiryInsertAssignsID(t *testing.T) {
	s := store.NewMemory().Inquiries()

	inq := &models.Inquiry{Name: "Jane", Email: "jane@example.com", Message: "hi", Status: models.StatusNew}
	require.NoError(t, s.Insert(context.Background(), inq))
	assert.False(t, inq.ID.IsZero())
}

func TestInquiryListNewestFirst(t *testing.T) {
	s := store.NewMemory().Inquiries()
	base := time.Now().UTC()

	for i, name := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, s.Insert(context.Background(), &models.Inquiry{
			Name:        name,
			Email:       name + "@example.com",
			Message:     "hi",
			Status:      models.StatusNew,
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	out, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "newest", out[0].Name)
	assert.Equal(t, "middle", out[1].Name)
	assert.Equal(t, "oldest", out[2].Name)
}

func TestInquiryUpdateStatus(t *testing.T) {
	s := store.NewMemory().Inquiries()

	inq := &models.Inquiry{Name: "Jane", Email: "jane@example.com", Message: "hi", Status: models.StatusNew}
	require.NoError(t, s.Insert(context.Background(), inq))

	updated, err := s.UpdateStatus(context.Background(), inq.ID.Hex(), models.StatusContacted)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusContacted, updated.Status)
	assert.Equal(t, inq.ID, updated.ID)
}

func TestInquiryUpdateMissingIDYieldsNilNil(t *testing.T) {
	s := store.NewMemory().Inquiries()

	updated, err := s.UpdateStatus(context.Background(), "66f0c2a9e4b0a1b2c3d4e5f6", models.StatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, updated)

	// Malformed ids behave exactly like missing ones.
	updated, err = s.UpdateStatus(context.Background(), "not-a-hex-id", models.StatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestInquiryDeleteIsIdempotent(t *testing.T) {
	s := store.NewMemory().Inquiries()

	inq := &models.Inquiry{Name: "Jane", Email: "jane@example.com", Message: "hi", Status: models.StatusNew}
	require.NoError(t, s.Insert(context.Background(), inq))

	require.NoError(t, s.Delete(context.Background(), inq.ID.Hex()))
	require.NoError(t, s.Delete(context.Background(), inq.ID.Hex()))
	require.NoError(t, s.Delete(context.Background(), "garbage"))

	out, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestPortfolioInsertAndListNewestFirst(t *testing.T) {
	s := store.NewMemory().Portfolio()
	base := time.Now().UTC()

	_, err := s.Insert(context.Background(), map[string]interface{}{
		"name": "old client", "createdAt": base,
	})
	require.NoError(t, err)

	id, err := s.Insert(context.Background(), map[string]interface{}{
		"name": "new client", "custom": "field", "createdAt": base.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	out, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "new client", out[0]["name"])
	assert.Equal(t, "field", out[0]["custom"])
	assert.Equal(t, id, out[0]["_id"])
}

func TestAdminUniqueUsername(t *testing.T) {
	s := store.NewMemory().Admins()

	first := &models.AdminAccount{Username: "admin", PasswordHash: "x"}
	require.NoError(t, s.Insert(context.Background(), first))

	err := s.Insert(context.Background(), &models.AdminAccount{Username: "admin", PasswordHash: "y"})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestAdminLookups(t *testing.T) {
	s := store.NewMemory().Admins()

	acc := &models.AdminAccount{Username: "admin", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	require.NoError(t, s.Insert(context.Background(), acc))

	byID, err := s.FindByID(context.Background(), acc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	byName, err := s.FindByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, byName.ID)

	_, err = s.FindByID(context.Background(), "66f0c2a9e4b0a1b2c3d4e5f6")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
