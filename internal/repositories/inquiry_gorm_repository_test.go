package repositories_test

import (
	"testing"
	"time"

	"homescout/internal/models"
	"homescout/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiries_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMInquiryRepository(db)
	userID := "user-1"

	now := time.Now().UTC().Truncate(time.Second)
	first := models.Inquiry{
		PropertyID: "prop-1", UserID: &userID,
		Name: "Jamie Rivera", Email: "jamie@example.com",
		Message: "Is this still available?", CreatedAt: now.Add(-2 * time.Minute),
	}
	second := models.Inquiry{
		PropertyID: "prop-1",
		Name:       "Sam Okafor", Email: "sam@example.com", Phone: "555-0100",
		Message: "Requesting a viewing", InquiryType: models.InquiryTypeViewing,
		CreatedAt: now.Add(-1 * time.Minute),
	}
	require.NoError(t, repo.Create(&first))
	require.NoError(t, repo.Create(&second))

	// Defaults fill in when absent.
	assert.Equal(t, models.InquiryTypeGeneral, first.InquiryType)
	assert.Equal(t, models.InquiryStatusNew, first.Status)
	assert.NotEmpty(t, first.ID)

	byProperty, err := repo.ListByProperty("prop-1")
	require.NoError(t, err)
	require.Len(t, byProperty, 2)
	// Newest first.
	assert.Equal(t, second.ID, byProperty[0].ID)

	byUser, err := repo.ListByUser(userID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, first.ID, byUser[0].ID)

	total, err := repo.CountAll()
	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestInquiries_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMInquiryRepository(db)

	inquiry := models.Inquiry{
		PropertyID: "prop-1", Name: "Jamie Rivera",
		Email: "jamie@example.com", Message: "Hello",
	}
	require.NoError(t, repo.Create(&inquiry))

	updated, err := repo.UpdateStatus(inquiry.ID, models.InquiryStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusContacted, updated.Status)

	_, err = repo.UpdateStatus("missing", models.InquiryStatusClosed)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSearchHistory_AddAndListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMSearchHistoryRepository(db)

	now := time.Now().UTC().Truncate(time.Second)
	for i, query := range []string{"austin condos", "houses with pool", "land parcels"} {
		entry := models.SearchHistory{
			UserID: "user-1",
			Query:  query,
			Filters: map[string]any{
				"propertyType": "house",
				"minPrice":     float64(100000 * (i + 1)),
			},
			CreatedAt: now.Add(time.Duration(i-3) * time.Minute),
		}
		require.NoError(t, repo.Add(&entry))
		assert.NotEmpty(t, entry.ID)
	}
	require.NoError(t, repo.Add(&models.SearchHistory{
		UserID: "user-2", Query: "other user search", CreatedAt: now,
	}))

	entries, err := repo.ListRecent("user-1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first, bounded by limit, scoped to the user.
	assert.Equal(t, "land parcels", entries[0].Query)
	assert.Equal(t, "houses with pool", entries[1].Query)

	// The structured filters payload round-trips.
	assert.Equal(t, "house", entries[0].Filters["propertyType"])
	assert.Equal(t, float64(300000), entries[0].Filters["minPrice"])
}
