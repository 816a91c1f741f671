package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

func TestContactCreateAndList(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	id, err := repo.Create(&models.ContactMessage{
		Name:      "Jordan",
		Email:     "jordan@example.com",
		Subject:   "Hello",
		Message:   "Nice site",
		IPAddress: "203.0.113.9",
		UserAgent: "curl/8.0",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	messages, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Jordan", messages[0].Name)
	assert.Equal(t, "jordan@example.com", messages[0].Email)
	assert.Equal(t, "Nice site", messages[0].Message)
	assert.Equal(t, "203.0.113.9", messages[0].IPAddress)
	assert.False(t, messages[0].IsRead)
}

func TestContactCreateValidation(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	var verr *ValidationError
	_, err := repo.Create(&models.ContactMessage{Email: "a@b.co", Message: "m"})
	require.ErrorAs(t, err, &verr)
}

func TestContactEmailValidation(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	var verr *ValidationError
	_, err := repo.Create(&models.ContactMessage{Name: "n", Email: "not-an-email", Message: "m"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	_, err = repo.Create(&models.ContactMessage{Name: "n", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)
}

func TestContactMarkReadIdempotent(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	id, err := repo.Create(&models.ContactMessage{Name: "n", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, repo.MarkRead(id))
	// marking an already-read message still succeeds
	require.NoError(t, repo.MarkRead(id))

	messages, err := repo.List(boolPtr(true))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].IsRead)

	assert.ErrorIs(t, repo.MarkRead(999), ErrNotFound)
}

func TestContactListReadFilter(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	id, err := repo.Create(&models.ContactMessage{Name: "read", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)
	_, err = repo.Create(&models.ContactMessage{Name: "unread", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)
	require.NoError(t, repo.MarkRead(id))

	unread, err := repo.List(boolPtr(false))
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "unread", unread[0].Name)
}

func TestContactDelete(t *testing.T) {
	repo := NewContactRepository(newTestDB(t))

	id, err := repo.Create(&models.ContactMessage{Name: "n", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))
	assert.ErrorIs(t, repo.Delete(id), ErrNotFound)
}

func TestContactStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	var firstID uint
	for i := 0; i < 3; i++ {
		id, err := repo.Create(&models.ContactMessage{Name: "n", Email: "a@b.co", Message: "m"})
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
	}
	require.NoError(t, repo.MarkRead(firstID))

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Unread)
	assert.Equal(t, int64(3), stats.Recent)
}

func TestContactStatsRecentWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)

	old := models.ContactMessage{
		Name:      "old",
		Email:     "a@b.co",
		Message:   "m",
		CreatedAt: time.Now().AddDate(0, 0, -30),
	}
	require.NoError(t, db.Create(&old).Error)

	_, err := repo.Create(&models.ContactMessage{Name: "fresh", Email: "a@b.co", Message: "m"})
	require.NoError(t, err)

	stats, err := repo.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.Recent)
}
