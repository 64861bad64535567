package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mergington/activities-gobackend/internal/models"
	"github.com/mergington/activities-gobackend/internal/store"
)

func newAnnouncementService() *AnnouncementService {
	teachers := store.NewMemoryTeacherStore(models.Teacher{Username: "mrodriguez"})
	return NewAnnouncementService(store.NewMemoryAnnouncementStore(), NewTeacherAuthenticator(teachers))
}

func validInput() AnnouncementInput {
	return AnnouncementInput{
		Username:       "mrodriguez",
		Message:        "Spring fair this weekend",
		ExpirationDate: "2099-01-01",
	}
}

func TestCreateAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and assigns an id", func(t *testing.T) {
		svc := newAnnouncementService()
		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.False(t, created.ID.IsZero())
		assert.Equal(t, "Spring fair this weekend", created.Message)
		assert.Equal(t, "2099-01-01", created.ExpirationDate)
		assert.Empty(t, created.StartDate)
	})

	t.Run("rejects unknown usernames", func(t *testing.T) {
		svc := newAnnouncementService()
		in := validInput()
		in.Username = "impostor"
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrAnnouncementAuth)
	})

	t.Run("rejects a missing username before validation", func(t *testing.T) {
		svc := newAnnouncementService()
		in := validInput()
		in.Username = ""
		in.ExpirationDate = "not-a-date"
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrAnnouncementAuth)
	})

	t.Run("rejects an empty message", func(t *testing.T) {
		svc := newAnnouncementService()
		in := validInput()
		in.Message = ""
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("rejects dates that are not YYYY-MM-DD", func(t *testing.T) {
		svc := newAnnouncementService()
		for _, bad := range []string{"2099/01/01", "01-01-2099", "2099-13-01", "2099-02-30", "tomorrow"} {
			in := validInput()
			in.ExpirationDate = bad
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, ErrInvalidDate, "expiration_date=%q", bad)
		}
	})

	t.Run("accepts an optional valid start date", func(t *testing.T) {
		svc := newAnnouncementService()
		in := validInput()
		in.StartDate = "2098-12-01"
		created, err := svc.Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "2098-12-01", created.StartDate)
	})

	t.Run("rejects a malformed start date", func(t *testing.T) {
		svc := newAnnouncementService()
		in := validInput()
		in.StartDate = "2098/12/01"
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestUpdateAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("returns not found for unknown ids", func(t *testing.T) {
		svc := newAnnouncementService()
		_, err := svc.Update(ctx, primitive.NewObjectID(), validInput())
		assert.ErrorIs(t, err, ErrAnnouncementNotFound)
	})

	t.Run("replaces message and expiration date", func(t *testing.T) {
		svc := newAnnouncementService()
		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Message = "Spring fair moved to Sunday"
		in.ExpirationDate = "2099-02-01"
		updated, err := svc.Update(ctx, created.ID, in)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Spring fair moved to Sunday", updated.Message)
		assert.Equal(t, "2099-02-01", updated.ExpirationDate)
	})

	t.Run("keeps a stored start date when the update omits it", func(t *testing.T) {
		svc := newAnnouncementService()
		in := validInput()
		in.StartDate = "2098-12-01"
		created, err := svc.Create(ctx, in)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "2098-12-01", updated.StartDate)
	})

	t.Run("applies the same date validation as create", func(t *testing.T) {
		svc := newAnnouncementService()
		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		in := validInput()
		in.ExpirationDate = "2099/01/01"
		_, err = svc.Update(ctx, created.ID, in)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestDeleteAnnouncement(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes once and then reports not found", func(t *testing.T) {
		svc := newAnnouncementService()
		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID, "mrodriguez"))

		all, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		err = svc.Delete(ctx, created.ID, "mrodriguez")
		assert.ErrorIs(t, err, ErrAnnouncementNotFound)
	})

	t.Run("requires authentication", func(t *testing.T) {
		svc := newAnnouncementService()
		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		err = svc.Delete(ctx, created.ID, "impostor")
		assert.ErrorIs(t, err, ErrAnnouncementAuth)
	})
}
