package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mergington/activities-gobackend/internal/models"
)

// ErrNotFound is returned by lookups when no document matches.
var ErrNotFound = errors.New("document not found")

// AnnouncementUpdate carries the replacement fields for an announcement.
// An empty StartDate leaves any stored start_date untouched.
type AnnouncementUpdate struct {
	Message        string
	ExpirationDate string
	StartDate      string
}

// ActivityStore is the document-store capability surface the activity
// operations need. Participant mutations report the modified-document count
// so callers can detect writes that had no effect.
type ActivityStore interface {
	All(ctx context.Context) ([]models.Activity, error)
	Get(ctx context.Context, name string) (*models.Activity, error)
	PushParticipant(ctx context.Context, name, email string) (int64, error)
	PullParticipant(ctx context.Context, name, email string) (int64, error)
	// DistinctDays returns the sorted union of schedule_details.days values
	// across all activities.
	DistinctDays(ctx context.Context) ([]string, error)
}

// AnnouncementStore covers announcement CRUD. Update reports the matched
// count and Delete the deleted count, both 0 when the id names nothing.
type AnnouncementStore interface {
	All(ctx context.Context) ([]models.Announcement, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error)
	Insert(ctx context.Context, a *models.Announcement) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, upd AnnouncementUpdate) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// TeacherStore resolves a username to the existence of a teacher record.
type TeacherStore interface {
	Exists(ctx context.Context, username string) (bool, error)
}
