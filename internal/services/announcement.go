package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mergington/activities-gobackend/internal/models"
	"github.com/mergington/activities-gobackend/internal/store"
)

// AnnouncementInput is the request body for creating or updating an
// announcement. Dates must be calendar-valid "YYYY-MM-DD" strings.
type AnnouncementInput struct {
	Username       string `json:"username" validate:"required"`
	Message        string `json:"message" validate:"required"`
	ExpirationDate string `json:"expiration_date" validate:"required,datetime=2006-01-02"`
	StartDate      string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// AnnouncementService implements announcement CRUD.
type AnnouncementService struct {
	announcements store.AnnouncementStore
	auth          Authenticator
	validate      *validator.Validate
}

func NewAnnouncementService(announcements store.AnnouncementStore, auth Authenticator) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		auth:          auth,
		validate:      validator.New(),
	}
}

// List returns every announcement, active and expired alike.
func (s *AnnouncementService) List(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements.All(ctx)
}

// Create inserts a new announcement and returns it with its assigned id.
func (s *AnnouncementService) Create(ctx context.Context, in AnnouncementInput) (*models.Announcement, error) {
	if err := s.requireAuth(ctx, in.Username); err != nil {
		return nil, err
	}
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	announcement := &models.Announcement{
		Message:        in.Message,
		ExpirationDate: in.ExpirationDate,
		StartDate:      in.StartDate,
	}
	id, err := s.announcements.Insert(ctx, announcement)
	if err != nil {
		return nil, err
	}
	announcement.ID = id
	return announcement, nil
}

// Update replaces message and expiration_date and, when supplied, start_date.
// An omitted start_date leaves the stored value in place.
func (s *AnnouncementService) Update(ctx context.Context, id primitive.ObjectID, in AnnouncementInput) (*models.Announcement, error) {
	if err := s.requireAuth(ctx, in.Username); err != nil {
		return nil, err
	}
	if err := s.checkInput(in); err != nil {
		return nil, err
	}

	matched, err := s.announcements.Update(ctx, id, store.AnnouncementUpdate{
		Message:        in.Message,
		ExpirationDate: in.ExpirationDate,
		StartDate:      in.StartDate,
	})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, ErrAnnouncementNotFound
	}

	updated, err := s.announcements.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrAnnouncementNotFound
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the announcement with the given id.
func (s *AnnouncementService) Delete(ctx context.Context, id primitive.ObjectID, username string) error {
	if err := s.requireAuth(ctx, username); err != nil {
		return err
	}

	deleted, err := s.announcements.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}

func (s *AnnouncementService) requireAuth(ctx context.Context, username string) error {
	ok, err := s.auth.Verify(ctx, username)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAnnouncementAuth
	}
	return nil
}

// checkInput distinguishes a malformed date from a missing required field so
// each maps to its own client-facing message.
func (s *AnnouncementService) checkInput(in AnnouncementInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "datetime" {
				return ErrInvalidDate
			}
		}
	}
	return ErrMissingFields
}
