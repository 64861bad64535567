package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mergington/activities-gobackend/internal/models"
	"github.com/mergington/activities-gobackend/internal/store"
)

// ActivityFilter narrows the activity listing. Day must match one of the
// activity's scheduled days exactly. The time bounds only take effect when
// both are present and parse as "HH:MM".
type ActivityFilter struct {
	Day       string
	StartTime string
	EndTime   string
}

// ActivityService implements activity listing and roster mutation.
type ActivityService struct {
	activities store.ActivityStore
	auth       Authenticator
}

func NewActivityService(activities store.ActivityStore, auth Authenticator) *ActivityService {
	return &ActivityService{activities: activities, auth: auth}
}

// List returns all activities keyed by name, narrowed by the filter. Filters
// compose with AND; activities without schedule details are dropped whenever
// a filter is active.
func (s *ActivityService) List(ctx context.Context, filter ActivityFilter) (map[string]models.Activity, error) {
	activities, err := s.activities.All(ctx)
	if err != nil {
		return nil, err
	}

	lo, loOK := parseClock(filter.StartTime)
	hi, hiOK := parseClock(filter.EndTime)
	timeFilter := filter.StartTime != "" && filter.EndTime != "" && loOK && hiOK

	results := make(map[string]models.Activity, len(activities))
	for _, a := range activities {
		sd := a.ScheduleDetails

		if filter.Day != "" {
			if sd == nil || !slices.Contains(sd.Days, filter.Day) {
				continue
			}
		}

		if timeFilter {
			if sd == nil || sd.StartTime == "" || sd.EndTime == "" {
				continue
			}
			start, ok := parseClock(sd.StartTime)
			if !ok {
				continue
			}
			end, ok := parseClock(sd.EndTime)
			if !ok {
				continue
			}
			if start < lo || end > hi {
				continue
			}
		}

		results[a.Name] = a
	}
	return results, nil
}

// AvailableDays returns the sorted distinct days on which any activity meets.
func (s *ActivityService) AvailableDays(ctx context.Context) ([]string, error) {
	return s.activities.DistinctDays(ctx)
}

// Signup adds email to the activity's participant roster. It requires a
// valid teacher credential and rejects duplicate signups.
func (s *ActivityService) Signup(ctx context.Context, activityName, email, teacherUsername string) (string, error) {
	if err := s.requireTeacher(ctx, teacherUsername); err != nil {
		return "", err
	}

	activity, err := s.activities.Get(ctx, activityName)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrActivityNotFound
	}
	if err != nil {
		return "", err
	}

	if slices.Contains(activity.Participants, email) {
		return "", ErrAlreadySignedUp
	}

	modified, err := s.activities.PushParticipant(ctx, activityName, email)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "", ErrUpdateFailed
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister removes email from the activity's participant roster under the
// same credential rules as Signup.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email, teacherUsername string) (string, error) {
	if err := s.requireTeacher(ctx, teacherUsername); err != nil {
		return "", err
	}

	activity, err := s.activities.Get(ctx, activityName)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrActivityNotFound
	}
	if err != nil {
		return "", err
	}

	if !slices.Contains(activity.Participants, email) {
		return "", ErrNotRegistered
	}

	modified, err := s.activities.PullParticipant(ctx, activityName, email)
	if err != nil {
		return "", err
	}
	if modified == 0 {
		return "", ErrUpdateFailed
	}

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

func (s *ActivityService) requireTeacher(ctx context.Context, username string) error {
	if username == "" {
		return ErrAuthRequired
	}
	ok, err := s.auth.Verify(ctx, username)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredential
	}
	return nil
}

// parseClock converts a zero-padded 24-hour "HH:MM" string to minutes since
// midnight. Comparing minutes keeps range checks correct without relying on
// lexicographic string order.
func parseClock(v string) (int, bool) {
	hh, mm, ok := strings.Cut(v, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
