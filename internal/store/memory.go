package store

import (
	"context"
	"slices"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mergington/activities-gobackend/internal/models"
)

// In-memory implementations of the store interfaces. They back the test
// suite and local runs without a MongoDB instance. Mutations hold a mutex,
// mirroring the per-document atomicity the real store guarantees.

// MemoryActivityStore keeps activities in a map keyed by name.
type MemoryActivityStore struct {
	mu         sync.RWMutex
	activities map[string]models.Activity
}

func NewMemoryActivityStore(activities ...models.Activity) *MemoryActivityStore {
	s := &MemoryActivityStore{activities: make(map[string]models.Activity, len(activities))}
	for _, a := range activities {
		s.activities[a.Name] = cloneActivity(a)
	}
	return s
}

func (s *MemoryActivityStore) All(ctx context.Context) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		all = append(all, cloneActivity(a))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (s *MemoryActivityStore) Get(ctx context.Context, name string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	clone := cloneActivity(a)
	return &clone, nil
}

func (s *MemoryActivityStore) PushParticipant(ctx context.Context, name, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return 0, nil
	}
	a.Participants = append(a.Participants, email)
	s.activities[name] = a
	return 1, nil
}

func (s *MemoryActivityStore) PullParticipant(ctx context.Context, name, email string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.activities[name]
	if !ok {
		return 0, nil
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return 0, nil
	}
	a.Participants = slices.Delete(slices.Clone(a.Participants), i, i+1)
	s.activities[name] = a
	return 1, nil
}

func (s *MemoryActivityStore) DistinctDays(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, a := range s.activities {
		if a.ScheduleDetails == nil {
			continue
		}
		for _, d := range a.ScheduleDetails.Days {
			seen[d] = struct{}{}
		}
	}

	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)
	return days, nil
}

func cloneActivity(a models.Activity) models.Activity {
	a.Participants = slices.Clone(a.Participants)
	if a.ScheduleDetails != nil {
		sd := *a.ScheduleDetails
		sd.Days = slices.Clone(sd.Days)
		a.ScheduleDetails = &sd
	}
	return a
}

// MemoryAnnouncementStore keeps announcements in insertion order.
type MemoryAnnouncementStore struct {
	mu            sync.RWMutex
	announcements []models.Announcement
}

func NewMemoryAnnouncementStore() *MemoryAnnouncementStore {
	return &MemoryAnnouncementStore{}
}

func (s *MemoryAnnouncementStore) All(ctx context.Context) ([]models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.announcements), nil
}

func (s *MemoryAnnouncementStore) Get(ctx context.Context, id primitive.ObjectID) (*models.Announcement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.announcements {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryAnnouncementStore) Insert(ctx context.Context, a *models.Announcement) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = primitive.NewObjectID()
	s.announcements = append(s.announcements, *a)
	return a.ID, nil
}

func (s *MemoryAnnouncementStore) Update(ctx context.Context, id primitive.ObjectID, upd AnnouncementUpdate) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.announcements {
		if a.ID != id {
			continue
		}
		a.Message = upd.Message
		a.ExpirationDate = upd.ExpirationDate
		if upd.StartDate != "" {
			a.StartDate = upd.StartDate
		}
		s.announcements[i] = a
		return 1, nil
	}
	return 0, nil
}

func (s *MemoryAnnouncementStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.announcements {
		if a.ID == id {
			s.announcements = slices.Delete(s.announcements, i, i+1)
			return 1, nil
		}
	}
	return 0, nil
}

// MemoryTeacherStore resolves usernames against a fixed set of records.
type MemoryTeacherStore struct {
	teachers map[string]models.Teacher
}

func NewMemoryTeacherStore(teachers ...models.Teacher) *MemoryTeacherStore {
	s := &MemoryTeacherStore{teachers: make(map[string]models.Teacher, len(teachers))}
	for _, t := range teachers {
		s.teachers[t.Username] = t
	}
	return s
}

func (s *MemoryTeacherStore) Exists(ctx context.Context, username string) (bool, error) {
	_, ok := s.teachers[username]
	return ok, nil
}
