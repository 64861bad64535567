package services

import (
	"context"

	"github.com/mergington/activities-gobackend/internal/store"
)

// Authenticator decides whether a presented identity is valid. The current
// implementation only checks that a teacher record exists; schemes with real
// credentials slot in behind the same interface without touching call sites.
type Authenticator interface {
	Verify(ctx context.Context, username string) (bool, error)
}

// TeacherAuthenticator authenticates by teacher-record existence.
type TeacherAuthenticator struct {
	teachers store.TeacherStore
}

func NewTeacherAuthenticator(teachers store.TeacherStore) *TeacherAuthenticator {
	return &TeacherAuthenticator{teachers: teachers}
}

func (a *TeacherAuthenticator) Verify(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, nil
	}
	return a.teachers.Exists(ctx, username)
}
