package services

import "errors"

// Error taxonomy surfaced to the transport layer. The message strings are
// part of the API surface that clients already depend on, hence the
// capitalization.
var (
	ErrAuthRequired         = errors.New("Authentication required for this action")
	ErrInvalidCredential    = errors.New("Invalid teacher credentials")
	ErrActivityNotFound     = errors.New("Activity not found")
	ErrAlreadySignedUp      = errors.New("Already signed up for this activity")
	ErrNotRegistered        = errors.New("Not registered for this activity")
	ErrUpdateFailed         = errors.New("Failed to update activity")
	ErrAnnouncementAuth     = errors.New("Authentication required")
	ErrAnnouncementNotFound = errors.New("Announcement not found")
	ErrMissingFields        = errors.New("Message and expiration date required")
	ErrInvalidDate          = errors.New("Invalid date format (YYYY-MM-DD)")
)
