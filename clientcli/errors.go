package clientcli

import "errors"

var (
	// ErrNoProfiles is returned when the config file has no profiles.
	ErrNoProfiles = errors.New("no profiles configured")
	// ErrProfileNotFound is returned when the named profile doesn't exist.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when adding a profile whose name is taken.
	ErrProfileExists = errors.New("profile already exists")
)
