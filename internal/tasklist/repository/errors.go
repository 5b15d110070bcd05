package repository

import "errors"

var (
	// ErrTokenRequired means the save path has no access token to present.
	ErrTokenRequired = errors.New("remote access token is required")

	// ErrSaveConflict means the remote rejected the write because the file
	// changed since its content hash was read (someone else wrote first).
	ErrSaveConflict = errors.New("remote file changed since last read")

	// ErrNoSnapshot means no durable local snapshot has been written yet.
	ErrNoSnapshot = errors.New("no local snapshot available")
)
