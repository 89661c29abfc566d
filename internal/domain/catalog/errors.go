package catalog

import "errors"

var (
	// ErrNotFound is returned when no painting has the requested idnumber.
	ErrNotFound = errors.New("painting not found")

	// ErrDuplicate is returned by Insert when an existing painting
	// already carries the candidate's title or filename.
	ErrDuplicate = errors.New("title or filename already exists")

	// ErrUnknownFilter is returned when a gallery filter, value or
	// order token is not in the allow-lists.
	ErrUnknownFilter = errors.New("invalid filter")

	// ErrNoFile is returned by RunImport when the upload is empty.
	ErrNoFile = errors.New("no file attached")
)
