package domain

import "errors"

// ErrInvalidGrid is returned when a grid is not rectangular or holds an empty token.
var ErrInvalidGrid = errors.New("invalid grid")

// ErrOutOfRange is returned when a cell lookup falls outside the grid bounds.
var ErrOutOfRange = errors.New("position out of range")

// ErrTerminated is returned when stepping a walk that has already finished.
var ErrTerminated = errors.New("walk already terminated")

// ErrGridNotFound is returned when a loader has no grid under the requested name.
var ErrGridNotFound = errors.New("grid not found")
