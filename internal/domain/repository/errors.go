package repository

import "errors"

// ErrNotFound is returned by repositories when no row matches the query.
// Services branch on it to keep "does not exist" distinct from
// infrastructure failure; anything else bubbling out of a repository is
// internal.
var ErrNotFound = errors.New("not found")
