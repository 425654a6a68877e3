package repository

import "errors"

// ErrConflict is returned by write operations when a store-level constraint
// rejects the row: the doctor-scoped overlap exclusion on visit insert, or a
// unique index. Usecases translate it into their own conflict error.
var ErrConflict = errors.New("storage constraint violation")
