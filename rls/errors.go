package rls

import "errors"

// ErrInvalidArgument indicates a bad tap count, a bad regularization
// constant or sample counts that do not fit the supplied series.
var ErrInvalidArgument = errors.New("rls: invalid argument")
