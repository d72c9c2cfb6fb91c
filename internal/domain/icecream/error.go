package icecream

import (
	"errors"
)

var (
	ErrNotFound = errors.New("icecream not found")
	ErrDecode   = errors.New("invalid icecream body")
)
