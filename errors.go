package flagpole

import "github.com/pkg/errors"

var (
	ErrUnknownFlag       = errors.New("unknown flag")
	ErrDuplicateFlagName = errors.New("duplicate flag name")
	ErrInvalidFlagName   = errors.New("flag name must not be empty")
	ErrTooManyFlags      = errors.New("too many flags")
	// ErrValueOverflow is only returned when Options.Strict is set.
	ErrValueOverflow = errors.New("value has bits set above the last flag")
)
