package flagpole

import (
	log "github.com/sirupsen/logrus"
)

// MaxFlags is the largest number of flags a FlagSet can hold.
const MaxFlags = 64

// Options represents the options that can be set when creating a FlagSet.
type Options struct {
	// Strict makes construction fail with ErrValueOverflow when the initial
	// value has bits set at positions past the last flag. By default such
	// bits are dropped.
	Strict bool

	// Logger receives debug records about construction. Defaults to the
	// logrus standard logger.
	Logger log.FieldLogger
}

var DefaultOptions = &Options{
	Strict: false,
}

func (o *Options) logger() log.FieldLogger {
	if o.Logger == nil {
		return log.StandardLogger()
	}
	return o.Logger
}
