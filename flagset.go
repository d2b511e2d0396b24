package flagpole

import (
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Flag is a single named flag and its current value.
type Flag struct {
	Name  string
	Value bool
}

// FlagSet is a fixed, ordered collection of named boolean flags packed into
// the bits of an integer. The first name is the least significant bit.
//
// The names and their order never change after construction; only the values
// do. A FlagSet is not safe for concurrent use: callers sharing one between
// goroutines must guard it themselves.
type FlagSet struct {
	order []string
	index map[string]int
	bits  Bits
}

// New creates a FlagSet for names, with each flag initialised from the
// matching bit of value. Bits of value past the last name are ignored.
func New(names []string, value uint64) (*FlagSet, error) {
	return NewWithOptions(names, value, nil)
}

// MustNew is like New but panics if the names are invalid.
func MustNew(names []string, value uint64) *FlagSet {
	fs, err := New(names, value)
	if err != nil {
		panic(err)
	}
	return fs
}

func NewWithOptions(names []string, value uint64, options *Options) (*FlagSet, error) {
	// Set default options if no options are provided.
	if options == nil {
		options = DefaultOptions
	}
	if len(names) > MaxFlags {
		return nil, errors.Wrapf(ErrTooManyFlags, "%d names, at most %d allowed", len(names), MaxFlags)
	}

	fs := &FlagSet{
		order: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	copy(fs.order, names)
	for i, name := range fs.order {
		if name == "" {
			return nil, errors.Wrapf(ErrInvalidFlagName, "position %d", i)
		}
		if prev, ok := fs.index[name]; ok {
			return nil, errors.Wrapf(ErrDuplicateFlagName, "%q at positions %d and %d", name, prev, i)
		}
		fs.index[name] = i
	}

	v := Bits(value)
	for i := range fs.order {
		fs.bits = fs.bits.Assign(bit(i), v.Has(bit(i)))
	}

	if dropped := value >> uint(len(names)); dropped != 0 {
		if options.Strict {
			return nil, errors.Wrapf(ErrValueOverflow, "value %#x for %d flags", value, len(names))
		}
		options.logger().WithFields(log.Fields{
			"flags":   len(names),
			"value":   value,
			"dropped": value &^ uint64(fs.bits),
		}).Debug("flagpole: ignoring bits above the last flag")
	}
	return fs, nil
}

// Get returns the current value of the named flag.
func (fs *FlagSet) Get(name string) (bool, error) {
	i, err := fs.lookup(name)
	if err != nil {
		return false, err
	}
	return fs.bits.Has(bit(i)), nil
}

// Set changes the value of the named flag. No other flag is affected.
func (fs *FlagSet) Set(name string, value bool) error {
	i, err := fs.lookup(name)
	if err != nil {
		return err
	}
	fs.bits = fs.bits.Assign(bit(i), value)
	return nil
}

// ToInt returns the packed integer for the current flag values.
func (fs *FlagSet) ToInt() uint64 {
	return uint64(fs.bits)
}

// ToMap returns a copy of the current name to value associations. Changing
// the returned map does not affect the FlagSet. Use Flags for the same data
// in construction order.
func (fs *FlagSet) ToMap() map[string]bool {
	m := make(map[string]bool, len(fs.order))
	for i, name := range fs.order {
		m[name] = fs.bits.Has(bit(i))
	}
	return m
}

// Flags returns a copy of every flag and its value, in construction order.
func (fs *FlagSet) Flags() []Flag {
	flags := make([]Flag, len(fs.order))
	for i, name := range fs.order {
		flags[i] = Flag{Name: name, Value: fs.bits.Has(bit(i))}
	}
	return flags
}

// ValueOf returns the weight the named flag contributes to ToInt when set,
// whether or not it is currently set. It can be added to or masked out of
// the packed integer directly.
func (fs *FlagSet) ValueOf(name string) (uint64, error) {
	i, err := fs.lookup(name)
	if err != nil {
		return 0, err
	}
	return uint64(bit(i)), nil
}

func (fs *FlagSet) Names() []string {
	names := make([]string, len(fs.order))
	copy(names, fs.order)
	return names
}

func (fs *FlagSet) Len() int { return len(fs.order) }

// String lists the set flags joined by "|", or "0" when none is set.
func (fs *FlagSet) String() string {
	var set []string
	for i, name := range fs.order {
		if fs.bits.Has(bit(i)) {
			set = append(set, name)
		}
	}
	if len(set) == 0 {
		return "0"
	}
	return strings.Join(set, "|")
}

func (fs *FlagSet) lookup(name string) (int, error) {
	i, ok := fs.index[name]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownFlag, "%q", name)
	}
	return i, nil
}
