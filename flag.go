package flagpole

// Bits is the packed integer form of a flag set. Bit i holds the flag at
// position i.
type Bits uint64

func (b Bits) Set(flag Bits) Bits    { return b | flag }
func (b Bits) Clear(flag Bits) Bits  { return b &^ flag }
func (b Bits) Toggle(flag Bits) Bits { return b ^ flag }
func (b Bits) Has(flag Bits) bool    { return b&flag != 0 }

// Assign sets flag when on is true and clears it otherwise.
func (b Bits) Assign(flag Bits, on bool) Bits {
	if on {
		return b.Set(flag)
	}
	return b.Clear(flag)
}

// bit returns the weight of position i.
func bit(i int) Bits { return 1 << uint(i) }
