package streamout

// Flags mirrors the FLAG_* bitmask streamout.c accumulates while parsing
// the flag characters of a conversion ("-", "+", " ", "0", "#").
type Flags uint8

const (
	FlagLeftAlign      Flags = 1 << iota // '-': left-justify within the field
	FlagForceSign                        // '+': always show a sign on signed numerics
	FlagForceSignSpace                   // ' ': show a space where '+' would go
	FlagPadZero                          // '0': pad the field with '0' instead of ' '
	FlagAlt                              // '#': alternate form (0/0x/0X prefix, decimal point always present)
)

// Length is the length modifier attached to a conversion: "h", "l", "ll",
// "L", "w", "z", "I", "I32", "I64". It controls how wide an integer
// argument is interpreted as, and forces char wideness for %c/%C. String
// conversions (%s/%S/%Z) ignore it.
type Length int

const (
	// LenDefault: no modifier, or I32 (32-bit int width).
	LenDefault Length = iota
	LenShort          // h
	LenLong           // l
	LenLongLong       // ll, I64
	LenLongDouble     // L (floats only; no width effect in this engine)
	LenWide           // w
	LenSizeT          // z
	LenIntPtr         // I (before x X d i u o), and forced by %p: full 64-bit pointer width
)

// ConvSpec is the fully parsed description of one "%...X" conversion,
// assembled by the state machine in parse.go and consumed by the per-kind
// renderers (integer.go, float.go, char.go, stringconv.go, nconv.go).
type ConvSpec struct {
	Flags     Flags
	Width     int
	HasWidth  bool
	Precision int  // -1 means "unspecified" (spec.md's sentinel)
	Length    Length
	Conv      byte // the conversion letter itself, e.g. 'd', 'x', 'f'
}

func (c *ConvSpec) leftAlign() bool  { return c.Flags&FlagLeftAlign != 0 }
func (c *ConvSpec) forceSign() bool  { return c.Flags&FlagForceSign != 0 }
func (c *ConvSpec) signSpace() bool  { return c.Flags&FlagForceSignSpace != 0 }
func (c *ConvSpec) padZero() bool    { return c.Flags&FlagPadZero != 0 }
func (c *ConvSpec) alt() bool        { return c.Flags&FlagAlt != 0 }
