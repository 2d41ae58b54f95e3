package smallargs

// Value is the parse result for one option: its type, how many times it
// was seen during the last Parse, and a payload that always matches the
// type.
type Value struct {
	typ     Type
	count   uint
	payload payload
}

type payload interface {
	isPayload()
}

type (
	intPayload    int64
	uintPayload   uint64
	doublePayload float64
	boolPayload   uint64
	stringPayload string
)

func (intPayload) isPayload()    {}
func (uintPayload) isPayload()   {}
func (doublePayload) isPayload() {}
func (boolPayload) isPayload()   {}
func (stringPayload) isPayload() {}

func zeroPayload(t Type) payload {
	switch t {
	case Int:
		return intPayload(0)
	case UInt:
		return uintPayload(0)
	case Double:
		return doublePayload(0)
	case Bool:
		return boolPayload(0)
	case String:
		return stringPayload("")
	default:
		return nil
	}
}

func newValue(t Type) Value {
	var v Value
	v.reset(t)
	return v
}

func (v *Value) reset(t Type) {
	v.typ = t
	v.count = 0
	v.payload = zeroPayload(t)
}

func (v *Value) Type() Type { return v.typ }

// Count is the number of times the option was given.
func (v *Value) Count() uint { return v.count }

func (v *Value) Int() int64 {
	p, _ := v.payload.(intPayload)
	return int64(p)
}

func (v *Value) Uint() uint64 {
	p, _ := v.payload.(uintPayload)
	return uint64(p)
}

func (v *Value) Double() float64 {
	p, _ := v.payload.(doublePayload)
	return float64(p)
}

// Flag is the raw payload of a boolean: one per occurrence.
func (v *Value) Flag() uint64 {
	p, _ := v.payload.(boolPayload)
	return uint64(p)
}

// Bool reports if a boolean option was given at all.
func (v *Value) Bool() bool {
	return v.Flag() > 0
}

// Str is the payload of a string option.  It is not called String so
// that Value does not look like a fmt.Stringer.
func (v *Value) Str() string {
	p, _ := v.payload.(stringPayload)
	return string(p)
}

// Interface returns the payload as int64, uint64, float64, uint64 (for
// booleans), or string.
func (v *Value) Interface() interface{} {
	switch p := v.payload.(type) {
	case intPayload:
		return int64(p)
	case uintPayload:
		return uint64(p)
	case doublePayload:
		return float64(p)
	case boolPayload:
		return uint64(p)
	case stringPayload:
		return string(p)
	default:
		return nil
	}
}

// Snapshot copies the value so that it can be kept past the next Parse.
func (v *Value) Snapshot() Value {
	return *v
}
