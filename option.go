package smallargs

import (
	"fmt"
)

// Type is the value type of an option.
type Type int

const (
	Int Type = iota
	UInt
	Double
	Bool
	String
	lastType
)

var typeNames = [...]string{
	Int:    "INT",
	UInt:   "UINT",
	Double: "DOUBLE",
	Bool:   "BOOL",
	String: "STRING",
}

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Label is how the type is described in the help text.  Booleans take
// no argument so they have no label.
func (t Type) Label() string {
	if t == Bool || !t.valid() {
		return ""
	}
	return typeNames[t]
}

func (t Type) valid() bool {
	return t >= Int && t < lastType
}

// Callback is invoked by Parse every time its option is seen, after the
// value has been updated.  Returning an error stops parsing and that
// error is returned by Parse as-is.
type Callback func(*Registry, *Value) error

// Option declares one flag.  Empty names are absent.  An option needs at
// least one of Short or Long to ever be found.
type Option struct {
	Short    string
	Long     string
	Help     string
	Type     Type
	Callback Callback
}

// Name is Short if set, otherwise Long.
func (o Option) Name() string {
	if o.Short != "" {
		return o.Short
	}
	return o.Long
}

func (o Option) matches(name string) bool {
	if name == "" {
		return false
	}
	return o.Short == name || o.Long == name
}
