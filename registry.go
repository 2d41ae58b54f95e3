package smallargs

import (
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
)

// Validate is a subset of the Validate provided by
// https://github.com/go-playground/validator, allowing
// other implementations to be provided if desired.  It is used
// by Fill.
type Validate interface {
	Struct(s interface{}) error
}

const defaultHelpWidth = 30

// Registry holds the declared options and, in parallel, their values.
// A Registry is not safe for concurrent use.
type Registry struct {
	name      string
	options   []Option
	values    []Value
	destroyed bool
	validator Validate
	output    io.Writer
	helpWidth int
	model     reflect.Type // set by FromStruct
	fields    [][]int      // struct field index for each option
}

type RegistryFuncArg func(*Registry)

// WithValidate sets the validator that Fill runs after filling a struct.
func WithValidate(v Validate) RegistryFuncArg {
	return func(r *Registry) {
		r.validator = v
	}
}

// WithOutput changes where PrintHelp writes.  The default is os.Stdout.
func WithOutput(w io.Writer) RegistryFuncArg {
	return func(r *Registry) {
		r.output = w
	}
}

// WithHelpWidth sets the width of the option column in the help text.
func WithHelpWidth(width int) RegistryFuncArg {
	return func(r *Registry) {
		r.helpWidth = width
	}
}

// New creates a Registry from a list of options.  The list is copied so the
// caller is free to reuse it.  Either a complete Registry or an error is
// returned.
func New(programName string, options []Option, opts ...RegistryFuncArg) (*Registry, error) {
	for i, o := range options {
		if !o.Type.valid() {
			return nil, UsageError(errors.Errorf("option %d (%s): invalid type %s", i, o.Name(), o.Type))
		}
	}
	copied, ok := deepcopy.Copy(options).([]Option)
	if !ok {
		return nil, allocationError(errors.New("could not copy options"))
	}
	r := &Registry{
		name:      programName,
		options:   copied,
		values:    make([]Value, len(copied)),
		output:    os.Stdout,
		helpWidth: defaultHelpWidth,
	}
	for i, o := range r.options {
		r.values[i] = newValue(o.Type)
	}
	for _, f := range opts {
		f(r)
	}
	debug("registry: created", programName, "with", len(r.options), "options")
	return r, nil
}

// Name is the program name shown in the help text.
func (r *Registry) Name() string { return r.name }

// Len is the number of options, or -1 once the Registry is destroyed.
func (r *Registry) Len() int {
	if r.destroyed {
		return -1
	}
	return len(r.options)
}

// Options returns a copy of the declared options in declaration order.
func (r *Registry) Options() []Option {
	o := make([]Option, len(r.options))
	copy(o, r.options)
	return o
}

// Destroy releases the options and values.  Calling it again does nothing.
func (r *Registry) Destroy() {
	if r.destroyed {
		return
	}
	for i := range r.values {
		r.values[i].reset(r.values[i].typ)
	}
	r.options = nil
	r.values = nil
	r.model = nil
	r.fields = nil
	r.destroyed = true
	debug("registry: destroyed", r.name)
}

// FindIndex strips leading dashes from name and returns the index of the
// first option, in declaration order, with that short or long name.
func (r *Registry) FindIndex(name string) (int, bool) {
	name = strings.TrimLeft(name, "-")
	for i, o := range r.options {
		if o.matches(name) {
			return i, true
		}
	}
	return -1, false
}

// Get returns the live value for an option.  The pointer is only good
// until the next Parse or Destroy; use Value.Snapshot to keep it longer.
func (r *Registry) Get(name string) (*Value, error) {
	i, ok := r.FindIndex(name)
	if !ok {
		return nil, NotFoundError(errors.Errorf("option %s not defined", name))
	}
	return &r.values[i], nil
}

// Each visits every option in declaration order until fn returns false.
// name is the short name when there is one, the long name otherwise.
func (r *Registry) Each(fn func(name string, opt Option, v *Value) bool) {
	for i, o := range r.options {
		if !fn(o.Name(), o, &r.values[i]) {
			return
		}
	}
}

func (r *Registry) reset() {
	for i, o := range r.options {
		r.values[i].reset(o.Type)
	}
}
