package smallargs

import (
	"github.com/muir/commonerrors"
	"github.com/pkg/errors"
)

// Builder accumulates options one at a time:
//
//	r, err := smallargs.NewBuilder("myprog").
//		Add("h", "help", "show help text", smallargs.Bool, nil).
//		Add("c", "count", "count up to this number", smallargs.Int, nil).
//		Finalize()
//
// Errors are delayed until Finalize (or Err) so that calls can be chained.
type Builder struct {
	name       string
	options    []Option
	opts       []RegistryFuncArg
	finalized  bool
	delayedErr error
}

func NewBuilder(programName string, opts ...RegistryFuncArg) *Builder {
	return &Builder{
		name: programName,
		opts: opts,
	}
}

// Add declares another option.  Adding to a Builder that has already been
// finalized is a programmer error that is reported by Err and Finalize.
func (b *Builder) Add(short, long, help string, typ Type, callback Callback) *Builder {
	if b.finalized {
		if b.delayedErr == nil {
			b.delayedErr = UsageError(commonerrors.ProgrammerError(
				errors.Errorf("cannot add option %s%s after Finalize", short, prependSpace(long))))
		}
		return b
	}
	b.options = append(b.options, Option{
		Short:    short,
		Long:     long,
		Help:     help,
		Type:     typ,
		Callback: callback,
	})
	return b
}

// Err returns the first delayed error, if any.
func (b *Builder) Err() error {
	return b.delayedErr
}

// Finalize creates the Registry.  It can only succeed once.
func (b *Builder) Finalize() (*Registry, error) {
	if b.delayedErr != nil {
		return nil, b.delayedErr
	}
	if b.finalized {
		return nil, UsageError(commonerrors.ProgrammerError(
			errors.New("Finalize called more than once")))
	}
	b.finalized = true
	return New(b.name, b.options, b.opts...)
}
