package smallargs

import (
	"github.com/muir/nject"
)

// Inject builds a Callback from a dependency-injection chain.  The chain
// may ask for *Registry and *Value.  Functions in the chain that return
// nject.TerminalError abort the chain; a non-nil TerminalError stops Parse.
//
//	smallargs.Option{
//		Short:    "v",
//		Type:     smallargs.Bool,
//		Callback: smallargs.Inject(func(v *smallargs.Value) { verbosity = v.Count() }),
//	}
//
// Errors binding the chain are reported by the returned Callback the first
// time it is invoked.
func Inject(chain ...interface{}) Callback {
	var cb Callback
	err := nject.Sequence("default-error-responder",
		nject.Provide("default-error", func() nject.TerminalError {
			return nil
		})).Append("callback", chain...).Bind(&cb, nil)
	if err != nil {
		bindErr := UsageError(err)
		return func(*Registry, *Value) error {
			return bindErr
		}
	}
	return cb
}
