package smallargs

import (
	"strings"

	"github.com/pkg/errors"
)

type parseConfig struct {
	start int
}

type ParseFuncArg func(*parseConfig)

// WithoutProgramName is for argument vectors that do not begin with the
// program name: scanning starts at the first element instead of the second.
func WithoutProgramName() ParseFuncArg {
	return func(c *parseConfig) {
		c.start = 0
	}
}

type tokenKind int

const (
	positionalToken tokenKind = iota
	shortToken
	longToken
)

func (k tokenKind) String() string {
	switch k {
	case shortToken:
		return "short"
	case longToken:
		return "long"
	default:
		return "positional"
	}
}

func classify(token string) tokenKind {
	switch {
	case !strings.HasPrefix(token, "-"):
		return positionalToken
	case token[1] != '-':
		return shortToken
	default:
		return longToken
	}
}

// Parse resets every value and then scans argv.  By default argv[0] is
// taken to be the program name and skipped.
//
// Each option is resolved by name, with any number of leading dashes.
// Options that are not booleans take the following element as their
// value, whatever it looks like.  Elements that do not start with a dash
// and are not consumed as values are ignored.
//
// Parse stops at the first error.  Values parsed before the error are
// kept.  An error returned by a callback is returned as-is.
func (r *Registry) Parse(argv []string, opts ...ParseFuncArg) error {
	if r.destroyed {
		return UsageError(errors.New("Parse called on a destroyed Registry"))
	}
	config := parseConfig{start: 1}
	for _, f := range opts {
		f(&config)
	}
	r.reset()

	for i := config.start; i < len(argv); i++ {
		token := argv[i]
		if len(token) < 2 {
			return ParseError(errors.Errorf("argument %d (%q) is too short", i, token))
		}
		k := classify(token)
		if k == positionalToken {
			debug("parse: ignoring", token)
			continue
		}
		idx, ok := r.FindIndex(token)
		if !ok {
			return NotFoundError(errors.Errorf("option %s not defined", token))
		}
		opt := r.options[idx]
		value := &r.values[idx]

		var arg string
		if opt.Type != Bool {
			if i+1 >= len(argv) {
				return ParseError(errors.Errorf("option %s expects a %s value", token, opt.Type))
			}
			i++
			arg = argv[i]
		}
		if debugging {
			debugf("parse: %s option %s -> %s %q", k, token, opt.Type, arg)
		}
		err := convert(arg, value)
		if err != nil {
			return err
		}
		value.count++

		if opt.Callback != nil {
			err := opt.Callback(r, value)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
