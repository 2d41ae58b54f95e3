package smallargs

import (
	"strconv"

	"github.com/muir/nflex"
	"github.com/pkg/errors"
)

// ParseConfigFile reads options from a structured file (JSON or YAML, as
// determined by the file extension) using
// https://pkg.go.dev/github.com/muir/nflex#UnmarshalFile.  Each top-level
// key is an option name:
//
//	{"n": 15, "q": true, "file": ["a", "foo"]}
//
// A list gives the option once per element.  For booleans, true means
// once, false means not at all, and an integer is a repeat count.
// Keys are applied in document order and then parsed exactly like a
// command line.
func (r *Registry) ParseConfigFile(path string, opts ...nflex.UnmarshalFileArg) error {
	if r.destroyed {
		return UsageError(errors.New("ParseConfigFile called on a destroyed Registry"))
	}
	source, err := nflex.UnmarshalFile(path, opts...)
	if err != nil {
		return IOError(errors.Wrapf(err, "load %s", path))
	}
	debug("source: parsing", path)
	argv, err := r.sourceArgs(source)
	if err != nil {
		return errors.Wrap(err, path)
	}
	return r.Parse(argv)
}

func (r *Registry) sourceArgs(source nflex.Source) ([]string, error) {
	argv := []string{placeholder}
	keys, err := source.Keys()
	if err != nil {
		if source.Type() == nflex.Nil {
			return argv, nil
		}
		return nil, ParseError(errors.Wrap(err, "top level must be a map"))
	}
	for _, key := range keys {
		idx, ok := r.FindIndex(key)
		if !ok {
			return nil, NotFoundError(errors.Errorf("option %s not defined", key))
		}
		opt := r.options[idx]
		flag := "-" + key
		switch source.Type(key) {
		case nflex.Nil, nflex.Undefined:
			continue
		case nflex.Map:
			return nil, ParseError(errors.Errorf("%s: maps are not supported", key))
		case nflex.Slice:
			n, err := source.Len(key)
			if err != nil {
				return nil, ParseError(errors.Wrap(err, key))
			}
			for i := 0; i < n; i++ {
				argv, err = appendSourceValue(argv, source, opt, flag, key, strconv.Itoa(i))
				if err != nil {
					return nil, err
				}
			}
		default:
			argv, err = appendSourceValue(argv, source, opt, flag, key)
			if err != nil {
				return nil, err
			}
		}
	}
	return argv, nil
}

func appendSourceValue(argv []string, source nflex.Source, opt Option, flag string, keys ...string) ([]string, error) {
	if opt.Type == Bool {
		n, err := sourceRepeat(source, keys)
		if err != nil {
			return nil, ParseError(errors.Wrap(err, flag))
		}
		for i := int64(0); i < n; i++ {
			argv = append(argv, flag)
		}
		return argv, nil
	}
	s, err := sourceScalar(source, keys)
	if err != nil {
		return nil, ParseError(errors.Wrap(err, flag))
	}
	return append(argv, flag, s), nil
}

// maxRepeat bounds how many times a count in a structured file repeats a
// boolean option.
const maxRepeat = 1 << 16

func sourceRepeat(source nflex.Source, keys []string) (int64, error) {
	switch source.Type(keys...) {
	case nflex.Bool:
		b, err := source.GetBool(keys...)
		if err != nil || !b {
			return 0, err
		}
		return 1, nil
	case nflex.Int:
		n, err := source.GetInt(keys...)
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, errors.Errorf("negative repeat count %d", n)
		}
		if n > maxRepeat {
			return 0, errors.Errorf("repeat count %d is more than %d", n, maxRepeat)
		}
		return n, nil
	default:
		return 0, errors.New("expected true, false, or a count")
	}
}

// sourceScalar prefers the literal text so that "0x1F" and "017" keep
// their base.
func sourceScalar(source nflex.Source, keys []string) (string, error) {
	if s, err := source.GetString(keys...); err == nil {
		return s, nil
	}
	switch source.Type(keys...) {
	case nflex.Int:
		i, err := source.GetInt(keys...)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(i, 10), nil
	case nflex.Float:
		f, err := source.GetFloat(keys...)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case nflex.Bool:
		b, err := source.GetBool(keys...)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(b), nil
	default:
		return "", errors.Errorf("unsupported value at %v", keys)
	}
}
