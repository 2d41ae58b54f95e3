package smallargs

import (
	"reflect"
	"unicode/utf8"

	"github.com/muir/commonerrors"
	"github.com/muir/reflectutils"
	"github.com/pkg/errors"
)

const (
	optionTag = "sarg"
	helpTag   = "help"
)

type sargTag struct {
	Name      []string `pt:"0,split=space"`
	IsCounter bool     `pt:"counter"`
}

// FromStruct creates a Registry from the exported fields of a struct
// that have a "sarg" tag.  The model must be a pointer to a struct.
//
//	type MyFlags struct {
//		Count   int     `sarg:"n count" help:"some count variable"`
//		File    string  `sarg:"file"    help:"out file"`
//		Verbose int     `sarg:"v,counter"`
//		Prob    float64 `sarg:"prob"`
//	}
//
// Names are separated by spaces.  A one-rune name is the short name and
// a longer name is the long name.  The option type follows the field
// kind.  Integer fields tagged "counter" are booleans whose occurrence
// count is stored.  Call Fill after Parse to copy the values back.
func FromStruct(programName string, model interface{}, opts ...RegistryFuncArg) (*Registry, error) {
	t, err := modelType(model)
	if err != nil {
		return nil, err
	}
	var options []Option
	var fields [][]int
	var walkErr error
	reflectutils.WalkStructElements(t, func(f reflect.StructField) bool {
		if walkErr != nil {
			return false
		}
		if f.PkgPath != "" {
			return false
		}
		tags := reflectutils.SplitTag(f.Tag).Set()
		var tag sargTag
		err := tags.Get(optionTag).Fill(&tag)
		if err != nil {
			walkErr = UsageError(errors.Wrap(err, f.Name))
			return false
		}
		o := Option{
			Help: tags.Get(helpTag).Value,
		}
		for _, n := range tag.Name {
			switch utf8.RuneCountInString(n) {
			case 0:
				continue
			case 1:
				if n == "-" {
					continue
				}
				o.Short = n
			default:
				o.Long = n
			}
		}
		if o.Short == "" && o.Long == "" {
			return true
		}
		typ, ok := fieldType(f.Type, tag.IsCounter)
		if !ok {
			walkErr = UsageError(commonerrors.ProgrammerError(
				errors.Errorf("field %s: cannot hold a command line value of type %s", f.Name, f.Type)))
			return false
		}
		o.Type = typ
		debug("fill: field", f.Name, "->", o.Short, o.Long, typ)
		options = append(options, o)
		fields = append(fields, f.Index)
		return false
	})
	if walkErr != nil {
		return nil, walkErr
	}
	r, err := New(programName, options, opts...)
	if err != nil {
		return nil, err
	}
	r.model = t
	r.fields = fields
	return r, nil
}

func modelType(model interface{}) (reflect.Type, error) {
	v := reflect.ValueOf(model)
	if !v.IsValid() || v.Type().Kind() != reflect.Ptr || v.IsNil() || v.Type().Elem().Kind() != reflect.Struct {
		return nil, UsageError(commonerrors.ProgrammerError(errors.Errorf(
			"model must be a non-nil pointer to a struct, not %T", model)))
	}
	return v.Type().Elem(), nil
}

func fieldType(t reflect.Type, isCounter bool) (Type, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if isCounter {
			return Bool, true
		}
		return Int, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if isCounter {
			return Bool, true
		}
		return UInt, true
	case reflect.Float32, reflect.Float64:
		return Double, !isCounter
	case reflect.Bool:
		return Bool, !isCounter
	case reflect.String:
		return String, !isCounter
	default:
		return 0, false
	}
}

// Fill copies the values of options that were given into the struct
// they were declared by.  Fields of options that were not given are left
// alone so they can carry defaults.  If a Validate was provided with
// WithValidate, the struct is validated afterwards.
func (r *Registry) Fill(model interface{}) error {
	t, err := modelType(model)
	if err != nil {
		return err
	}
	if r.model == nil {
		return UsageError(commonerrors.ProgrammerError(errors.New("Fill requires a Registry created by FromStruct")))
	}
	if t != r.model {
		return UsageError(commonerrors.ProgrammerError(errors.Errorf(
			"Fill called with %T but the Registry was created from %s", model, r.model)))
	}
	s := reflect.ValueOf(model).Elem()
	for i, index := range r.fields {
		value := &r.values[i]
		if value.count == 0 {
			continue
		}
		err := setField(s.FieldByIndex(index), value)
		if err != nil {
			return errors.Wrap(err, s.Type().FieldByIndex(index).Name)
		}
	}
	if r.validator != nil {
		err := r.validator.Struct(model)
		if err != nil {
			return UsageError(commonerrors.ConfigurationError(err))
		}
	}
	return nil
}

func setField(f reflect.Value, value *Value) error {
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := value.Int()
		if value.typ == Bool {
			i = int64(value.count)
		}
		if f.OverflowInt(i) {
			return ParseError(errors.Errorf("%d does not fit in %s", i, f.Type()))
		}
		f.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := value.Uint()
		if value.typ == Bool {
			u = uint64(value.count)
		}
		if f.OverflowUint(u) {
			return ParseError(errors.Errorf("%d does not fit in %s", u, f.Type()))
		}
		f.SetUint(u)
	case reflect.Float32, reflect.Float64:
		d := value.Double()
		if f.OverflowFloat(d) {
			return ParseError(errors.Errorf("%g does not fit in %s", d, f.Type()))
		}
		f.SetFloat(d)
	case reflect.Bool:
		f.SetBool(value.Bool())
	case reflect.String:
		f.SetString(value.Str())
	default:
		return errors.Errorf("internal error: not expecting %s", f.Type())
	}
	return nil
}
