package smallargs

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// HelpText renders the usage message:
//
//	Usage: test [OPTION]... [ARG]...
//
//	  -n, --count INT             some count variable
//	  --file STRING               out file
//	  -q                          enable quiet mode
//
// Options without any name are left out.  The output only depends on
// the declared options.
func (r *Registry) HelpText() string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(r.name)
	b.WriteString(" [OPTION]... [ARG]...\n\n")
	for _, o := range r.options {
		if o.Short == "" && o.Long == "" {
			continue
		}
		left := formatOption(o)
		b.WriteString(left)
		if o.Help != "" {
			if pad := r.helpWidth - len(left); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			} else {
				b.WriteByte(' ')
			}
			b.WriteString(o.Help)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatOption(o Option) string {
	var b strings.Builder
	b.WriteString("  ")
	if o.Short != "" {
		b.WriteRune('-')
		b.WriteString(o.Short)
		if o.Long != "" {
			b.WriteString(", ")
		}
	}
	if o.Long != "" {
		b.WriteString("--")
		b.WriteString(o.Long)
	}
	b.WriteString(prependSpace(o.Type.Label()))
	return b.String()
}

// WriteHelp writes HelpText to w.
func (r *Registry) WriteHelp(w io.Writer) error {
	_, err := io.WriteString(w, r.HelpText())
	return IOError(errors.Wrap(err, "write help"))
}

// PrintHelp writes HelpText to the output set with WithOutput, os.Stdout
// by default.
func (r *Registry) PrintHelp() error {
	return r.WriteHelp(r.output)
}
