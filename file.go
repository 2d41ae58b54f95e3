package smallargs

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// placeholder stands in for the program name in synthesized argument
// vectors so that Parse can skip it.
const placeholder = "smallargs"

// ParseFile reads options from a file, one per line:
//
//	n 15
//	q
//	file foo
//
// Each line is an option name without dashes, then optionally whitespace
// and a value.  The value is the rest of the line, spaces included.  Blank
// lines are skipped.  The result is exactly what Parse would produce from
// the equivalent command line.
func (r *Registry) ParseFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return IOError(errors.Wrapf(err, "open %s", path))
	}
	defer f.Close()
	debug("file: parsing", path)
	return r.ParseReader(f)
}

// ParseReader is ParseFile for an already open reader.
func (r *Registry) ParseReader(reader io.Reader) error {
	argv, err := readArgs(reader)
	if err != nil {
		return err
	}
	return r.Parse(argv)
}

func readArgs(reader io.Reader) ([]string, error) {
	argv := []string{placeholder}
	buf := bufio.NewReader(reader)
	for {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, IOError(errors.Wrap(err, "read arguments"))
		}
		if line = strings.TrimSpace(line); line != "" {
			name, value, hasValue := splitLine(line)
			argv = append(argv, "-"+name)
			if hasValue {
				argv = append(argv, value)
			}
		}
		if err == io.EOF {
			return argv, nil
		}
	}
}

// splitLine splits a trimmed line on its first run of whitespace.
func splitLine(line string) (string, string, bool) {
	i := strings.IndexAny(line, " \t")
	if i == -1 {
		return line, "", false
	}
	return line[:i], strings.TrimLeft(line[i:], " \t"), true
}
