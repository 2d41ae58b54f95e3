// Obligatory // comment

/*
Package smallargs parses flat command lines into typed values.

Options are declared up front, either all at once with New(), one at a
time with NewBuilder(), or from struct tags with FromStruct():

	r, err := smallargs.New("myprog", []smallargs.Option{
		{Short: "n", Long: "count", Help: "some count variable", Type: smallargs.Int},
		{Short: "f", Long: "file", Help: "out file", Type: smallargs.String},
		{Short: "q", Long: "quiet", Help: "enable quiet mode", Type: smallargs.Bool},
	})

Then Parse() the command line and Get() the results by either name:

	err = r.Parse(os.Args)
	count, _ := r.Get("count")
	fmt.Println(count.Count(), count.Int())

The grammar is deliberately small: "-name" or "--name", followed by a
value unless the option is a boolean.  Either name works with either
number of dashes.  There is no "-abc" grouping, no "--name=value", and
no subcommands.  Elements that are not options and are not consumed as
values are ignored.

Every Parse starts by resetting all values, so a Registry can be parsed
again without results leaking from the previous call.  Within one Parse,
repeating an option increments its Count().  The last value given wins,
except for booleans where each occurrence adds one.

Options can also come from a file with one "name value" per line
(ParseFile), or from a JSON or YAML document (ParseConfigFile).

Callbacks are invoked as each option is parsed.  They receive the Registry
so they need no global state.  A callback that returns an error stops
parsing and that same error is returned by Parse.

Errors can be checked with IsParseError(), IsNotFoundError(),
IsIOError(), IsUsageError() or reduced to an ErrorCode with Code().

A Registry is not safe for concurrent use.

Build with -tags debugSmallargs to trace parsing with the log package.
*/
package smallargs
