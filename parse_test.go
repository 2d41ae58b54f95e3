package smallargs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioRegistry(t *testing.T) *Registry {
	r, err := New("app", []Option{
		{Short: "n", Long: "count", Help: "some count variable", Type: Int},
		{Short: "f", Long: "file", Help: "out file", Type: String},
		{Short: "q", Long: "quiet", Help: "enable quiet mode", Type: Bool},
	})
	require.NoError(t, err, "new")
	return r
}

func mustGet(t *testing.T, r *Registry, name string) *Value {
	v, err := r.Get(name)
	require.NoError(t, err, "get %s", name)
	return v
}

func TestParseScenario(t *testing.T) {
	r := scenarioRegistry(t)
	err := r.Parse([]string{"app", "-n", "10", "-q", "-q", "--file", "out.txt"})
	require.NoError(t, err, "parse")

	count := mustGet(t, r, "count")
	assert.Equal(t, uint(1), count.Count())
	assert.Equal(t, int64(10), count.Int())

	quiet := mustGet(t, r, "quiet")
	assert.Equal(t, uint(2), quiet.Count())
	assert.Equal(t, uint64(2), quiet.Flag())

	file := mustGet(t, r, "file")
	assert.Equal(t, uint(1), file.Count())
	assert.Equal(t, "out.txt", file.Str())
}

func TestParseSuccess(t *testing.T) {
	r, err := New("test", testOptions())
	require.NoError(t, err, "new")
	require.NoError(t, r.Parse([]string{"myapp", "--prob", "0.1", "-f", "myfile", "--count", "10", "-q"}), "parse")

	assert.InDelta(t, 0.1, mustGet(t, r, "prob").Double(), 0.01)
	assert.Equal(t, "myfile", mustGet(t, r, "file").Str())
	assert.Equal(t, uint64(10), mustGet(t, r, "count").Uint())
	assert.Equal(t, uint64(1), mustGet(t, r, "q").Flag())
	assert.Equal(t, uint(0), mustGet(t, r, "i").Count())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		argv []string
		code ErrorCode
		msg  string
	}{
		{
			argv: []string{"myapp", "--prob", "-f", "myfile", "--count", "10", "-q"},
			code: ParseCode,
			msg:  `not a number: "-f"`,
		},
		{
			argv: []string{"myapp", "--prob", "0.1", "-t", "myfile", "--count", "10", "-q"},
			code: NotFound,
			msg:  "option -t not defined",
		},
		{
			argv: []string{"app", "--prob"},
			code: ParseCode,
			msg:  "expects a DOUBLE value",
		},
		{
			argv: []string{"app", "-x"},
			code: NotFound,
		},
		{
			argv: []string{"app", "-"},
			code: ParseCode,
			msg:  "too short",
		},
		{
			argv: []string{"app", "x"},
			code: ParseCode,
			msg:  "too short",
		},
		{
			argv: []string{"app", ""},
			code: ParseCode,
		},
		{
			argv: []string{"app", "--"},
			code: NotFound,
		},
		{
			argv: []string{"app", "-i", "12abc"},
			code: ParseCode,
		},
		{
			argv: []string{"app", "-n", "0xZZ"},
			code: ParseCode,
		},
	}
	for _, tc := range cases {
		r, err := New("test", testOptions())
		require.NoError(t, err, "new")
		err = r.Parse(tc.argv)
		require.Error(t, err, "%v", tc.argv)
		assert.Equal(t, tc.code, Code(err), "%v: %s", tc.argv, err)
		if tc.msg != "" {
			assert.Contains(t, err.Error(), tc.msg, "%v", tc.argv)
		}
	}
}

func TestParseKeepsPartialResults(t *testing.T) {
	r := scenarioRegistry(t)
	err := r.Parse([]string{"app", "-n", "5", "-q", "-x", "-f", "never"})
	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.Equal(t, int64(5), mustGet(t, r, "n").Int())
	assert.Equal(t, uint(1), mustGet(t, r, "q").Count())
	assert.Equal(t, uint(0), mustGet(t, r, "f").Count())
}

func TestParseResets(t *testing.T) {
	r := scenarioRegistry(t)
	require.NoError(t, r.Parse([]string{"app", "-n", "10", "-q", "-q", "-q", "-f", "foo"}))
	require.NoError(t, r.Parse([]string{"app", "-n", "3"}))

	n := mustGet(t, r, "n")
	assert.Equal(t, uint(1), n.Count())
	assert.Equal(t, int64(3), n.Int())
	q := mustGet(t, r, "q")
	assert.Equal(t, uint(0), q.Count())
	assert.Equal(t, uint64(0), q.Flag())
	f := mustGet(t, r, "f")
	assert.Equal(t, uint(0), f.Count())
	assert.Equal(t, "", f.Str())
}

func TestParseDefaults(t *testing.T) {
	r, err := New("test", testOptions())
	require.NoError(t, err, "new")
	require.NoError(t, r.Parse([]string{"test"}))
	r.Each(func(name string, o Option, v *Value) bool {
		assert.Equal(t, uint(0), v.Count(), name)
		assert.Equal(t, o.Type, v.Type(), name)
		assert.Equal(t, zeroPayload(o.Type), v.payload, name)
		return true
	})
}

func TestParseLastValueWins(t *testing.T) {
	r := scenarioRegistry(t)
	require.NoError(t, r.Parse([]string{"app", "-f", "a", "--file", "b", "-file", "c"}))
	f := mustGet(t, r, "f")
	assert.Equal(t, uint(3), f.Count())
	assert.Equal(t, "c", f.Str())
}

func TestParseValueLooksLikeOption(t *testing.T) {
	r := scenarioRegistry(t)
	require.NoError(t, r.Parse([]string{"app", "-n", "-5", "-f", "--quiet"}))
	assert.Equal(t, int64(-5), mustGet(t, r, "n").Int())
	assert.Equal(t, "--quiet", mustGet(t, r, "f").Str())
	assert.Equal(t, uint(0), mustGet(t, r, "q").Count())
}

func TestParseIgnoresNonOptions(t *testing.T) {
	r := scenarioRegistry(t)
	require.NoError(t, r.Parse([]string{"app", "input.txt", "-q", "more", "stuff"}))
	assert.Equal(t, uint(1), mustGet(t, r, "q").Count())
}

func TestParseWithoutProgramName(t *testing.T) {
	r := scenarioRegistry(t)
	require.NoError(t, r.Parse([]string{"-q", "-n", "7"}, WithoutProgramName()))
	assert.Equal(t, uint(1), mustGet(t, r, "q").Count())
	assert.Equal(t, int64(7), mustGet(t, r, "n").Int())

	require.NoError(t, r.Parse([]string{"-q", "-n", "7"}))
	assert.Equal(t, uint(0), mustGet(t, r, "q").Count(), "first element skipped")
}

func TestParseCallbacks(t *testing.T) {
	var seen []string
	var r *Registry
	record := func(reg *Registry, v *Value) error {
		assert.Same(t, r, reg, "callback gets its registry")
		seen = append(seen, v.Type().String())
		return nil
	}
	r, err := New("app", []Option{
		{Short: "v", Long: "verbose", Type: Bool, Callback: func(reg *Registry, v *Value) error {
			seen = append(seen, "verbose")
			assert.Equal(t, v.Count(), uint(v.Flag()), "value is updated before the callback")
			return nil
		}},
		{Short: "c", Long: "count", Type: Int, Callback: record},
		{Long: "root", Type: Double, Callback: record},
		{Long: "say", Type: String, Callback: func(reg *Registry, v *Value) error {
			seen = append(seen, "say "+v.Str())
			return nil
		}},
	})
	require.NoError(t, err, "new")
	require.NoError(t, r.Parse([]string{"app", "-v", "-c", "3", "--root", "2", "-v", "--say", "hi there"}))
	assert.Equal(t, []string{"verbose", "INT", "DOUBLE", "verbose", "say hi there"}, seen)
}

func TestParseCallbackError(t *testing.T) {
	boom := errors.New("boom")
	var after int
	r, err := New("app", []Option{
		{Short: "n", Type: Int},
		{Short: "s", Type: String, Callback: func(reg *Registry, v *Value) error {
			if v.Str() == "stop" {
				return boom
			}
			return nil
		}},
		{Short: "q", Type: Bool, Callback: func(*Registry, *Value) error {
			after++
			return nil
		}},
	})
	require.NoError(t, err, "new")
	err = r.Parse([]string{"app", "-n", "4", "-s", "stop", "-q"})
	assert.Equal(t, boom, err, "callback error is returned unwrapped")
	assert.Equal(t, OtherCode, Code(err))
	assert.Equal(t, 0, after, "parsing stopped")
	assert.Equal(t, int64(4), mustGet(t, r, "n").Int(), "earlier values kept")
	s := mustGet(t, r, "s")
	assert.Equal(t, "stop", s.Str(), "value that failed the callback is kept")
	assert.Equal(t, uint(1), s.Count())
}

func TestParseCallbackKindedError(t *testing.T) {
	r, err := New("app", []Option{
		{Short: "n", Type: Int, Callback: func(reg *Registry, v *Value) error {
			if v.Int() < 0 {
				return ParseError(errors.Errorf("count must not be negative: %d", v.Int()))
			}
			return nil
		}},
	})
	require.NoError(t, err, "new")
	err = r.Parse([]string{"app", "-n", "-3"})
	assert.True(t, IsParseError(err))
}
