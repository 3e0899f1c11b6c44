package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line  string
		args  []string
		isCmd bool
	}{
		{"cmd add cube", []string{"add", "cube"}, true},
		{"  cmd   grid --hide ", []string{"grid", "--hide"}, true},
		{`cmd name "red box"`, []string{"name", "red box"}, true},
		{"cmd position -1,2,3", []string{"position", "-1,2,3"}, true},
		{"cmd", []string{}, true},
		{"command add", nil, false},
		{"cmdadd", nil, false},
		{"hello there", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			args, ok, err := Parse(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.isCmd, ok)
			if tc.isCmd {
				assert.ElementsMatch(t, tc.args, args)
			} else {
				assert.Nil(t, args)
			}
		})
	}
}

func TestParseUnclosedQuote(t *testing.T) {
	_, ok, err := Parse(`cmd name "oops`)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register("echo", "echo <words...>", nil, func(args []string) error {
		got = args
		return nil
	})

	require.NoError(t, r.Execute([]string{"echo", "-1,2", "b"}))
	assert.Equal(t, []string{"-1,2", "b"}, got)

	assert.ErrorIs(t, r.Execute(nil), ErrMissingCommand)
	assert.EqualError(t, r.Execute([]string{"nope"}), "unknown command: nope")
}

func TestExecuteFlagsResetBetweenRuns(t *testing.T) {
	r := NewRegistry()
	fs := flag.NewFlagSet("grid", flag.ContinueOnError)
	show := fs.Bool("show", false, "")
	hide := fs.Bool("hide", false, "")
	var calls [][2]bool
	r.Register("grid", "grid --show|--hide", fs, func([]string) error {
		calls = append(calls, [2]bool{*show, *hide})
		return nil
	})

	require.NoError(t, r.Execute([]string{"grid", "--show"}))
	require.NoError(t, r.Execute([]string{"grid", "--hide"}))
	assert.Equal(t, [][2]bool{{true, false}, {false, true}}, calls)

	err := r.Execute([]string{"grid", "--bogus"})
	var uerr *UsageError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "grid", uerr.Command)
	assert.Contains(t, err.Error(), "usage: cmd grid --show|--hide")
}

func TestHelpSorted(t *testing.T) {
	r := NewRegistry()
	noop := func([]string) error { return nil }
	r.Register("save", "save", nil, noop)
	r.Register("add", "add cube|sphere", nil, noop)

	assert.Equal(t, []string{"add", "save"}, r.Names())
	assert.Equal(t, []string{"cmd add cube|sphere", "cmd save"}, r.Help())

	cmd, ok := r.Lookup("add")
	require.True(t, ok)
	assert.Equal(t, "add", cmd.Name)
}
