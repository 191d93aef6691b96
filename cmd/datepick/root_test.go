package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lululau/datepick/internal/calendar"
)

func TestParseCursor(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		args    []string
		want    calendar.Cursor
		hasPage bool
		wantErr bool
	}{
		{"none", nil, calendar.Cursor{Year: now.Year(), Month: now.Month()}, false, false},
		{"month", []string{"9"}, calendar.Cursor{Year: now.Year(), Month: time.September}, true, false},
		{"year", []string{"1983"}, calendar.Cursor{Year: 1983, Month: time.January}, true, false},
		{"year month", []string{"2012", "12"}, calendar.Cursor{Year: 2012, Month: time.December}, true, false},
		{"bad month", []string{"2012", "13"}, calendar.Cursor{}, false, true},
		{"not a number", []string{"abc"}, calendar.Cursor{}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasPage, err := parseCursor(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.hasPage, hasPage)
		})
	}
}

func runPlain(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "picker.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("type: range\nlocale: en\n"), 0o644))

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(append([]string{"--config", cfg, "-n", "-N", "--log-human=false"}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestPlainRunWithFlags(t *testing.T) {
	out, _, err := runPlain(t, "--value", "2024-02-20,2024-02-10", "--start-of-week", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, "Mo  Tu  We  Th  Fr  Sa  Su")
	assert.Contains(t, out, "2024-02-10 → 2024-02-20")
}

func TestPlainRunPageArgument(t *testing.T) {
	out, _, err := runPlain(t, "2030", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "July 2030")
}

func TestPlainRunReportsRejectedValue(t *testing.T) {
	out, errOut, err := runPlain(t, "--value", "2024-02-20,2024-02-10,2024-02-11")
	require.NoError(t, err)
	assert.Contains(t, out, "未选择日期")
	assert.True(t, strings.Contains(errOut, `"property":"value"`), errOut)
}

func TestInvalidFlagValues(t *testing.T) {
	_, _, err := runPlain(t, "--start-of-week", "8")
	require.Error(t, err)

	_, _, err = runPlain(t, "--log-level", "chatty")
	require.Error(t, err)
}

func TestRejectedPropertyLoggedOnce(t *testing.T) {
	_, errOut, err := runPlain(t, "--log-level", "debug", "--min-date", "banana")
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(errOut), "\n") {
		if strings.Contains(line, "min-date") {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, 1, errOut)
	assert.Contains(t, lines[0], `"level":"warn"`)
}
