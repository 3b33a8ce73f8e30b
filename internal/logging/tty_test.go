package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockWriter struct{}

func (m *mockWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "") // registers restoration of the previous value
	os.Unsetenv(key)
}

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name    string
		noColor *string
		term    string
		isTTY   bool
		want    bool
	}{
		{name: "tty with clean env", term: "xterm-256color", isTTY: true, want: true},
		{name: "NO_COLOR prevents color", noColor: ptr("1"), term: "xterm", isTTY: true, want: false},
		{name: "empty NO_COLOR prevents color", noColor: ptr(""), term: "xterm", isTTY: true, want: false},
		{name: "TERM=dumb prevents color", term: "dumb", isTTY: true, want: false},
		{name: "non-TTY prevents color", term: "xterm", isTTY: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.noColor == nil {
				unsetenv(t, "NO_COLOR")
			} else {
				t.Setenv("NO_COLOR", *tt.noColor)
			}
			t.Setenv("TERM", tt.term)

			assert.Equal(t, tt.want, supportsColor(&mockWriter{}, tt.isTTY))
		})
	}
}

func ptr(s string) *string { return &s }

func TestIsTTY_NonFile(t *testing.T) {
	assert.False(t, IsTTY(&mockWriter{}))
}

func TestUseColor(t *testing.T) {
	w := &mockWriter{}
	assert.True(t, UseColor(w, ColorAlways))
	assert.False(t, UseColor(w, ColorNever))
	assert.False(t, UseColor(w, ColorAuto), "auto never colors a non-TTY writer")
	assert.False(t, UseColor(w, ""), "empty mode behaves like auto")
}

func TestValidColorMode(t *testing.T) {
	for _, m := range []string{"auto", "always", "never"} {
		assert.True(t, ValidColorMode(m), m)
	}
	for _, m := range []string{"", "sometimes", "ALWAYS"} {
		assert.False(t, ValidColorMode(m), m)
	}
}
