package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrNotFound, ExitUser),
			want: "resource not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(Wrap(ErrInvalidConfig, "loading config"), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through stdlib wrapping",
			err:        NewExitError(fmt.Errorf("reading manifest: %w", ErrInvalidJSON), ExitUser),
			wantTarget: ErrInvalidJSON,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", stderrors.New("boom"), ExitUser},
		{"user error", NewUserError(ErrValidationFailed, ""), ExitUser},
		{"system error", NewSystemError(ErrNotFound, "check permissions"), ExitSystem},
		{"wrapped exit error", Wrap(NewSystemError(ErrNotFound, ""), "executing"), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))

	err := Wrapf(ErrNotFound, "plugin %q", "foo")
	require.Error(t, err)
	assert.Equal(t, `plugin "foo": resource not found`, err.Error())
	assert.True(t, Is(err, ErrNotFound))

	marked := Mark(Newf("bad file %s", "x.json"), ErrInvalidJSON)
	assert.True(t, Is(marked, ErrInvalidJSON))
	assert.Equal(t, "bad file x.json", marked.Error())
}

func TestConstructors(t *testing.T) {
	t.Run("NewUserError", func(t *testing.T) {
		e := NewUserError(New("user error"), "check input")
		assert.Equal(t, ExitUser, e.Code)
		assert.Equal(t, "check input", e.Suggestion)
	})

	t.Run("NewSystemError", func(t *testing.T) {
		e := NewSystemError(New("system error"), "check logs")
		assert.Equal(t, ExitSystem, e.Code)
		assert.Equal(t, "check logs", e.Suggestion)
	})

	t.Run("NewConfigError", func(t *testing.T) {
		e := NewConfigError(New("config error"))
		assert.Equal(t, ExitUser, e.Code)
		assert.Equal(t, "Run: mplint config list", e.Suggestion)
	})
}

func TestExitCodeConstants(t *testing.T) {
	assert.Equal(t, 0, ExitSuccess)
	assert.Equal(t, 1, ExitUser)
	assert.Equal(t, 2, ExitSystem)
}

func TestCause(t *testing.T) {
	root := stderrors.New("root")
	err := Mark(Wrapf(Wrap(root, "inner"), "outer %d", 1), ErrInvalidJSON)

	assert.Equal(t, "outer 1: inner: root", err.Error())
	assert.Equal(t, root, Cause(err))
	assert.True(t, Is(err, ErrInvalidJSON))
}
