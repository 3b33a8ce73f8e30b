package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{``, false},
		{`null`, false},
		{`false`, false},
		{`0`, false},
		{`0.0`, false},
		{`""`, false},
		{`true`, true},
		{`1`, true},
		{`-1`, true},
		{`"x"`, true},
		{`[]`, true},
		{`{}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, truthy([]byte(tt.input)))
		})
	}
}

func TestFields_Str(t *testing.T) {
	f, ok := objectFields([]byte(`{"a": "x", "b": 1, "c": null, "d": "esc\"aped"}`))
	assert.True(t, ok)
	assert.Equal(t, "x", f.str("a"))
	assert.Equal(t, "", f.str("b"))
	assert.Equal(t, "", f.str("c"))
	assert.Equal(t, `esc"aped`, f.str("d"))
	assert.Equal(t, "", f.str("missing"))
}

func TestObjectFields_NonObject(t *testing.T) {
	for _, input := range []string{`[]`, `"x"`, `null`, `1`, ``} {
		_, ok := objectFields([]byte(input))
		assert.False(t, ok, input)
	}
}
