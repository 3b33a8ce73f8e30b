package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityInfo, "info"},
		{SeveritySuccess, "success"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name string
		i    Issue
		want string
	}{
		{
			name: "error with field and value",
			i: Issue{
				Severity: SeverityError,
				Field:    "name",
				Message:  "must be kebab-case",
				Value:    "My Plugin",
			},
			want: `error: field "name": must be kebab-case (got My Plugin)`,
		},
		{
			name: "warning without field",
			i: Issue{
				Severity: SeverityWarning,
				Message:  "missing recommended field: description",
			},
			want: "warning: missing recommended field: description",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.i.Error(); got != tt.want {
				t.Errorf("Issue.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_Helpers(t *testing.T) {
	r := &Result{}
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())

	r.AddErrorf("f1", "bad %s", "thing")
	r.AddWarning("f2", "m2", "v2")
	r.AddWarningf("f3", "m%d", 3)
	r.AddInfo("", "note", nil)
	r.AddSuccessf("", "ok %s", "x")

	assert.True(t, r.HasErrors())
	assert.True(t, r.HasWarnings())
	assert.Equal(t, 1, r.ErrorCount())
	assert.Equal(t, 2, r.WarningCount())
	assert.Len(t, r.Issues, 5)
	assert.Equal(t, "bad thing", r.Errors()[0].Message)
	assert.Equal(t, "m3", r.Warnings()[1].Message)
}

func TestResult_Merge(t *testing.T) {
	a := &Result{}
	a.AddError("a", "first", nil)
	b := &Result{}
	b.AddWarning("b", "second", nil)

	a.Merge(b)
	a.Merge(nil)

	assert.Len(t, a.Issues, 2)
	assert.Equal(t, "second", a.Issues[1].Message)
}

func TestResult_NilSafety(t *testing.T) {
	var r *Result
	assert.False(t, r.HasErrors())
	assert.False(t, r.HasWarnings())
	assert.Zero(t, r.WarningCount())
	assert.Nil(t, r.Errors())
	assert.Nil(t, r.Warnings())
}
