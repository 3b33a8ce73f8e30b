package validator

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Severity markers written at the start of each console line.
const (
	markerError   = "❌ ERROR: "
	markerWarning = "⚠️  WARNING: "
	markerSuccess = "✅ "
	markerInfo    = "ℹ️  "
	markerFailed  = "❌ "
)

const ruleWidth = 50

// Summary names the run in the final summary line.
type Summary struct {
	// Activity is the capitalized noun of the run, e.g. "Validation" or "Linting".
	Activity string
	// Clean is printed when there are neither errors nor warnings.
	Clean string
}

// Reporter writes validation results to a console, one line per issue.
// Lines are human-facing; there is no machine-readable mode.
type Reporter struct {
	out io.Writer

	errColor  *color.Color
	warnColor *color.Color
	okColor   *color.Color
	infoColor *color.Color
	headColor *color.Color
}

// NewReporter creates a Reporter writing to out. Colors are emitted only when
// useColor is true.
func NewReporter(out io.Writer, useColor bool) *Reporter {
	r := &Reporter{
		out:       out,
		errColor:  color.New(color.FgRed),
		warnColor: color.New(color.FgYellow),
		okColor:   color.New(color.FgGreen),
		infoColor: color.New(color.FgCyan),
		headColor: color.New(color.Bold),
	}
	for _, c := range []*color.Color{r.errColor, r.warnColor, r.okColor, r.infoColor, r.headColor} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Title writes the banner that opens a run.
func (r *Reporter) Title(title string) {
	fmt.Fprintf(r.out, "🔍 %s\n\n", r.headColor.Sprint(title))
}

// Heading opens a per-plugin section.
func (r *Reporter) Heading(title string) {
	fmt.Fprintf(r.out, "\n📦 %s\n%s\n", r.headColor.Sprint(title), strings.Repeat("─", ruleWidth))
}

// Report writes every issue of result in order.
func (r *Reporter) Report(result *Result) {
	if result == nil {
		return
	}
	for _, i := range result.Issues {
		r.Issue(i)
	}
}

// Issue writes a single issue line.
func (r *Reporter) Issue(i Issue) {
	switch i.Severity {
	case SeverityError:
		fmt.Fprintln(r.out, r.errColor.Sprint(markerError+i.Message))
	case SeverityWarning:
		fmt.Fprintln(r.out, r.warnColor.Sprint(markerWarning+i.Message))
	case SeveritySuccess:
		fmt.Fprintln(r.out, r.okColor.Sprint(markerSuccess)+i.Message)
	default:
		fmt.Fprintln(r.out, r.infoColor.Sprint(markerInfo)+i.Message)
	}
}

// Info writes an informational line that is not part of any result.
func (r *Reporter) Info(format string, args ...any) {
	r.Issue(Issue{Severity: SeverityInfo, Message: fmt.Sprintf(format, args...)})
}

// Summary writes the closing rule and the aggregate pass/fail line.
func (r *Reporter) Summary(result *Result, s Summary) {
	fmt.Fprintf(r.out, "\n%s\n", strings.Repeat("=", ruleWidth))

	warnings := result.WarningCount()
	switch {
	case result.HasErrors():
		fmt.Fprintln(r.out, r.errColor.Sprintf("%s%s failed with errors (%d warning(s))", markerFailed, s.Activity, warnings))
	case warnings > 0:
		fmt.Fprintln(r.out, r.okColor.Sprintf("%s%s passed with %d warning(s)", markerSuccess, s.Activity, warnings))
	default:
		fmt.Fprintln(r.out, r.okColor.Sprint(markerSuccess+s.Clean))
	}
}
