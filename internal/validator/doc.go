// Package validator provides the diagnostics framework shared by the
// marketplace and plugin validators.
//
// # Core Concepts
//
//   - [Severity]: error fails a run, warning never does, info and success
//     are progress lines.
//   - [Issue]: a single diagnostic with the field it concerns.
//   - [Result]: an ordered accumulator of issues.
//   - [Reporter]: writes results to a console, one line per issue.
//
// # Basic Usage
//
//	result := &validator.Result{}
//	if name == "" {
//		result.AddError("name", "missing required field: name", nil)
//	}
//
//	if result.HasErrors() {
//		// fail the run
//	}
package validator
