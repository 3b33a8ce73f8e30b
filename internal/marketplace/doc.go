// Package marketplace validates a marketplace manifest and cross-checks
// locally sourced plugins against the filesystem.
//
// Validation never stops at the first problem. Every rule is applied and
// its outcome recorded in a validator.Result, in the order the checks run,
// so that a single invocation reports every defect. Only a missing or
// unparsable manifest is fatal.
package marketplace
