// Package lint validates the manifest of every plugin under a plugins
// directory.
//
// Each plugin is linted independently: a missing or unparsable manifest
// produces one error for that plugin and linting moves on to the next.
// Plugins are visited in name order so repeated runs print identical
// output.
package lint
