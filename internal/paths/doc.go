// Package paths describes the on-disk layout of a plugin marketplace
// repository and the locations mplint reads its own configuration from.
//
// # Repository Layout
//
//	<root>/.claude-plugin/marketplace.json          marketplace manifest
//	<root>/plugins/<name>/.claude-plugin/plugin.json plugin manifest
//	<root>/plugins/<name>/README.md                  plugin documentation
//
// Paths referenced from inside a plugin manifest are relative to the plugin
// directory and must start with [RelativePrefix].
package paths
