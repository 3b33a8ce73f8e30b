// Package config provides configuration management for the mplint CLI.
//
// Configuration is optional. Without a file, mplint validates the current
// directory using the conventional repository layout.
//
// # Configuration File
//
// Viper searches for .mplint.yaml (or .mplint.toml, .mplint.json) in the
// current directory, then in $XDG_CONFIG_HOME/mplint. MPLINT_CONFIG_DIR
// replaces the XDG location. Every key can also be set through an
// MPLINT_-prefixed environment variable.
//
//	version: 1
//	root: .
//	plugins_dir: plugins
//	default_plugin_root: plugins
//	color: auto
//
// # Validation
//
// [Load] validates what it reads; [Validate] can be called directly:
//
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
