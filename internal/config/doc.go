// Package config holds the runtime settings of textpipe: defaults, an optional YAML file
// and the validation shared with the command-line flags. It also builds the slog logger
// those settings describe.
package config
