// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags.
package buildinfo

import (
	"strings"
)

var (
	// Version is the semantic version or custom string.
	Version = "dev"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""
)

const shortCommitLen = 7

// Summary returns a concise single-line version string.
func Summary() string {
	return summary(Version, Commit, Date)
}

func summary(version, commit, date string) string {
	v := version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)

	if commit != "" {
		c := commit
		if len(c) > shortCommitLen {
			c = c[:shortCommitLen]
		}

		parts = append(parts, "commit="+c)
	}

	if date != "" {
		parts = append(parts, "date="+date)
	}

	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}

	return v
}
