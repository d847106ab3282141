package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		version, commit, date string
		want                  string
	}{
		"empty version":  {want: "dev"},
		"version only":   {version: "1.2.0", want: "1.2.0"},
		"short commit":   {version: "1.2.0", commit: "abc", want: "1.2.0 (commit=abc)"},
		"long commit":    {version: "1.2.0", commit: "0123456789abcdef", want: "1.2.0 (commit=0123456)"},
		"commit and date": {
			version: "1.2.0", commit: "0123456789", date: "2024-05-01",
			want: "1.2.0 (commit=0123456, date=2024-05-01)",
		},
		"date only": {date: "2024-05-01", want: "dev (date=2024-05-01)"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, summary(tc.version, tc.commit, tc.date))
		})
	}
}
