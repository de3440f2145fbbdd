package estimator

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Format selects how a Report is written
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

var _ pflag.Value = (*Format)(nil)

func (f *Format) String() string {
	if *f == "" {
		return string(FormatText)
	}
	return string(*f)
}

// Set implements pflag.Value
func (f *Format) Set(s string) error {
	for _, known := range formats {
		if strings.EqualFold(s, string(known)) {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (expected text, table, json or yaml)", s)
}

// Type implements pflag.Value
func (f *Format) Type() string {
	return "format"
}
