package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/hance08/tally/internal/constants"
)

// DelimiterRune returns the input delimiter as a single rune.
func (c *Config) DelimiterRune() (rune, error) {
	d := c.Input.Delimiter
	if d == `\t` {
		return '\t', nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return 0, fmt.Errorf("input delimiter must be a single character, got %q", d)
	}
	r, _ := utf8.DecodeRuneInString(d)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid input delimiter %q", d)
	}
	return r, nil
}

func (c *Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}

	switch c.Output.Format {
	case constants.FormatCSV, constants.FormatTable:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)",
			c.Output.Format, constants.FormatCSV, constants.FormatTable)
	}

	return nil
}
