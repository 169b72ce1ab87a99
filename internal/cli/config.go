package cli

import "fmt"

// Config holds all configuration for an lgrep run.
// It is built once from the command line and never mutated afterwards.
type Config struct {
	Pattern    string
	Paths      []string
	After      int
	Before     int
	Color      bool
	Hidden     bool
	IgnoreCase bool
	NoHeading  bool
	Fixed      bool
	PCRE       bool
	NoIgnore   bool
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return fmt.Errorf("no pattern specified")
	}
	if c.After < 0 {
		return fmt.Errorf("invalid context after: %d", c.After)
	}
	if c.Before < 0 {
		return fmt.Errorf("invalid context before: %d", c.Before)
	}
	if c.Fixed && c.PCRE {
		return fmt.Errorf("cannot use -F (fixed) and -P (pcre) together")
	}
	return nil
}
