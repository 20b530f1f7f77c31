// Package ops implements the core operations of the string analyzer:
// create, fetch, delete, list (structured filters), ask (natural-language
// filters), analyze, export, and import. Each operation takes its
// dependencies explicitly; surfaces (web, mcp, cli) stay thin adapters.
package ops

import (
	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/errors"
)

// validateValue checks a candidate value against the configured size cap.
// The empty string is a valid value (length 0, trivially a palindrome).
func validateValue(cfg *config.Config, value string) error {
	if cfg == nil || cfg.ValueMaxChars <= 0 {
		return nil
	}
	if chars := analysis.CountChars(value); chars > cfg.ValueMaxChars {
		return errors.NewValueTooLarge(cfg.ValueMaxChars, chars)
	}
	return nil
}
