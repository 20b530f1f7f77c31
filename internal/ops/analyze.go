package ops

import (
	"github.com/strandhq/strand/internal/analysis"
	"github.com/strandhq/strand/internal/config"
)

// AnalyzeInput contains parameters for the Analyze operation.
type AnalyzeInput struct {
	Value string
}

// Analyze computes the property bundle for a value without storing it.
// Useful for previewing what an insert would record.
func Analyze(cfg *config.Config, input AnalyzeInput) (*analysis.Bundle, error) {
	if err := validateValue(cfg, input.Value); err != nil {
		return nil, err
	}

	bundle := analysis.Analyze(input.Value)
	return &bundle, nil
}
