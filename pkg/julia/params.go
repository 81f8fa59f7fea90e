package julia

import (
	"fmt"

	"github.com/pkg/errors"
)

// Params are the escape parameters, constant for a run.
type Params struct {
	MaxIterations  int     `json:"maxIterations"`
	EscapeRadiusSq float64 `json:"escapeRadiusSq"`
	Degree         int     `json:"degree"`
}

func DefaultParams() Params {
	return Params{
		MaxIterations:  10,
		EscapeRadiusSq: 4,
		Degree:         5,
	}
}

func (p Params) String() string {
	output := "{Params "
	output += fmt.Sprintf("MaxIterations: %d ", p.MaxIterations)
	output += fmt.Sprintf("EscapeRadiusSq: %g ", p.EscapeRadiusSq)
	output += fmt.Sprintf("Degree: %d}", p.Degree)
	return output
}

func (p Params) Validate() error {
	if p.MaxIterations < 1 {
		return errors.Errorf("max iterations must be at least 1, got %d", p.MaxIterations)
	}
	// negated so NaN is rejected too
	if !(p.EscapeRadiusSq > 0) {
		return errors.Errorf("escape radius squared must be positive, got %g", p.EscapeRadiusSq)
	}
	if p.Degree < 1 {
		return errors.Errorf("degree must be at least 1, got %d", p.Degree)
	}
	return nil
}
