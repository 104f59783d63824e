package scoring

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/common"
)

// Severity is a PHQ-9 severity band. The string values are what gets stored
// and exported.
type Severity string

const (
	Minimal          Severity = "Minimal"
	Mild             Severity = "Mild"
	Moderate         Severity = "Moderate"
	ModeratelySevere Severity = "Moderately severe"
	Severe           Severity = "Severe"

	unknownSeverity Severity = ""
)

// lower bounds of each band
const (
	severeLowerBound  = 20
	modSevereLowBound = 15
	moderateLowBound  = 10
	mildLowBound      = 5
)

// SeverityForTotal maps a total in [0,27] to its band. Totals outside the
// range are clamped to the nearest band.
func SeverityForTotal(total int) Severity {
	switch {
	case total >= severeLowerBound:
		return Severe
	case total >= modSevereLowBound:
		return ModeratelySevere
	case total >= moderateLowBound:
		return Moderate
	case total >= mildLowBound:
		return Mild
	default:
		return Minimal
	}
}

// ParseSeverity converts a stored label back into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch v := Severity(s); v {
	case Minimal, Mild, Moderate, ModeratelySevere, Severe:
		return v, nil
	}
	return unknownSeverity, fmt.Errorf("%w: unknown severity %q", common.ErrInvalidInput, s)
}

func (s Severity) String() string { return string(s) }

func (s *Severity) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v, err := ParseSeverity(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
