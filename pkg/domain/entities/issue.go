package entities

import "fmt"

// IssueKind classifies a condition found while evaluating a scenario
type IssueKind int

const (
	InvalidInput IssueKind = iota
	UndefinedMetric
	Bottleneck
	ConfigurationWarning
)

// String method for IssueKind enum
func (k IssueKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case UndefinedMetric:
		return "UndefinedMetric"
	case Bottleneck:
		return "Bottleneck"
	case ConfigurationWarning:
		return "ConfigurationWarning"
	default:
		return "Unknown"
	}
}

// MarshalText renders the kind by name in JSON and YAML output
func (k IssueKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind written by MarshalText
func (k *IssueKind) UnmarshalText(text []byte) error {
	for candidate := InvalidInput; candidate <= ConfigurationWarning; candidate++ {
		if candidate.String() == string(text) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown issue kind %q", text)
}

// Issue is a non-fatal finding attached to an evaluation result
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

// NewIssue builds an Issue with a formatted message
func NewIssue(kind IssueKind, field, format string, args ...any) Issue {
	return Issue{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Kind, i.Field, i.Message)
}

// LaminationStatus describes how the product loads the laminator
type LaminationStatus int

const (
	LaminationNotRequired LaminationStatus = iota
	WithinCapacity
	OverCapacity
	CapacityBlocked
)

// String method for LaminationStatus enum
func (s LaminationStatus) String() string {
	switch s {
	case LaminationNotRequired:
		return "NotRequired"
	case WithinCapacity:
		return "WithinCapacity"
	case OverCapacity:
		return "Bottleneck"
	case CapacityBlocked:
		return "Blocked"
	default:
		return "Unknown"
	}
}

// MarshalText renders the status by name in JSON and YAML output
func (s LaminationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status written by MarshalText
func (s *LaminationStatus) UnmarshalText(text []byte) error {
	for candidate := LaminationNotRequired; candidate <= CapacityBlocked; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown lamination status %q", text)
}

// IsBottleneck reports whether the laminator cannot absorb the required passes
func (s LaminationStatus) IsBottleneck() bool {
	return s == OverCapacity || s == CapacityBlocked
}
