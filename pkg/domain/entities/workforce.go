package entities

import "fmt"

// WorkforceRole is one line of the payroll table
type WorkforceRole struct {
	Title       string  `json:"title" yaml:"title"`
	Headcount   int     `json:"headcount" yaml:"headcount"`
	BasicSalary float64 `json:"basic_salary" yaml:"basic_salary"`
}

// NewWorkforceRole creates a validated WorkforceRole
func NewWorkforceRole(title string, headcount int, basicSalary float64) (*WorkforceRole, error) {
	if title == "" {
		return nil, fmt.Errorf("role title cannot be empty")
	}
	if headcount < 0 {
		return nil, fmt.Errorf("headcount cannot be negative, got %d", headcount)
	}
	if basicSalary < 0 {
		return nil, fmt.Errorf("basic salary cannot be negative, got %g", basicSalary)
	}

	return &WorkforceRole{
		Title:       title,
		Headcount:   headcount,
		BasicSalary: basicSalary,
	}, nil
}

// AdminCost is a fixed monthly administrative line item
type AdminCost struct {
	Label         string  `json:"label" yaml:"label"`
	MonthlyAmount float64 `json:"monthly_amount" yaml:"monthly_amount"`
}

// NewAdminCost creates a validated AdminCost
func NewAdminCost(label string, monthlyAmount float64) (*AdminCost, error) {
	if label == "" {
		return nil, fmt.Errorf("admin cost label cannot be empty")
	}
	if monthlyAmount < 0 {
		return nil, fmt.Errorf("monthly amount cannot be negative, got %g", monthlyAmount)
	}
	return &AdminCost{Label: label, MonthlyAmount: monthlyAmount}, nil
}
