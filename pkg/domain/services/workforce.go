package services

import "github.com/vsinha/filmplant/pkg/domain/entities"

// WorkforcePolicy holds the payroll table and the fixed overhead terms
type WorkforcePolicy struct {
	Roles               []entities.WorkforceRole `json:"roles" yaml:"-"`
	AllowancePercent    float64                  `json:"allowance_percent" yaml:"allowance_percent"`
	InsurancePerHead    float64                  `json:"insurance_per_head" yaml:"insurance_per_head"`
	Trucks              int                      `json:"trucks" yaml:"trucks"`
	FuelPerTruck        float64                  `json:"fuel_per_truck" yaml:"fuel_per_truck"`
	MaintenancePerTruck float64                  `json:"maintenance_per_truck" yaml:"maintenance_per_truck"`
	Admin               []entities.AdminCost     `json:"admin" yaml:"-"`
}

// RolePayroll is the basic payroll of one role
type RolePayroll struct {
	Title     string  `json:"title"`
	Headcount int     `json:"headcount"`
	Payroll   float64 `json:"payroll"`
}

// OverheadResult is the monthly payroll, logistics and admin bill
type OverheadResult struct {
	Roles          []RolePayroll `json:"roles"`
	TotalHeadcount int           `json:"total_headcount"`
	TotalBasic     float64       `json:"total_basic"`
	Allowances     float64       `json:"allowances"`
	Insurance      float64       `json:"insurance"`
	PayrollTotal   float64       `json:"payroll_total"`
	Logistics      float64       `json:"logistics"`
	Admin          float64       `json:"admin"`
	Total          float64       `json:"total"`
}

// CalculateOverhead totals payroll, fleet and administrative costs
func CalculateOverhead(policy WorkforcePolicy) OverheadResult {
	result := OverheadResult{Roles: make([]RolePayroll, 0, len(policy.Roles))}

	for _, role := range policy.Roles {
		payroll := float64(role.Headcount) * role.BasicSalary
		result.Roles = append(result.Roles, RolePayroll{
			Title:     role.Title,
			Headcount: role.Headcount,
			Payroll:   payroll,
		})
		result.TotalBasic += payroll
		result.TotalHeadcount += role.Headcount
	}

	result.Allowances = result.TotalBasic * policy.AllowancePercent / 100
	result.Insurance = float64(result.TotalHeadcount) * policy.InsurancePerHead
	result.PayrollTotal = result.TotalBasic + result.Allowances + result.Insurance

	result.Logistics = float64(policy.Trucks) * (policy.FuelPerTruck + policy.MaintenancePerTruck)

	for _, item := range policy.Admin {
		result.Admin += item.MonthlyAmount
	}

	result.Total = result.PayrollTotal + result.Logistics + result.Admin
	return result
}
