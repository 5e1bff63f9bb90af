package vacancy

import (
	"fmt"
	"time"
)

// Vacancy is one job posting returned by the job-search provider.
type Vacancy struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Company      string    `json:"company,omitempty"`
	Location     string    `json:"location,omitempty"`
	Category     string    `json:"category,omitempty"`
	ContractType string    `json:"contract_type,omitempty"`
	Description  string    `json:"description,omitempty"`
	URL          string    `json:"redirect_url,omitempty"`
	SalaryMin    float64   `json:"salary_min,omitempty"`
	SalaryMax    float64   `json:"salary_max,omitempty"`
	Created      time.Time `json:"created,omitempty"`
}

// Salary renders the salary range for display, or "" when the provider gave none.
func (v Vacancy) Salary() string {
	switch {
	case v.SalaryMin > 0 && v.SalaryMax > 0 && v.SalaryMin != v.SalaryMax:
		return fmt.Sprintf("%.0f-%.0f", v.SalaryMin, v.SalaryMax)
	case v.SalaryMin > 0:
		return fmt.Sprintf("%.0f", v.SalaryMin)
	case v.SalaryMax > 0:
		return fmt.Sprintf("%.0f", v.SalaryMax)
	default:
		return ""
	}
}
