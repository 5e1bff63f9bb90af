package vacancy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSalary(t *testing.T) {
	cases := []struct {
		min, max float64
		want     string
	}{
		{0, 0, ""},
		{500000, 900000, "500000-900000"},
		{600000, 600000, "600000"},
		{0, 1200000.4, "1200000"},
		{750000, 0, "750000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Vacancy{SalaryMin: c.min, SalaryMax: c.max}.Salary())
	}
}
