package construction

import (
	"testing"

	"github.com/pipeline-route-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateDaysSmallDiameterFastest(t *testing.T) {
	small := EstimateDays(30, 250, domain.PipeTypeOil, 0.1)
	large := EstimateDays(30, 1200, domain.PipeTypeOil, 0.1)
	assert.Less(t, small, large)
}

func TestEstimateDaysGasSlowerThanWater(t *testing.T) {
	gas := EstimateDays(30, 500, domain.PipeTypeGas, 0.1)
	water := EstimateDays(30, 500, domain.PipeTypeWater, 0.1)
	assert.Greater(t, gas, water)
}

func TestFormatDaysBoundaries(t *testing.T) {
	assert.Equal(t, "30 days", FormatDays(30))
	assert.Equal(t, "2 months", FormatDays(31))
	assert.Equal(t, "13 months", FormatDays(365))
	assert.Equal(t, "1 years and 1 months", FormatDays(366))
}

func TestFormatDaysMultipleYearsWithMonths(t *testing.T) {
	// 800 days: years = 800/365 = 2, remainder = 70, months = ceil(70/30) = 3
	assert.Equal(t, "2 years and 3 months", FormatDays(800))
}

func TestDescribeIsCeiledAndFormatted(t *testing.T) {
	s := Describe(15, 500, domain.PipeTypeOil, 0.2)
	assert.NotEmpty(t, s)
}
