package calculation

import "github.com/greenledger/carbon-report-go/internal/domain/entity"

// projectionYears is fixed at five. The loop bound below is what keeps the
// linear extrapolation from going negative; widening it requires adding a
// floor at zero.
const projectionYears = 5

// ProjectFiveYears produces the 5-year trajectory starting at startYear.
// The total achievable reduction is spread linearly over the window; the
// target pathway descends to targetReductionFraction of the baseline by the
// final year. Point 0 is always exactly the current total.
func ProjectFiveYears(currentTotal, totalReductionPercentage, targetReductionFraction float64, startYear int) []entity.ProjectionPoint {
	currentTotal = SafeFloat(currentTotal)
	annualReductionRate := SafeFloat(totalReductionPercentage) / 100 / projectionYears

	points := make([]entity.ProjectionPoint, projectionYears)
	for i := 0; i < projectionYears; i++ {
		emissions := currentTotal
		if i > 0 {
			emissions = currentTotal * (1 - annualReductionRate*float64(i))
		}
		points[i] = entity.ProjectionPoint{
			Year:      startYear + i,
			Emissions: emissions,
			Target:    currentTotal * (1 - targetReductionFraction*(float64(i)/float64(projectionYears-1))),
		}
	}
	return points
}
