package goprior

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// twoSidedZ returns Φ⁻¹(0.5 + 0.5·credibility/100), the z-score bounding a
// central interval holding credibility percent of the standard normal mass.
// Credibility must lie strictly between 0 and 100.
func twoSidedZ(credibility float64) (float64, error) {
	if math.IsNaN(credibility) || credibility <= 0 || credibility >= 100 {
		return 0, fail("credibility", CodeDomainRange, "got", credibility, "want", "strictly between 0 and 100")
	}
	z := distuv.UnitNormal.Quantile(0.5 + 0.5*(credibility/100))
	if math.IsInf(z, 0) || math.IsNaN(z) || z <= 0 {
		return 0, fail("credibility", CodeDomainRange, "got", credibility, "want", "a level with a finite quantile")
	}
	return z, nil
}
