package quote

const (
	// WMax is the top of the risk score scale
	WMax = 1000.0

	// RiskCalcConstant scales a normalized risk score into a risk quotient
	RiskCalcConstant = 0.0015
)

// RiskQuotient normalizes a risk score into the 0 to RiskCalcConstant range.
// It is computed once per request and shared by every price in it.
func RiskQuotient(wriskScore float64) float64 {
	return (wriskScore / WMax) * RiskCalcConstant
}

// CalculatePrice returns riskQuotient * multiplier * value * (1 - excess/value).
// value must be non-zero. The result is not rounded.
func CalculatePrice(riskQuotient, multiplier, value, excess float64) float64 {
	return riskQuotient * multiplier * value * (1.0 - (excess / value))
}
