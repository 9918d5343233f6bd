package matching

// UI-facing score bands. The thresholds are inclusive (>=) and boundary
// values map to the higher band; the labels are part of the product contract
// and must not drift.
const (
	BandExcellent = "Excellent Match"
	BandGood      = "Good Match"
	BandFair      = "Fair Match"
	BandLow       = "Low Match"
)

// Band maps an aggregate score onto its UI label.
func Band(score int) string {
	switch {
	case score >= 80:
		return BandExcellent
	case score >= 60:
		return BandGood
	case score >= 40:
		return BandFair
	default:
		return BandLow
	}
}
