package valueobject

// ---------------------------------------------------------------------------
// CreditTier – label used by lender rate tables
// ---------------------------------------------------------------------------

// Credit tier labels as they appear in lender rate policies. Rate adjustment
// tables key on the label itself, so tiers stay plain strings rather than
// wrapped value objects.
const (
	CreditTierPrime        = "PRIME"
	CreditTierNearPrime    = "NEAR_PRIME"
	CreditTierSubprime     = "SUBPRIME"
	CreditTierDeepSubprime = "DEEP_SUBPRIME"
)

// TierForScore maps a traditional credit score to a tier label.
//
// Tiers:
//
//	score >= 720  -> PRIME
//	score >= 660  -> NEAR_PRIME
//	score >= 580  -> SUBPRIME
//	score <  580  -> DEEP_SUBPRIME
func TierForScore(score int) string {
	switch {
	case score >= 720:
		return CreditTierPrime
	case score >= 660:
		return CreditTierNearPrime
	case score >= 580:
		return CreditTierSubprime
	default:
		return CreditTierDeepSubprime
	}
}
