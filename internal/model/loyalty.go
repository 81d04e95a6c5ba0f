package model

import "time"

// Loyalty tiers, lowest to highest.
const (
	TierBronze   = "bronze"
	TierSilver   = "silver"
	TierGold     = "gold"
	TierPlatinum = "platinum"
)

// LoyaltyAccount accrues points per customer email. One point is earned per
// whole currency unit spent on a booking.
type LoyaltyAccount struct {
	Email         string    `bson:"_id" json:"email"`
	PointsBalance int64     `bson:"points_balance" json:"points_balance"`
	TotalEarned   int64     `bson:"total_earned" json:"total_earned"`
	Tier          string    `bson:"tier" json:"tier"`
	LastActivity  time.Time `bson:"last_activity" json:"last_activity"`
}

// TierFor returns the tier a lifetime points total lands in.
func TierFor(totalEarned int64) string {
	switch {
	case totalEarned >= 10000:
		return TierPlatinum
	case totalEarned >= 5000:
		return TierGold
	case totalEarned >= 1000:
		return TierSilver
	default:
		return TierBronze
	}
}
