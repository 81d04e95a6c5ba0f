// Package pricing computes booking totals. All arithmetic is in integer
// cents so repeated additions never drift.
package pricing

// Policy holds per-deployment pricing choices.
type Policy struct {
	// InfantsCountTowardPrice includes infants in the per-guest multiplier.
	InfantsCountTowardPrice bool
}

// DefaultPolicy counts infants toward the guest multiplier.
var DefaultPolicy = Policy{InfantsCountTowardPrice: true}

// ExtraLine is one selected add-on priced from canonical data.
type ExtraLine struct {
	Selected       bool
	Quantity       int
	PerUnit        bool
	UnitPriceCents int64
}

// QuoteInput carries everything needed to price a booking.
type QuoteInput struct {
	BasePriceCents      int64
	DiscountPercent     int
	Adults              int
	Children            int
	Infants             int
	Extras              []ExtraLine
	CouponDiscountCents int64
}

// Quote is the priced breakdown of a booking.
type Quote struct {
	EffectiveBaseCents  int64
	GuestSubtotalCents  int64
	ExtrasTotalCents    int64
	CouponDiscountCents int64
	TotalCents          int64
}

// Compute prices a booking. The total is clamped at zero; a coupon can never
// push it negative.
func Compute(in QuoteInput, policy Policy) Quote {
	effectiveBase := in.BasePriceCents
	if in.DiscountPercent > 0 && in.DiscountPercent <= 100 {
		effectiveBase = in.BasePriceCents - in.BasePriceCents*int64(in.DiscountPercent)/100
	}

	guests := in.Adults + in.Children
	if policy.InfantsCountTowardPrice {
		guests += in.Infants
	}

	guestSubtotal := effectiveBase * int64(guests)

	var extrasTotal int64
	for _, extra := range in.Extras {
		if !extra.Selected {
			continue
		}
		qty := 1
		if extra.PerUnit && extra.Quantity > 1 {
			qty = extra.Quantity
		}
		extrasTotal += int64(qty) * extra.UnitPriceCents
	}

	total := guestSubtotal + extrasTotal - in.CouponDiscountCents
	if total < 0 {
		total = 0
	}

	return Quote{
		EffectiveBaseCents:  effectiveBase,
		GuestSubtotalCents:  guestSubtotal,
		ExtrasTotalCents:    extrasTotal,
		CouponDiscountCents: in.CouponDiscountCents,
		TotalCents:          total,
	}
}

// PercentageDiscount returns amount*rate/100, capped at maxCents when maxCents
// is positive.
func PercentageDiscount(amountCents, rate, maxCents int64) int64 {
	discount := amountCents * rate / 100
	if maxCents > 0 && discount > maxCents {
		discount = maxCents
	}
	if discount < 0 {
		return 0
	}
	return discount
}

// FixedDiscount returns the fixed amount, never more than the booking amount
// and never negative.
func FixedDiscount(amountCents, fixedCents int64) int64 {
	if fixedCents > amountCents {
		fixedCents = amountCents
	}
	if fixedCents < 0 {
		return 0
	}
	return fixedCents
}
