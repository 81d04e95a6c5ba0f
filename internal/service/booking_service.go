package service

import (
	"context"
	"log"
	"strings"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/pricing"
	"tour-platform/internal/repository"
	apperrors "tour-platform/pkg/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingService creates and manages bookings. All pricing is recomputed
// server-side from canonical tour, extra-service and coupon data; totals
// submitted by the client are never trusted.
type BookingService struct {
	bookingRepo repository.BookingRepository
	tourRepo    repository.TourRepository
	loyaltyRepo repository.LoyaltyRepository
	coupons     *CouponService
	settings    *SettingsService
	policy      pricing.Policy
}

// NewBookingService creates a new booking service
func NewBookingService(
	bookingRepo repository.BookingRepository,
	tourRepo repository.TourRepository,
	loyaltyRepo repository.LoyaltyRepository,
	coupons *CouponService,
	settings *SettingsService,
	policy pricing.Policy,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		tourRepo:    tourRepo,
		loyaltyRepo: loyaltyRepo,
		coupons:     coupons,
		settings:    settings,
		policy:      policy,
	}
}

// Create validates the request, prices it from canonical data, redeems the
// coupon if one was supplied, and persists the booking.
func (s *BookingService) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	enabled, err := s.settings.BookingEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, apperrors.ErrBookingsDisabled
	}

	if err := validatePassengers(req); err != nil {
		return nil, err
	}

	tourID, err := primitive.ObjectIDFromHex(req.TourID)
	if err != nil {
		return nil, &apperrors.ValidationError{Field: "tour_id", Message: "is not a valid id"}
	}

	tour, err := s.tourRepo.GetByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	if !tour.Active {
		return nil, apperrors.ErrTourNotFound
	}

	selections, extras, err := resolveExtras(tour, req.ExtraServices)
	if err != nil {
		return nil, err
	}

	// Price without the coupon first; the coupon is checked against the
	// pre-discount subtotal.
	base := pricing.Compute(pricing.QuoteInput{
		BasePriceCents:  tour.BasePriceCents,
		DiscountPercent: tour.DiscountPercent,
		Adults:          req.Adults,
		Children:        req.Children,
		Infants:         req.Infants,
		Extras:          extras,
	}, s.policy)

	var discountCents int64
	discountCode := strings.ToUpper(strings.TrimSpace(req.DiscountCode))
	if discountCode != "" {
		discountCents, err = s.coupons.Redeem(ctx, discountCode, base.TotalCents)
		if err != nil {
			return nil, err
		}
	}

	quote := pricing.Compute(pricing.QuoteInput{
		BasePriceCents:      tour.BasePriceCents,
		DiscountPercent:     tour.DiscountPercent,
		Adults:              req.Adults,
		Children:            req.Children,
		Infants:             req.Infants,
		Extras:              extras,
		CouponDiscountCents: discountCents,
	}, s.policy)

	booking := &model.Booking{
		Reference: uuid.NewString(),
		Customer: model.Customer{
			FullName: req.FullName,
			Email:    strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:    req.Phone,
		},
		TourID:              tour.ID,
		TourTitle:           tour.Title,
		Date:                req.Date,
		Adults:              req.Adults,
		Children:            req.Children,
		Infants:             req.Infants,
		Passengers:          req.Passengers,
		ExtraServices:       selections,
		GuestSubtotalCents:  quote.GuestSubtotalCents,
		ExtrasTotalCents:    quote.ExtrasTotalCents,
		DiscountCode:        discountCode,
		DiscountAmountCents: quote.CouponDiscountCents,
		TotalPriceCents:     quote.TotalCents,
		PaymentMethod:       req.PaymentMethod,
		Status:              model.BookingStatusPending,
		CreatedAt:           time.Now(),
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.tourRepo.IncrementBookingCount(ctx, tour.ID); err != nil {
		log.Printf("failed to bump booking count for tour %s: %v", tour.ID.Hex(), err)
	}

	// 1 loyalty point per whole currency unit spent
	if points := booking.TotalPriceCents / 100; points > 0 {
		if _, err := s.loyaltyRepo.Accrue(ctx, booking.Customer.Email, points); err != nil {
			log.Printf("loyalty accrual failed for %s: %v", booking.Customer.Email, err)
		}
	}

	return booking, nil
}

// validatePassengers enforces the passenger manifest rules: at least one
// adult, one named passenger per adult and child, and no empty names.
func validatePassengers(req *model.CreateBookingRequest) error {
	if req.Adults < 1 {
		return &apperrors.ValidationError{Field: "adults", Message: "at least one adult is required"}
	}
	if len(req.Passengers) != req.Adults+req.Children {
		return &apperrors.ValidationError{Field: "passengers", Message: "must contain one entry per adult and child"}
	}
	for _, p := range req.Passengers {
		if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
			return &apperrors.ValidationError{Field: "passengers", Message: "all passenger names are required"}
		}
	}
	return nil
}

// resolveExtras matches requested add-ons against the tour's offer list and
// prices them from the canonical unit price.
func resolveExtras(tour *model.Tour, requested []model.BookingExtraRequest) ([]model.ExtraServiceSelection, []pricing.ExtraLine, error) {
	offers := make(map[string]model.ExtraServiceOffer, len(tour.ExtraServices))
	for _, offer := range tour.ExtraServices {
		offers[offer.Key] = offer
	}

	var selections []model.ExtraServiceSelection
	var lines []pricing.ExtraLine
	for _, r := range requested {
		offer, ok := offers[r.Key]
		if !ok {
			return nil, nil, &apperrors.ValidationError{Field: "extra_services", Message: "unknown service: " + r.Key}
		}
		if !r.Selected {
			continue
		}

		qty := r.Quantity
		if qty < 1 {
			qty = 1
		}
		selections = append(selections, model.ExtraServiceSelection{
			Key:            offer.Key,
			Selected:       true,
			Quantity:       qty,
			UnitPriceCents: offer.PriceCents,
		})
		lines = append(lines, pricing.ExtraLine{
			Selected:       true,
			Quantity:       qty,
			PerUnit:        offer.PerUnit,
			UnitPriceCents: offer.PriceCents,
		})
	}

	return selections, lines, nil
}

// List returns all bookings for the admin panel.
func (s *BookingService) List(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// GetByReference returns the booking with the given public reference.
func (s *BookingService) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

// UpdateStatus transitions a booking between pending/confirmed/cancelled.
func (s *BookingService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	switch status {
	case model.BookingStatusPending, model.BookingStatusConfirmed, model.BookingStatusCancelled:
	default:
		return &apperrors.ValidationError{Field: "status", Message: "unknown status"}
	}
	return s.bookingRepo.UpdateStatus(ctx, id, status)
}

// Loyalty returns the loyalty account for a customer email, or nil.
func (s *BookingService) Loyalty(ctx context.Context, email string) (*model.LoyaltyAccount, error) {
	return s.loyaltyRepo.Get(ctx, strings.ToLower(strings.TrimSpace(email)))
}
