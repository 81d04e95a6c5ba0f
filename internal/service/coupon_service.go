package service

import (
	"context"
	"strings"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/pricing"
	"tour-platform/internal/repository"
	"tour-platform/pkg/cache"
	apperrors "tour-platform/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const couponCacheTTL = 30 * time.Second

// CouponService handles coupon validation, redemption and admin CRUD.
type CouponService struct {
	repo  repository.CouponRepository
	cache cache.Cache
}

// NewCouponService creates a new coupon service
func NewCouponService(repo repository.CouponRepository, c cache.Cache) *CouponService {
	return &CouponService{repo: repo, cache: c}
}

func couponCacheKey(code string) string {
	return "coupon:doc:" + code
}

// invalidate drops the cached coupon document so the next validation sees
// the current state. Every mutation path calls this.
func (s *CouponService) invalidate(ctx context.Context, code string) {
	_ = s.cache.Delete(ctx, couponCacheKey(code))
}

// getCoupon returns the coupon for a (normalized) code, served from cache
// when fresh. The document is cached rather than per-amount verdicts so one
// delete covers every amount a client may have probed with.
func (s *CouponService) getCoupon(ctx context.Context, code string) (*model.Coupon, error) {
	var cached model.Coupon
	if err := cache.GetJSON(ctx, s.cache, couponCacheKey(code), &cached); err == nil {
		return &cached, nil
	}

	coupon, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, s.cache, couponCacheKey(code), coupon, couponCacheTTL)

	return coupon, nil
}

// Validate performs a dry-run check of a coupon against a booking amount.
// It never mutates usage counts, so the client can re-check freely while the
// customer edits the booking form.
func (s *CouponService) Validate(ctx context.Context, code string, amountCents int64) (*model.CouponValidation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, &apperrors.ValidationError{Field: "code", Message: "is required"}
	}
	if amountCents <= 0 {
		return nil, &apperrors.ValidationError{Field: "bookingAmount", Message: "must be positive"}
	}

	coupon, err := s.getCoupon(ctx, code)
	if err != nil {
		return nil, err
	}

	return s.check(coupon, amountCents, time.Now()), nil
}

// check applies the rejection rules in order and computes the discount for a
// coupon that passes them all.
func (s *CouponService) check(coupon *model.Coupon, amountCents int64, now time.Time) *model.CouponValidation {
	switch {
	case !coupon.Active:
		return &model.CouponValidation{Reason: apperrors.ErrCouponInactive.Error()}
	case now.After(coupon.ExpiresAt):
		return &model.CouponValidation{Reason: apperrors.ErrCouponExpired.Error()}
	case coupon.UsageCount >= coupon.UsageLimit:
		return &model.CouponValidation{Reason: apperrors.ErrUsageLimitReached.Error()}
	case amountCents < coupon.MinPurchaseCents:
		return &model.CouponValidation{Reason: apperrors.ErrMinimumNotMet.Error()}
	}

	var discount int64
	if coupon.DiscountType == model.DiscountTypePercentage {
		discount = pricing.PercentageDiscount(amountCents, coupon.DiscountValue, coupon.MaxDiscountCents)
	} else {
		discount = pricing.FixedDiscount(amountCents, coupon.DiscountValue)
	}

	return &model.CouponValidation{Valid: true, DiscountAmount: discount}
}

// Redeem validates the coupon and consumes one use. The usage increment is an
// atomic conditional update, so concurrent redemptions cannot exceed the
// limit. Returns the discount amount in cents.
func (s *CouponService) Redeem(ctx context.Context, code string, amountCents int64) (int64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	coupon, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return 0, err
	}

	result := s.check(coupon, amountCents, time.Now())
	if !result.Valid {
		return 0, reasonError(result.Reason)
	}

	if err := s.repo.IncrementUsage(ctx, coupon.ID); err != nil {
		return 0, err
	}

	s.invalidate(ctx, code)

	return result.DiscountAmount, nil
}

// reasonError maps a validation reason back to its sentinel.
func reasonError(reason string) error {
	switch reason {
	case apperrors.ErrCouponInactive.Error():
		return apperrors.ErrCouponInactive
	case apperrors.ErrCouponExpired.Error():
		return apperrors.ErrCouponExpired
	case apperrors.ErrUsageLimitReached.Error():
		return apperrors.ErrUsageLimitReached
	case apperrors.ErrMinimumNotMet.Error():
		return apperrors.ErrMinimumNotMet
	default:
		return apperrors.ErrCouponNotFound
	}
}

// Create inserts a new coupon with its code normalized to uppercase.
func (s *CouponService) Create(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error) {
	if req.DiscountType == model.DiscountTypePercentage && req.DiscountValue > 100 {
		return nil, &apperrors.ValidationError{Field: "discount_value", Message: "percentage cannot exceed 100"}
	}

	now := time.Now()
	coupon := &model.Coupon{
		Code:             strings.ToUpper(strings.TrimSpace(req.Code)),
		Description:      req.Description,
		DiscountType:     req.DiscountType,
		DiscountValue:    req.DiscountValue,
		MaxDiscountCents: req.MaxDiscountCents,
		MinPurchaseCents: req.MinPurchaseCents,
		UsageLimit:       req.UsageLimit,
		ExpiresAt:        req.ExpiresAt,
		Active:           req.Active,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	// a stale negative entry could linger from a delete-and-recreate
	s.invalidate(ctx, coupon.Code)

	return coupon, nil
}

// List returns all coupons for the admin panel.
func (s *CouponService) List(ctx context.Context) ([]*model.Coupon, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields of req to the coupon and invalidates the
// cached document so dry-run validations see the change immediately.
func (s *CouponService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateCouponRequest) (*model.Coupon, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		coupon.Description = *req.Description
	}
	if req.DiscountType != nil {
		coupon.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		coupon.DiscountValue = *req.DiscountValue
	}
	if req.MaxDiscountCents != nil {
		coupon.MaxDiscountCents = *req.MaxDiscountCents
	}
	if req.MinPurchaseCents != nil {
		coupon.MinPurchaseCents = *req.MinPurchaseCents
	}
	if req.UsageLimit != nil {
		coupon.UsageLimit = *req.UsageLimit
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = *req.ExpiresAt
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if coupon.DiscountType == model.DiscountTypePercentage && coupon.DiscountValue > 100 {
		return nil, &apperrors.ValidationError{Field: "discount_value", Message: "percentage cannot exceed 100"}
	}

	if err := s.repo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	s.invalidate(ctx, coupon.Code)

	return coupon, nil
}

// Delete removes a coupon and its cached document.
func (s *CouponService) Delete(ctx context.Context, id primitive.ObjectID) error {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, coupon.Code)

	return nil
}

// SetActive toggles a coupon's active flag.
func (s *CouponService) SetActive(ctx context.Context, code string, active bool) error {
	code = strings.ToUpper(strings.TrimSpace(code))

	coupon, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return err
	}
	coupon.Active = active
	if err := s.repo.Update(ctx, coupon); err != nil {
		return err
	}

	s.invalidate(ctx, code)

	return nil
}
