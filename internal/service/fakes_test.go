package service

import (
	"context"
	"sync"
	"time"

	"tour-platform/internal/model"
	apperrors "tour-platform/pkg/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the service tests.

type fakeCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*model.Coupon
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{coupons: make(map[string]*model.Coupon)}
}

func (r *fakeCouponRepo) Create(ctx context.Context, coupon *model.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.coupons[coupon.Code]; exists {
		return apperrors.ErrCouponAlreadyExists
	}
	if coupon.ID.IsZero() {
		coupon.ID = primitive.NewObjectID()
	}
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *fakeCouponRepo) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[code]
	if !ok {
		return nil, apperrors.ErrCouponNotFound
	}
	copy := *coupon
	return &copy, nil
}

func (r *fakeCouponRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.coupons {
		if c.ID == id {
			copy := *c
			return &copy, nil
		}
	}
	return nil, apperrors.ErrCouponNotFound
}

func (r *fakeCouponRepo) List(ctx context.Context) ([]*model.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Coupon
	for _, c := range r.coupons {
		copy := *c
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeCouponRepo) Update(ctx context.Context, coupon *model.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for code, c := range r.coupons {
		if c.ID == coupon.ID {
			coupon.Code = code
			r.coupons[code] = coupon
			return nil
		}
	}
	return apperrors.ErrCouponNotFound
}

func (r *fakeCouponRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for code, c := range r.coupons {
		if c.ID == id {
			delete(r.coupons, code)
			return nil
		}
	}
	return apperrors.ErrCouponNotFound
}

func (r *fakeCouponRepo) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.coupons {
		if c.ID == id {
			if c.UsageCount >= c.UsageLimit {
				return apperrors.ErrUsageLimitReached
			}
			c.UsageCount++
			return nil
		}
	}
	return apperrors.ErrCouponNotFound
}

type fakeTourRepo struct {
	mu    sync.Mutex
	tours map[primitive.ObjectID]*model.Tour
}

func newFakeTourRepo() *fakeTourRepo {
	return &fakeTourRepo{tours: make(map[primitive.ObjectID]*model.Tour)}
}

func (r *fakeTourRepo) Create(ctx context.Context, tour *model.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tour.ID.IsZero() {
		tour.ID = primitive.NewObjectID()
	}
	r.tours[tour.ID] = tour
	return nil
}

func (r *fakeTourRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tour, ok := r.tours[id]
	if !ok {
		return nil, apperrors.ErrTourNotFound
	}
	copy := *tour
	return &copy, nil
}

func (r *fakeTourRepo) List(ctx context.Context, activeOnly bool) ([]*model.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Tour
	for _, t := range r.tours {
		if activeOnly && !t.Active {
			continue
		}
		copy := *t
		out = append(out, &copy)
	}
	return out, nil
}

func (r *fakeTourRepo) Update(ctx context.Context, tour *model.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[tour.ID]; !ok {
		return apperrors.ErrTourNotFound
	}
	r.tours[tour.ID] = tour
	return nil
}

func (r *fakeTourRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[id]; !ok {
		return apperrors.ErrTourNotFound
	}
	delete(r.tours, id)
	return nil
}

func (r *fakeTourRepo) SetCampaignDiscount(ctx context.Context, id primitive.ObjectID, percent int, isCampaign bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tour, ok := r.tours[id]
	if !ok {
		return false, apperrors.ErrTourNotFound
	}
	if tour.DiscountPercent == percent && tour.IsCampaign == isCampaign {
		return false, nil
	}
	tour.DiscountPercent = percent
	tour.IsCampaign = isCampaign
	return true, nil
}

func (r *fakeTourRepo) IncrementBookingCount(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tour, ok := r.tours[id]; ok {
		tour.BookingCount++
	}
	return nil
}

type fakeCampaignRepo struct {
	mu        sync.Mutex
	campaigns []*model.Campaign
}

func (r *fakeCampaignRepo) Create(ctx context.Context, campaign *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	r.campaigns = append(r.campaigns, campaign)
	return nil
}

func (r *fakeCampaignRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.campaigns {
		if c.ID == id {
			copy := *c
			return &copy, nil
		}
	}
	return nil, apperrors.ErrCampaignNotFound
}

func (r *fakeCampaignRepo) List(ctx context.Context) ([]*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Campaign(nil), r.campaigns...), nil
}

func (r *fakeCampaignRepo) ListActive(ctx context.Context, t time.Time) ([]*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Campaign
	for _, c := range r.campaigns {
		if c.InWindow(t) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) Update(ctx context.Context, campaign *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.campaigns {
		if c.ID == campaign.ID {
			r.campaigns[i] = campaign
			return nil
		}
	}
	return apperrors.ErrCampaignNotFound
}

func (r *fakeCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.campaigns {
		if c.ID == id {
			r.campaigns = append(r.campaigns[:i], r.campaigns[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCampaignNotFound
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*model.Booking
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r *fakeBookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Booking(nil), r.bookings...), nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return apperrors.ErrBookingNotFound
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *model.Settings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = model.DefaultSettings()
	}
	copy := *r.settings
	return &copy, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *settings
	r.settings = &copy
	return nil
}

type fakeLoyaltyRepo struct {
	mu       sync.Mutex
	accounts map[string]*model.LoyaltyAccount
}

func newFakeLoyaltyRepo() *fakeLoyaltyRepo {
	return &fakeLoyaltyRepo{accounts: make(map[string]*model.LoyaltyAccount)}
}

func (r *fakeLoyaltyRepo) Accrue(ctx context.Context, email string, points int64) (*model.LoyaltyAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[email]
	if !ok {
		account = &model.LoyaltyAccount{Email: email, Tier: model.TierBronze}
		r.accounts[email] = account
	}
	account.PointsBalance += points
	account.TotalEarned += points
	account.Tier = model.TierFor(account.TotalEarned)
	account.LastActivity = time.Now()
	return account, nil
}

func (r *fakeLoyaltyRepo) Get(ctx context.Context, email string) (*model.LoyaltyAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[email], nil
}
