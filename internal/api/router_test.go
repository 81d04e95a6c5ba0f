package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"tour-platform/internal/api/middleware"
	"tour-platform/internal/model"
	"tour-platform/internal/pricing"
	"tour-platform/internal/service"
	"tour-platform/pkg/cache"
	apperrors "tour-platform/pkg/errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repository fakes for exercising the full HTTP surface.

type memCouponRepo struct {
	mu      sync.Mutex
	coupons map[string]*model.Coupon
}

func (r *memCouponRepo) Create(ctx context.Context, coupon *model.Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.coupons == nil {
		r.coupons = make(map[string]*model.Coupon)
	}
	if _, exists := r.coupons[coupon.Code]; exists {
		return apperrors.ErrCouponAlreadyExists
	}
	if coupon.ID.IsZero() {
		coupon.ID = primitive.NewObjectID()
	}
	r.coupons[coupon.Code] = coupon
	return nil
}

func (r *memCouponRepo) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	coupon, ok := r.coupons[code]
	if !ok {
		return nil, apperrors.ErrCouponNotFound
	}
	copy := *coupon
	return &copy, nil
}

func (r *memCouponRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Coupon, error) {
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

func (r *memCouponRepo) List(ctx context.Context) ([]*model.Coupon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.Coupon
	for _, c := range r.coupons {
		copy := *c
		out = append(out, &copy)
	}
	return out, nil
}

func (r *memCouponRepo) Update(ctx context.Context, coupon *model.Coupon) error {
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

func (r *memCouponRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
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

func (r *memCouponRepo) IncrementUsage(ctx context.Context, id primitive.ObjectID) error {
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

type memTourRepo struct {
	mu    sync.Mutex
	tours map[primitive.ObjectID]*model.Tour
}

func (r *memTourRepo) Create(ctx context.Context, tour *model.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.tours == nil {
		r.tours = make(map[primitive.ObjectID]*model.Tour)
	}
	if tour.ID.IsZero() {
		tour.ID = primitive.NewObjectID()
	}
	r.tours[tour.ID] = tour
	return nil
}

func (r *memTourRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Tour, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tour, ok := r.tours[id]
	if !ok {
		return nil, apperrors.ErrTourNotFound
	}
	copy := *tour
	return &copy, nil
}

func (r *memTourRepo) List(ctx context.Context, activeOnly bool) ([]*model.Tour, error) {
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

func (r *memTourRepo) Update(ctx context.Context, tour *model.Tour) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[tour.ID]; !ok {
		return apperrors.ErrTourNotFound
	}
	r.tours[tour.ID] = tour
	return nil
}

func (r *memTourRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tours[id]; !ok {
		return apperrors.ErrTourNotFound
	}
	delete(r.tours, id)
	return nil
}

func (r *memTourRepo) SetCampaignDiscount(ctx context.Context, id primitive.ObjectID, percent int, isCampaign bool) (bool, error) {
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

func (r *memTourRepo) IncrementBookingCount(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tour, ok := r.tours[id]; ok {
		tour.BookingCount++
	}
	return nil
}

type memCampaignRepo struct {
	mu        sync.Mutex
	campaigns []*model.Campaign
}

func (r *memCampaignRepo) Create(ctx context.Context, campaign *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if campaign.ID.IsZero() {
		campaign.ID = primitive.NewObjectID()
	}
	r.campaigns = append(r.campaigns, campaign)
	return nil
}

func (r *memCampaignRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Campaign, error) {
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

func (r *memCampaignRepo) List(ctx context.Context) ([]*model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Campaign(nil), r.campaigns...), nil
}

func (r *memCampaignRepo) ListActive(ctx context.Context, t time.Time) ([]*model.Campaign, error) {
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

func (r *memCampaignRepo) Update(ctx context.Context, campaign *model.Campaign) error {
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

func (r *memCampaignRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
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

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []*model.Booking
}

func (r *memBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r *memBookingRepo) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}

func (r *memBookingRepo) List(ctx context.Context) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.Booking(nil), r.bookings...), nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
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

type memSettingsRepo struct {
	mu       sync.Mutex
	settings *model.Settings
}

func (r *memSettingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		r.settings = model.DefaultSettings()
	}
	copy := *r.settings
	return &copy, nil
}

func (r *memSettingsRepo) Save(ctx context.Context, settings *model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *settings
	r.settings = &copy
	return nil
}

type memLoyaltyRepo struct {
	mu       sync.Mutex
	accounts map[string]*model.LoyaltyAccount
}

func (r *memLoyaltyRepo) Accrue(ctx context.Context, email string, points int64) (*model.LoyaltyAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.accounts == nil {
		r.accounts = make(map[string]*model.LoyaltyAccount)
	}
	account, ok := r.accounts[email]
	if !ok {
		account = &model.LoyaltyAccount{Email: email, Tier: model.TierBronze}
		r.accounts[email] = account
	}
	account.PointsBalance += points
	account.TotalEarned += points
	account.Tier = model.TierFor(account.TotalEarned)
	return account, nil
}

func (r *memLoyaltyRepo) Get(ctx context.Context, email string) (*model.LoyaltyAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accounts[email], nil
}

type memAdminRepo struct {
	mu     sync.Mutex
	admins map[string]*model.AdminUser
}

func (r *memAdminRepo) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	admin, ok := r.admins[email]
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}
	return admin, nil
}

func (r *memAdminRepo) Create(ctx context.Context, admin *model.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.admins == nil {
		r.admins = make(map[string]*model.AdminUser)
	}
	r.admins[admin.Email] = admin
	return nil
}

type memAuditRepo struct {
	mu      sync.Mutex
	entries []*model.AuditLog
}

func (r *memAuditRepo) Insert(ctx context.Context, entry *model.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memAuditRepo) List(ctx context.Context, limit int64) ([]*model.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.AuditLog(nil), r.entries...), nil
}

type testEnv struct {
	router    *gin.Engine
	coupons   *memCouponRepo
	tours     *memTourRepo
	campaigns *memCampaignRepo
	settings  *memSettingsRepo
	bookings  *memBookingRepo
	audit     *memAuditRepo
	tour      *model.Tour
}

func newTestEnv(t *testing.T, rate int) *testEnv {
	t.Helper()

	couponRepo := &memCouponRepo{}
	tourRepo := &memTourRepo{}
	campaignRepo := &memCampaignRepo{}
	bookingRepo := &memBookingRepo{}
	settingsRepo := &memSettingsRepo{}
	loyaltyRepo := &memLoyaltyRepo{}
	adminRepo := &memAdminRepo{}
	auditRepo := &memAuditRepo{}

	c := cache.NewInMemoryCache()
	couponSvc := service.NewCouponService(couponRepo, c)
	settingsSvc := service.NewSettingsService(settingsRepo, c, time.Millisecond)
	authSvc := service.NewAuthService(adminRepo, "test-secret", time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	adminRepo.Create(context.Background(), &model.AdminUser{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	tour := &model.Tour{
		Title:          "Bosphorus Cruise",
		BasePriceCents: 10000,
		Location:       "Istanbul",
		Category:       "cruise",
		Active:         true,
	}
	if err := tourRepo.Create(context.Background(), tour); err != nil {
		t.Fatalf("Failed to seed tour: %v", err)
	}

	svcs := Services{
		Tours:     service.NewTourService(tourRepo),
		Coupons:   couponSvc,
		Campaigns: service.NewCampaignService(campaignRepo, tourRepo),
		Bookings: service.NewBookingService(bookingRepo, tourRepo, loyaltyRepo, couponSvc, settingsSvc,
			pricing.Policy{InfantsCountTowardPrice: true}),
		Settings: settingsSvc,
		Auth:     authSvc,
		Audit:    service.NewAuditService(auditRepo),
	}

	limiter := middleware.NewRateLimiter(rate, time.Minute)
	t.Cleanup(limiter.Stop)

	return &testEnv{
		router:    NewRouter(svcs, limiter),
		coupons:   couponRepo,
		tours:     tourRepo,
		campaigns: campaignRepo,
		settings:  settingsRepo,
		bookings:  bookingRepo,
		audit:     auditRepo,
		tour:      tour,
	}
}

func (e *testEnv) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	rr := e.do("POST", "/api/admin/login", "", model.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Login failed: %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data model.LoginResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal login response: %v", err)
	}
	return resp.Data.Token
}

func TestHealthCheck(t *testing.T) {
	e := newTestEnv(t, 100)

	rr := e.do("GET", "/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rr.Code)
	}
}

func TestValidateCoupon_Success(t *testing.T) {
	e := newTestEnv(t, 100)

	e.coupons.Create(context.Background(), &model.Coupon{
		Code:          "SUMMER20",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 20,
		UsageLimit:    100,
		ExpiresAt:     time.Now().Add(time.Hour),
		Active:        true,
	})

	rr := e.do("POST", "/api/coupons/validate", "", model.ValidateCouponRequest{
		Code:          "summer20",
		BookingAmount: 10000,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool                   `json:"success"`
		Data    model.CouponValidation `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.Success || !resp.Data.Valid {
		t.Errorf("Expected valid coupon, got %+v", resp)
	}
	if resp.Data.DiscountAmount != 2000 {
		t.Errorf("Expected discount 2000, got %d", resp.Data.DiscountAmount)
	}
}

func TestValidateCoupon_ExpiredReturnsReason(t *testing.T) {
	e := newTestEnv(t, 100)

	e.coupons.Create(context.Background(), &model.Coupon{
		Code:          "OLD",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 10,
		UsageLimit:    100,
		ExpiresAt:     time.Now().Add(-time.Hour),
		Active:        true,
	})

	rr := e.do("POST", "/api/coupons/validate", "", model.ValidateCouponRequest{
		Code:          "OLD",
		BookingAmount: 10000,
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("Expected success false for expired coupon")
	}
	if resp.Error != "coupon_expired" {
		t.Errorf("Expected reason coupon_expired, got %q", resp.Error)
	}
}

func TestValidateCoupon_UnknownCodeIs404(t *testing.T) {
	e := newTestEnv(t, 100)

	rr := e.do("POST", "/api/coupons/validate", "", model.ValidateCouponRequest{
		Code:          "GHOST",
		BookingAmount: 10000,
	})

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d. Body: %s", rr.Code, rr.Body.String())
	}
}

func TestAdminRoutes_RequireBearerToken(t *testing.T) {
	e := newTestEnv(t, 100)

	rr := e.do("GET", "/api/admin/coupons", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", rr.Code)
	}

	rr = e.do("GET", "/api/admin/coupons", "not-a-real-token", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401 for garbage token, got %d", rr.Code)
	}
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	e := newTestEnv(t, 100)

	rr := e.do("POST", "/api/admin/login", "", model.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d. Body: %s", rr.Code, rr.Body.String())
	}
}

func TestCreateCoupon_AuthorizedAndAudited(t *testing.T) {
	e := newTestEnv(t, 100)
	token := e.login(t)

	rr := e.do("POST", "/api/admin/coupons", token, model.CreateCouponRequest{
		Code:          "winter10",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: 1000,
		UsageLimit:    50,
		ExpiresAt:     time.Now().Add(24 * time.Hour),
		Active:        true,
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	if _, err := e.coupons.GetByCode(context.Background(), "WINTER10"); err != nil {
		t.Errorf("Expected coupon stored under uppercase code: %v", err)
	}

	if len(e.audit.entries) != 1 {
		t.Fatalf("Expected 1 audit entry, got %d", len(e.audit.entries))
	}
	entry := e.audit.entries[0]
	if entry.Actor != "admin@example.com" || entry.Action != "create" || entry.Entity != "coupon" {
		t.Errorf("Unexpected audit entry: %+v", entry)
	}
}

func TestCreateBooking_KillSwitchReturns503(t *testing.T) {
	e := newTestEnv(t, 100)

	e.settings.Save(context.Background(), &model.Settings{
		ID:             model.SettingsID,
		BookingEnabled: false,
	})
	time.Sleep(5 * time.Millisecond)

	rr := e.do("POST", "/api/bookings", "", model.CreateBookingRequest{
		FullName:      "Jane Smith",
		Email:         "jane@example.com",
		Phone:         "+441234567890",
		TourID:        e.tour.ID.Hex(),
		Date:          time.Now().Add(7 * 24 * time.Hour),
		Adults:        1,
		Passengers:    []model.Passenger{{FirstName: "Jane", LastName: "Smith"}},
		PaymentMethod: "card",
	})

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d. Body: %s", rr.Code, rr.Body.String())
	}
	if len(e.bookings.bookings) != 0 {
		t.Error("Expected no booking persisted")
	}
}

func TestCreateBooking_EndToEnd(t *testing.T) {
	e := newTestEnv(t, 100)

	rr := e.do("POST", "/api/bookings", "", model.CreateBookingRequest{
		FullName:      "Jane Smith",
		Email:         "jane@example.com",
		Phone:         "+441234567890",
		TourID:        e.tour.ID.Hex(),
		Date:          time.Now().Add(7 * 24 * time.Hour),
		Adults:        2,
		Passengers:    []model.Passenger{{FirstName: "Jane", LastName: "Smith"}, {FirstName: "John", LastName: "Smith"}},
		PaymentMethod: "card",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Data model.Booking `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Data.TotalPriceCents != 20000 {
		t.Errorf("Expected total 20000, got %d", resp.Data.TotalPriceCents)
	}
	if resp.Data.Reference == "" {
		t.Fatal("Expected a booking reference")
	}

	lookup := e.do("GET", "/api/bookings/"+resp.Data.Reference, "", nil)
	if lookup.Code != http.StatusOK {
		t.Errorf("Expected status 200 on reference lookup, got %d", lookup.Code)
	}
}

func TestValidateCoupon_RateLimited(t *testing.T) {
	e := newTestEnv(t, 2)

	body := model.ValidateCouponRequest{Code: "ANY", BookingAmount: 1000}
	for i := 0; i < 2; i++ {
		if rr := e.do("POST", "/api/coupons/validate", "", body); rr.Code == http.StatusTooManyRequests {
			t.Fatalf("Request %d rate limited too early", i+1)
		}
	}

	rr := e.do("POST", "/api/coupons/validate", "", body)
	if rr.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", rr.Code)
	}
}

func TestUpdateCampaign_RejectsOutOfRangeRate(t *testing.T) {
	e := newTestEnv(t, 100)
	token := e.login(t)

	campaign := &model.Campaign{
		Name:          "weekend special",
		ConditionType: model.ConditionCity,
		Target:        "Istanbul",
		DiscountRate:  20,
		StartDate:     time.Now().Add(-time.Hour),
		EndDate:       time.Now().Add(24 * time.Hour),
		Active:        true,
	}
	e.campaigns.Create(context.Background(), campaign)

	rate := 150
	rr := e.do("PATCH", "/api/admin/campaigns/"+campaign.ID.Hex(), token, model.UpdateCampaignRequest{
		DiscountRate: &rate,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	stored, _ := e.campaigns.GetByID(context.Background(), campaign.ID)
	if stored.DiscountRate != 20 {
		t.Errorf("Expected stored rate unchanged, got %d", stored.DiscountRate)
	}
}

func TestUpdateCoupon_RejectsPercentageOver100(t *testing.T) {
	e := newTestEnv(t, 100)
	token := e.login(t)

	coupon := &model.Coupon{
		Code:          "PCT20",
		DiscountType:  model.DiscountTypePercentage,
		DiscountValue: 20,
		UsageLimit:    10,
		ExpiresAt:     time.Now().Add(time.Hour),
		Active:        true,
	}
	e.coupons.Create(context.Background(), coupon)

	tooBig := int64(150)
	rr := e.do("PATCH", "/api/admin/coupons/"+coupon.ID.Hex(), token, model.UpdateCouponRequest{
		DiscountValue: &tooBig,
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	stored, _ := e.coupons.GetByCode(context.Background(), "PCT20")
	if stored.DiscountValue != 20 {
		t.Errorf("Expected stored value unchanged, got %d", stored.DiscountValue)
	}
}

func TestValidateCoupon_SeesAdminDeactivation(t *testing.T) {
	e := newTestEnv(t, 100)
	token := e.login(t)

	coupon := &model.Coupon{
		Code:          "FLASH",
		DiscountType:  model.DiscountTypeFixed,
		DiscountValue: 1000,
		UsageLimit:    10,
		ExpiresAt:     time.Now().Add(time.Hour),
		Active:        true,
	}
	e.coupons.Create(context.Background(), coupon)

	body := model.ValidateCouponRequest{Code: "FLASH", BookingAmount: 5000}
	if rr := e.do("POST", "/api/coupons/validate", "", body); rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	off := false
	if rr := e.do("PATCH", "/api/admin/coupons/"+coupon.ID.Hex(), token, model.UpdateCouponRequest{
		Active: &off,
	}); rr.Code != http.StatusOK {
		t.Fatalf("Deactivation failed: %d. Body: %s", rr.Code, rr.Body.String())
	}

	rr := e.do("POST", "/api/coupons/validate", "", body)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Success {
		t.Error("Expected deactivated coupon to validate as invalid")
	}
	if resp.Error != "coupon_inactive" {
		t.Errorf("Expected reason coupon_inactive, got %q", resp.Error)
	}
}

func TestSiteStatus_ReflectsMaintenanceMode(t *testing.T) {
	e := newTestEnv(t, 100)
	token := e.login(t)

	on := true
	msg := "scheduled maintenance"
	rr := e.do("PUT", "/api/admin/settings", token, model.UpdateSettingsRequest{
		MaintenanceMode:    &on,
		MaintenanceMessage: &msg,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("Settings update failed: %d. Body: %s", rr.Code, rr.Body.String())
	}

	status := e.do("GET", "/api/status", "", nil)
	if status.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", status.Code)
	}

	var resp struct {
		Data struct {
			MaintenanceMode    bool   `json:"maintenance_mode"`
			MaintenanceMessage string `json:"maintenance_message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(status.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !resp.Data.MaintenanceMode || resp.Data.MaintenanceMessage != "scheduled maintenance" {
		t.Errorf("Expected maintenance mode reflected, got %+v", resp.Data)
	}
}
