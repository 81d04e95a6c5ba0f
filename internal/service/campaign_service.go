package service

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CampaignService owns campaign CRUD and the discount application run.
type CampaignService struct {
	campaignRepo repository.CampaignRepository
	tourRepo     repository.TourRepository

	// applyMu serializes campaign application so a scheduled tick and a
	// manual admin trigger cannot interleave updates to the same tour.
	applyMu sync.Mutex

	now func() time.Time
}

// NewCampaignService creates a new campaign service
func NewCampaignService(campaignRepo repository.CampaignRepository, tourRepo repository.TourRepository) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		tourRepo:     tourRepo,
		now:          time.Now,
	}
}

// ApplyActiveCampaigns evaluates every open campaign against every tour and
// writes the resulting discount state. When several campaigns match one tour
// the highest rate wins. A tour that no longer matches anything has its
// campaign discount cleared. Running twice with unchanged data is a no-op the
// second time.
func (s *CampaignService) ApplyActiveCampaigns(ctx context.Context) (*model.ApplyReport, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	now := s.now()

	campaigns, err := s.campaignRepo.ListActive(ctx, now)
	if err != nil {
		return nil, err
	}

	tours, err := s.tourRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	report := &model.ApplyReport{}
	for _, tour := range tours {
		rate, matched := bestRate(campaigns, tour, now)

		var changed bool
		var applyErr error
		switch {
		case matched:
			changed, applyErr = s.tourRepo.SetCampaignDiscount(ctx, tour.ID, rate, true)
		case tour.IsCampaign:
			changed, applyErr = s.tourRepo.SetCampaignDiscount(ctx, tour.ID, 0, false)
		default:
			continue
		}

		if applyErr != nil {
			// partial success is fine; log and keep going
			log.Printf("campaign apply failed for tour %s: %v", tour.ID.Hex(), applyErr)
			report.ToursFailed++
			continue
		}
		if changed {
			report.ToursUpdated++
		}
	}

	return report, nil
}

// bestRate returns the highest discount rate among campaigns matching the
// tour, and whether any matched at all.
func bestRate(campaigns []*model.Campaign, tour *model.Tour, now time.Time) (int, bool) {
	best := 0
	matched := false
	for _, c := range campaigns {
		if !matches(c, tour, now) {
			continue
		}
		matched = true
		if c.DiscountRate > best {
			best = c.DiscountRate
		}
	}
	return best, matched
}

// matches evaluates one campaign condition against a tour. City and tour type
// compare tour fields case-insensitively; dayOfWeek and date compare the
// evaluation clock, since tours carry no single date of their own.
func matches(c *model.Campaign, tour *model.Tour, now time.Time) bool {
	target := strings.TrimSpace(c.Target)

	switch c.ConditionType {
	case model.ConditionCity:
		return strings.EqualFold(tour.Location, target)
	case model.ConditionTourType:
		return strings.EqualFold(tour.Category, target)
	case model.ConditionDayOfWeek:
		return strings.EqualFold(now.Weekday().String(), target)
	case model.ConditionDate:
		return now.Format("2006-01-02") == target
	case model.ConditionBookingCount:
		threshold, err := strconv.ParseInt(target, 10, 64)
		if err != nil {
			return false
		}
		return tour.BookingCount >= threshold
	default:
		return false
	}
}

// Create inserts a new campaign.
func (s *CampaignService) Create(ctx context.Context, req *model.CreateCampaignRequest) (*model.Campaign, error) {
	campaign := &model.Campaign{
		Name:          req.Name,
		ConditionType: req.ConditionType,
		Target:        req.Target,
		DiscountRate:  req.DiscountRate,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Active:        req.Active,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// List returns all campaigns for the admin panel.
func (s *CampaignService) List(ctx context.Context) ([]*model.Campaign, error) {
	return s.campaignRepo.List(ctx)
}

// Update applies the non-nil fields of req to the campaign.
func (s *CampaignService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateCampaignRequest) (*model.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		campaign.Name = *req.Name
	}
	if req.ConditionType != nil {
		campaign.ConditionType = *req.ConditionType
	}
	if req.Target != nil {
		campaign.Target = *req.Target
	}
	if req.DiscountRate != nil {
		campaign.DiscountRate = *req.DiscountRate
	}
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		campaign.EndDate = *req.EndDate
	}
	if req.Active != nil {
		campaign.Active = *req.Active
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// Delete removes a campaign.
func (s *CampaignService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.campaignRepo.Delete(ctx, id)
}
