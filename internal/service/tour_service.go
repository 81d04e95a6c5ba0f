package service

import (
	"context"
	"strings"
	"time"

	"tour-platform/internal/model"
	"tour-platform/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TourService handles tour CRUD for the public catalog and the admin panel.
type TourService struct {
	repo repository.TourRepository
}

// NewTourService creates a new tour service
func NewTourService(repo repository.TourRepository) *TourService {
	return &TourService{repo: repo}
}

// Create inserts a new tour; a missing slug is derived from the title.
func (s *TourService) Create(ctx context.Context, req *model.CreateTourRequest) (*model.Tour, error) {
	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	tour := &model.Tour{
		Title:          req.Title,
		Slug:           slug,
		BasePriceCents: req.BasePriceCents,
		Location:       req.Location,
		Category:       req.Category,
		DurationDays:   req.DurationDays,
		ExtraServices:  req.ExtraServices,
		Active:         req.Active,
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

// Slugify lowercases a title and collapses non-alphanumerics into hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// List returns tours; activeOnly hides unpublished tours from the public site.
func (s *TourService) List(ctx context.Context, activeOnly bool) ([]*model.Tour, error) {
	return s.repo.List(ctx, activeOnly)
}

// Get returns one tour by ID.
func (s *TourService) Get(ctx context.Context, id primitive.ObjectID) (*model.Tour, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies the non-nil fields of req to the tour.
func (s *TourService) Update(ctx context.Context, id primitive.ObjectID, req *model.UpdateTourRequest) (*model.Tour, error) {
	tour, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		tour.Title = *req.Title
	}
	if req.BasePriceCents != nil {
		tour.BasePriceCents = *req.BasePriceCents
	}
	if req.Location != nil {
		tour.Location = *req.Location
	}
	if req.Category != nil {
		tour.Category = *req.Category
	}
	if req.DurationDays != nil {
		tour.DurationDays = *req.DurationDays
	}
	if req.ExtraServices != nil {
		tour.ExtraServices = *req.ExtraServices
	}
	if req.Active != nil {
		tour.Active = *req.Active
	}
	tour.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, tour); err != nil {
		return nil, err
	}

	return tour, nil
}

// Delete removes a tour.
func (s *TourService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.repo.Delete(ctx, id)
}
