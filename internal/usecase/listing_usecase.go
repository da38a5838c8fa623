package usecase

import (
	"context"
	"strings"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository, userRepo repository.UserRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type ListingInput struct {
	Title    string
	Summary  string
	Field    string
	Keywords []string
	Status   string
}

func (uc *ListingUseCase) Create(ctx context.Context, userID string, input ListingInput) (*entity.ResearchListing, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = entity.ListingStatusPublic
	}

	listing := &entity.ResearchListing{
		ResearcherID:   userID,
		ResearcherName: user.Name,
		Title:          input.Title,
		Summary:        input.Summary,
		Field:          input.Field,
		Keywords:       input.Keywords,
		Status:         status,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*entity.ResearchListing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) Update(ctx context.Context, userID, id string, input ListingInput) (*entity.ResearchListing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.ResearcherID != userID {
		return nil, errors.Forbidden("Only the owner can update a listing", nil)
	}

	if input.Title != "" {
		listing.Title = input.Title
	}
	if input.Summary != "" {
		listing.Summary = input.Summary
	}
	if input.Field != "" {
		listing.Field = input.Field
	}
	if input.Keywords != nil {
		listing.Keywords = input.Keywords
	}
	if input.Status != "" {
		listing.Status = input.Status
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) Delete(ctx context.Context, userID, id string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.ResearcherID != userID {
		return errors.Forbidden("Only the owner can delete a listing", nil)
	}

	return uc.listingRepo.Delete(ctx, id)
}

func (uc *ListingUseCase) ListPublic(ctx context.Context, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	return uc.listingRepo.ListPublic(ctx, limit, offset)
}

func (uc *ListingUseCase) ListOwn(ctx context.Context, userID string, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	return uc.listingRepo.ListByResearcher(ctx, userID, limit, offset)
}

// Search fetches the public listings and filters them in memory with a
// case-insensitive substring match on title and researcher name.
func (uc *ListingUseCase) Search(ctx context.Context, query string) ([]*entity.ResearchListing, error) {
	listings, _, err := uc.listingRepo.ListPublic(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	return FilterListings(listings, query), nil
}

// FilterListings applies the dashboard's search semantics to a listing set.
func FilterListings(listings []*entity.ResearchListing, query string) []*entity.ResearchListing {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return listings
	}

	var matched []*entity.ResearchListing
	for _, l := range listings {
		if strings.Contains(strings.ToLower(l.Title), q) ||
			strings.Contains(strings.ToLower(l.ResearcherName), q) {
			matched = append(matched, l)
		}
	}
	return matched
}
