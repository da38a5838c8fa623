package repository

import (
	"context"

	"researchhub/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.ResearchListing) error
	GetByID(ctx context.Context, id string) (*entity.ResearchListing, error)
	Update(ctx context.Context, listing *entity.ResearchListing) error
	Delete(ctx context.Context, id string) error
	ListPublic(ctx context.Context, limit, offset int) ([]*entity.ResearchListing, int64, error)
	ListByResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ResearchListing, int64, error)
}
