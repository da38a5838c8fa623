package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
	"researchhub/pkg/logger"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.ResearchListing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}

	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	_, err := r.client.Collection("research-listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.ResearchListing, error) {
	doc, err := r.client.Collection("research-listings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.ResearchListing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}
	listing.ID = doc.Ref.ID

	return &listing, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.ResearchListing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection("research-listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("research-listings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) ListPublic(ctx context.Context, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	query := r.client.Collection("research-listings").
		Where("status", "==", entity.ListingStatusPublic).
		OrderBy("createdAt", firestore.Desc)
	return r.query(ctx, query, limit, offset)
}

func (r *firestoreListingRepository) ListByResearcher(ctx context.Context, researcherID string, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	query := r.client.Collection("research-listings").Where("researcherId", "==", researcherID)
	return r.query(ctx, query, limit, offset)
}

func (r *firestoreListingRepository) query(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.ResearchListing, int64, error) {
	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count listings", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var listings []*entity.ResearchListing

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate listings", err)
		}

		var listing entity.ResearchListing
		if err := doc.DataTo(&listing); err != nil {
			logger.Warn("Skipping malformed listing %s: %v", doc.Ref.ID, err)
			continue
		}
		listing.ID = doc.Ref.ID
		listings = append(listings, &listing)
	}

	return listings, total, nil
}
