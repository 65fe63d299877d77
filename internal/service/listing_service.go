package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"artisan-service/internal/domain"
	"artisan-service/pkg/xerrors"
)

// ListingStore is the slice of the listing repository the service needs.
type ListingStore interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetWithSeller(ctx context.Context, id string) (*domain.ListingWithSeller, error)
	ListWithSeller(ctx context.Context) ([]domain.ListingWithSeller, error)
	ListByProfile(ctx context.Context, profileID primitive.ObjectID) ([]domain.Listing, error)
	DeleteOwned(ctx context.Context, id string, profileID primitive.ObjectID) error
}

type ListingService struct {
	store ListingStore
}

func NewListingService(store ListingStore) *ListingService {
	return &ListingService{store: store}
}

// Create lists a new product under the owning profile.
func (s *ListingService) Create(ctx context.Context, owner primitive.ObjectID, in domain.NewListingInput) (*domain.Listing, error) {
	switch {
	case in.Name == "" || in.Description == "":
		return nil, xerrors.ErrInvalidInput
	case in.Price <= 0:
		return nil, xerrors.ErrPriceOutOfRange
	case len(in.Images) > domain.MaxListingImages:
		return nil, xerrors.ErrTooManyImages
	}

	l := &domain.Listing{
		ProfileID:   owner,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Images:      in.Images,
	}
	if err := s.store.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListingService) GetWithSeller(ctx context.Context, id string) (*domain.ListingWithSeller, error) {
	return s.store.GetWithSeller(ctx, id)
}

func (s *ListingService) ListAll(ctx context.Context) ([]domain.ListingWithSeller, error) {
	return s.store.ListWithSeller(ctx)
}

func (s *ListingService) ListByProfile(ctx context.Context, owner primitive.ObjectID) ([]domain.Listing, error) {
	return s.store.ListByProfile(ctx, owner)
}

// Delete removes a listing, but only for its owner.
func (s *ListingService) Delete(ctx context.Context, id string, owner primitive.ObjectID) error {
	return s.store.DeleteOwned(ctx, id, owner)
}
