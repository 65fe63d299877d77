package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"artisan-service/internal/domain"
	"artisan-service/pkg/xerrors"
)

func TestListingCreate(t *testing.T) {
	store := newFakeListingStore()
	svc := NewListingService(store)
	owner := primitive.NewObjectID()

	l, err := svc.Create(context.Background(), owner, domain.NewListingInput{
		Name:        "Terracotta vase",
		Description: "Hand thrown, minimalist glaze",
		Price:       250,
		Images:      []string{"https://img/1.jpg", "https://img/2.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, owner, l.ProfileID)
	assert.False(t, l.ID.IsZero())
}

func TestListingCreateRejectsTooManyImages(t *testing.T) {
	svc := NewListingService(newFakeListingStore())

	images := make([]string, domain.MaxListingImages+1)
	for i := range images {
		images[i] = "https://img/x.jpg"
	}

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), domain.NewListingInput{
		Name:        "Vase",
		Description: "desc",
		Price:       100,
		Images:      images,
	})
	assert.ErrorIs(t, err, xerrors.ErrTooManyImages)
}

func TestListingCreateRejectsBadPrice(t *testing.T) {
	svc := NewListingService(newFakeListingStore())

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), domain.NewListingInput{
		Name:        "Vase",
		Description: "desc",
		Price:       0,
	})
	assert.ErrorIs(t, err, xerrors.ErrPriceOutOfRange)
}

func TestListingDeleteOwnerChecked(t *testing.T) {
	store := newFakeListingStore()
	svc := NewListingService(store)
	owner := primitive.NewObjectID()

	l, err := svc.Create(context.Background(), owner, domain.NewListingInput{
		Name:        "Vase",
		Description: "desc",
		Price:       100,
	})
	require.NoError(t, err)

	// someone else cannot delete it
	err = svc.Delete(context.Background(), l.ID.Hex(), primitive.NewObjectID())
	assert.ErrorIs(t, err, xerrors.ErrListingNotFound)

	// the owner can
	require.NoError(t, svc.Delete(context.Background(), l.ID.Hex(), owner))
	_, err = store.GetByID(context.Background(), l.ID.Hex())
	assert.ErrorIs(t, err, xerrors.ErrListingNotFound)
}
