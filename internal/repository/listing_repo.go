package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"artisan-service/internal/domain"
	"artisan-service/pkg/xerrors"
)

type ListingRepo struct {
	col *mongo.Collection
}

func NewListingRepo(db *mongo.Database) *ListingRepo {
	return &ListingRepo{col: db.Collection("products")}
}

// Create inserts a new listing for its owning profile.
func (r *ListingRepo) Create(ctx context.Context, l *domain.Listing) error {
	l.CreatedAt = time.Now()

	res, err := r.col.InsertOne(ctx, l)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		l.ID = oid
	}
	return nil
}

// GetByID fetches a listing by its hex object id.
func (r *ListingRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrListingNotFound
	}

	var l domain.Listing
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, xerrors.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// lookupSeller joins the owning profile into each listing document.
func lookupSeller() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "_id",
			"as":           "seller",
		}}},
		{{Key: "$unwind", Value: "$seller"}},
	}
}

// GetWithSeller fetches one listing joined with its owning profile.
func (r *ListingRepo) GetWithSeller(ctx context.Context, id string) (*domain.ListingWithSeller, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrListingNotFound
	}

	pipeline := append(mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": oid}}},
	}, lookupSeller()...)

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []domain.ListingWithSeller
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, xerrors.ErrListingNotFound
	}
	return &results[0], nil
}

// ListWithSeller returns every listing joined with its seller, newest first.
func (r *ListingRepo) ListWithSeller(ctx context.Context) ([]domain.ListingWithSeller, error) {
	pipeline := append(lookupSeller(), bson.D{
		{Key: "$sort", Value: bson.M{"createdAt": -1}},
	})

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []domain.ListingWithSeller
	if err := cur.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ListByProfile returns one seller's listings, newest first.
func (r *ListingRepo) ListByProfile(ctx context.Context, profileID primitive.ObjectID) ([]domain.Listing, error) {
	cur, err := r.col.Find(ctx, bson.M{"user": profileID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var listings []domain.Listing
	if err := cur.All(ctx, &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// DeleteOwned removes a listing only when owned by the given profile.
func (r *ListingRepo) DeleteOwned(ctx context.Context, id string, profileID primitive.ObjectID) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return xerrors.ErrListingNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user": profileID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return xerrors.ErrListingNotFound
	}
	return nil
}
