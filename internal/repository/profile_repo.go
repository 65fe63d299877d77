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

type ProfileRepo struct {
	col *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) *ProfileRepo {
	return &ProfileRepo{col: db.Collection("users")}
}

// EnsureIndexes creates the unique index enforcing one profile per auth
// subject. Called once during server startup.
func (r *ProfileRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "authSubjectId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a new profile. A duplicate auth subject maps to
// xerrors.ErrProfileExists.
func (r *ProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return xerrors.ErrProfileExists
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return nil
}

// GetByAuthSubject fetches the profile owned by an external auth subject.
func (r *ProfileRepo) GetByAuthSubject(ctx context.Context, subject string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.col.FindOne(ctx, bson.M{"authSubjectId": subject}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, xerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByID fetches a profile by its hex object id. A malformed id behaves
// like a missing record.
func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, xerrors.ErrProfileNotFound
	}

	var p domain.Profile
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, xerrors.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all seller profiles, newest first.
func (r *ProfileRepo) List(ctx context.Context) ([]domain.Profile, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var profiles []domain.Profile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
