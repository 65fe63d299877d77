package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxListingImages caps the gallery size per listing.
const MaxListingImages = 5

// Listing is a product record owned by a profile. Listings are created and
// deleted whole; there is no update operation.
type Listing struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ProfileID   primitive.ObjectID `json:"profile_id" bson:"user"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	Price       float64            `json:"price" bson:"price"`
	Images      []string           `json:"images" bson:"images"`
	CreatedAt   time.Time          `json:"created_at" bson:"createdAt"`
}

// ListingWithSeller is a listing joined with its owning profile, as served
// on product detail and explore pages.
type ListingWithSeller struct {
	Listing `bson:",inline"`
	Seller  Profile `json:"seller" bson:"seller"`
}

// NewListingInput carries the create-listing form fields.
type NewListingInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
}
