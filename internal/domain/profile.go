package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Location pins an artisan to a village-level address.
type Location struct {
	Village  string `json:"village" bson:"village"`
	District string `json:"district" bson:"district"`
	State    string `json:"state" bson:"state"`
	Pincode  string `json:"pincode" bson:"pincode"`
}

// ContactDetails holds how a buyer reaches the artisan directly.
type ContactDetails struct {
	Phone          string `json:"phone" bson:"phone"`
	AlternatePhone string `json:"alternate_phone,omitempty" bson:"alternatePhone,omitempty"`
	Email          string `json:"email,omitempty" bson:"email,omitempty"`
}

// Profile is an artisan/seller record. One profile per external auth
// subject; the persona prompt is generated once at creation and stored.
type Profile struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	AuthSubjectID    string             `json:"auth_subject_id" bson:"authSubjectId"`
	ProfilePicURL    string             `json:"profile_pic_url,omitempty" bson:"profilePic,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Profession       string             `json:"profession" bson:"profession"`
	ExperienceYears  int                `json:"experience_years" bson:"experience"`
	Skills           []string           `json:"skills" bson:"skills"`
	UniqueSellingPoint string           `json:"unique_selling_point" bson:"uniqueSellingPoint"`
	Location         Location           `json:"location" bson:"location"`
	Contact          ContactDetails     `json:"contact" bson:"contactDetails"`
	Languages        []string           `json:"languages" bson:"languages"`
	Prompt           string             `json:"prompt,omitempty" bson:"prompt"`
	CreatedAt        time.Time          `json:"created_at" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"-" bson:"updatedAt"`
}

// NewProfileInput carries the onboarding form fields. The persona prompt is
// derived from these, never submitted by the client.
type NewProfileInput struct {
	ProfilePicURL    string         `json:"profile_pic_url"`
	Name             string         `json:"name"`
	Profession       string         `json:"profession"`
	ExperienceYears  int            `json:"experience_years"`
	Skills           []string       `json:"skills"`
	UniqueSellingPoint string       `json:"unique_selling_point"`
	Location         Location       `json:"location"`
	Contact          ContactDetails `json:"contact"`
	Languages        []string       `json:"languages"`
}
