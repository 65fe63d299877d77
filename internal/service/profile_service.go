package service

import (
	"context"

	"artisan-service/internal/domain"
	"artisan-service/internal/persona"
	"artisan-service/pkg/xerrors"
)

// ProfileStore is the slice of the profile repository the service needs.
// Satisfied by *repository.ProfileRepo; mocked in tests.
type ProfileStore interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByAuthSubject(ctx context.Context, subject string) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	List(ctx context.Context) ([]domain.Profile, error)
}

type ProfileService struct {
	store ProfileStore
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// Create onboards a new artisan profile for the given auth subject. The
// persona prompt is generated here, once, from the submitted fields; a
// second profile for the same subject is rejected without touching the
// existing record.
func (s *ProfileService) Create(ctx context.Context, subject string, in domain.NewProfileInput) (*domain.Profile, error) {
	if err := validateProfileInput(in); err != nil {
		return nil, err
	}

	p := &domain.Profile{
		AuthSubjectID:      subject,
		ProfilePicURL:      in.ProfilePicURL,
		Name:               in.Name,
		Profession:         in.Profession,
		ExperienceYears:    in.ExperienceYears,
		Skills:             in.Skills,
		UniqueSellingPoint: in.UniqueSellingPoint,
		Location:           in.Location,
		Contact:            in.Contact,
		Languages:          in.Languages,
	}
	p.Prompt = persona.Describe(p)

	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) GetByAuthSubject(ctx context.Context, subject string) (*domain.Profile, error) {
	return s.store.GetByAuthSubject(ctx, subject)
}

func (s *ProfileService) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.store.List(ctx)
}

func validateProfileInput(in domain.NewProfileInput) error {
	switch {
	case in.Name == "":
		return xerrors.ErrNameRequired
	case in.Profession == "":
		return xerrors.ErrProfessionRequired
	case in.ExperienceYears < 0:
		return xerrors.ErrInvalidInput
	case in.Location.Village == "" || in.Location.District == "" || in.Location.State == "":
		return xerrors.ErrLocationRequired
	case in.Contact.Phone == "":
		return xerrors.ErrPhoneRequired
	}
	return nil
}
