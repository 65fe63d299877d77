package persona

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artisan-service/internal/domain"
)

func ashaProfile() *domain.Profile {
	return &domain.Profile{
		Name:               "Asha",
		Profession:         "Potter",
		ExperienceYears:    5,
		Skills:             []string{"Glazing", "Wheel-throwing"},
		Languages:          []string{"Hindi", "English"},
		UniqueSellingPoint: "Minimalist glaze",
		Location: domain.Location{
			Village:  "X",
			District: "Y",
			State:    "Z",
		},
	}
}

func TestDescribeContainsProfileFields(t *testing.T) {
	p := ashaProfile()
	got := DescribeAt(p, 2026)

	assert.Contains(t, got, "Asha")
	assert.Contains(t, got, "Potter")
	assert.Contains(t, got, "5 years")
	assert.Contains(t, got, "since 2021")
	assert.Contains(t, got, "X, Y, Z")
	assert.Contains(t, got, "Glazing, Wheel-throwing")
	assert.Contains(t, got, "Hindi, English")
	assert.Contains(t, got, "Minimalist glaze")
}

func TestDescribeDeterministic(t *testing.T) {
	p := ashaProfile()
	first := DescribeAt(p, 2026)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, DescribeAt(p, 2026))
	}
}

func TestDescribeUsesCurrentYear(t *testing.T) {
	p := ashaProfile()
	year := time.Now().Year()
	assert.Contains(t, Describe(p), "since "+strconv.Itoa(year-5))
}

func TestSystemPromptSpeaksAsSeller(t *testing.T) {
	p := ashaProfile()
	got := SystemPrompt(p)

	assert.Contains(t, got, "You are Asha")
	assert.Contains(t, got, "Potter from X")
	assert.Contains(t, got, "5 years of expertise")
	assert.Contains(t, got, "Minimalist glaze")
	assert.Contains(t, got, "Glazing, Wheel-throwing")
}

func TestReviewPromptUsesProfession(t *testing.T) {
	got := ReviewPrompt(ashaProfile())
	assert.Contains(t, got, "experienced Potter")
}

func TestGreeting(t *testing.T) {
	assert.Equal(t, "Hi Asha here, Wassup !", Greeting("Asha"))
}

func TestLocationString(t *testing.T) {
	got := LocationString(domain.Location{Village: "Alandi", District: "Pune", State: "Maharashtra"})
	assert.Equal(t, "Alandi, Pune, Maharashtra", got)
}
