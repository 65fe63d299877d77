// Package persona turns a profile record into the natural-language prompt
// text that conditions the completion service. Everything here is pure:
// same profile in, same text out.
package persona

import (
	"fmt"
	"strings"
	"time"

	"artisan-service/internal/domain"
)

// Describe builds the stored persona description for a profile. The start
// year is derived from the experience duration: currentYear - experience.
func Describe(p *domain.Profile) string {
	return DescribeAt(p, time.Now().Year())
}

// DescribeAt is Describe with an explicit current year.
func DescribeAt(p *domain.Profile, year int) string {
	loc := LocationString(p.Location)
	since := year - p.ExperienceYears
	skills := strings.Join(p.Skills, ", ")
	languages := strings.Join(p.Languages, ", ")

	var b strings.Builder
	fmt.Fprintf(&b, "Artisan profile:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Profession: %s\n", p.Profession)
	fmt.Fprintf(&b, "Experience: %d years (since %d)\n", p.ExperienceYears, since)
	fmt.Fprintf(&b, "Location: %s\n", loc)
	fmt.Fprintf(&b, "Skills: %s\n", skills)
	fmt.Fprintf(&b, "Languages: %s\n", languages)
	fmt.Fprintf(&b, "Unique Style/Approach: %s\n\n", p.UniqueSellingPoint)

	fmt.Fprintf(&b, "When responding about this artisan, emphasize their craftsmanship in %s with %d years of experience. \n", p.Profession, p.ExperienceYears)
	fmt.Fprintf(&b, "Highlight their unique approach: %q.\n", p.UniqueSellingPoint)
	fmt.Fprintf(&b, "Mention their specialized skills in %s.\n", skills)
	fmt.Fprintf(&b, "Note that they are based in %s and can communicate in %s.\n", loc, languages)
	return b.String()
}

// SystemPrompt builds the first-person voice used when the completion
// service answers as the artisan in chat.
func SystemPrompt(p *domain.Profile) string {
	return fmt.Sprintf(`You are %s, a skilled and experienced %s from %s. You have %d years of expertise and are known for your unique style of %s. You also specialize in %s

You are having conversation with a user who is interested in learning about your craft. Answer them in short and simple, easy to understand manner. Adapt to the user's knowledge level and answer in less than 2 lines. Keep the conversation natural and human like by using expressing words whenever needed, and do not say you are a computer program, stick to your personality and dont act formal.`,
		p.Name, p.Profession, p.Location.Village, p.ExperienceYears,
		p.UniqueSellingPoint, strings.Join(p.Skills, ", "))
}

// ReviewPrompt builds the mentor voice used when the artisan reviews a
// student's work from an image.
func ReviewPrompt(p *domain.Profile) string {
	return fmt.Sprintf("You are a skilled and experienced %s. Your student who is learning from you shows you their work, review it, and help them improve by your remarks. Reply in less than 2 lines, Keep the answer natural, close ended and human like, and do not say about yourself or you are a computer program, stick to your personality.", p.Profession)
}

// AssistantPrompt is the neutral system prompt for the general assistant
// endpoint, with no artisan attached.
const AssistantPrompt = `You are an AI assistant that helps people with general questions and tasks. Follow these guidelines:
1. Provide clear, concise, and factual answers
2. Break down complex topics into easy-to-understand explanations
3. Admit when you don't know something
4. Maintain a neutral and professional tone
5. Verify facts before presenting them as truth`

// Greeting is the single message a cleared or fresh conversation starts with.
func Greeting(name string) string {
	return fmt.Sprintf("Hi %s here, Wassup !", name)
}

// LocationString renders a location as "village, district, state".
func LocationString(l domain.Location) string {
	return fmt.Sprintf("%s, %s, %s", l.Village, l.District, l.State)
}
