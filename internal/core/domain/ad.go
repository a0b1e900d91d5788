package domain

import (
	"fmt"
	"strings"
)

// Defaults applied when optional targeting fields are empty. Resolved at
// render time so stored records stay sparse.
const (
	DefaultDescription = "Check out our latest offer!"
	DefaultLocation    = "All locations"
	DefaultAgeRange    = "All ages"
	DefaultGender      = "All genders"
	DefaultScreens     = "All screens"

	callToAction = "Learn More"
)

// Ad is the creative payload served to a client. It is a plain value with no
// behaviour; the JSON shape is part of the public API.
type Ad struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	TargetAudience string `json:"targetAudience"`
	Channels       string `json:"channels"`
	Budget         string `json:"budget"`
	Duration       string `json:"duration"`
	CallToAction   string `json:"callToAction"`
	Location       string `json:"location"`
	AgeRange       string `json:"ageRange"`
	Gender         string `json:"gender"`
	Screens        string `json:"screens"`
}

// GenerateAd renders the creative for a campaign/strategy pair. It is a pure
// function: no store access, same output for the same inputs.
func GenerateAd(c Campaign, s Strategy) Ad {
	return Ad{
		Title:          fmt.Sprintf("%s - %s", c.Name, s.Name),
		Description:    orDefault(s.SelectedGoal, DefaultDescription),
		TargetAudience: strings.Join(s.Audiences, ", "),
		Channels:       strings.Join(s.SelectedChannels, ", "),
		Budget:         fmt.Sprintf("$%.2f per day", s.DailyBudget),
		Duration:       fmt.Sprintf("%s to %s", c.StartDate, c.EndDate),
		CallToAction:   callToAction,
		Location:       orDefault(c.AudienceLocation, DefaultLocation),
		AgeRange:       orDefault(s.AgeRange, DefaultAgeRange),
		Gender:         orDefault(s.Gender, DefaultGender),
		Screens:        orDefault(s.Screens, DefaultScreens),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
