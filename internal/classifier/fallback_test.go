package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCategories(t *testing.T) {
	tests := []struct {
		name        string
		description string
		category    string
	}{
		{"pothole maps to road issues", "There is a huge pothole near the bus stop", "Road Issues"},
		{"pipe maps to water supply", "A burst pipe is flooding the sidewalk", "Water Supply"},
		{"power maps to electricity", "Power outage in the whole block since morning", "Electricity"},
		{"garbage maps to waste management", "Garbage has not been collected for two weeks", "Waste Management"},
		{"hospital maps to healthcare", "The hospital entrance ramp is unusable", "Healthcare"},
		{"unmatched text lands in other", "Something odd happened here yesterday evening", "Other"},
		{"matching is case insensitive", "POTHOLE on Main Avenue", "Road Issues"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.description)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, fallbackConfidence, got.Confidence)
		})
	}
}

func TestFallbackFirstRuleWins(t *testing.T) {
	// "street light" matches both the road rule and the lighting rule; the
	// road rule comes first.
	got := Fallback("The street light is flickering")
	assert.Equal(t, "Road Issues", got.Category)
}

func TestFallbackUrgency(t *testing.T) {
	tests := []struct {
		name        string
		description string
		urgency     string
	}{
		{"urgent keyword raises urgency", "Dangerous open manhole on the walkway", "high"},
		{"leak is urgent", "Gas leak smell near the playground", "high"},
		{"low keyword lowers urgency", "Suggestion: add benches to the park", "low"},
		{"maintenance is low", "Routine maintenance needed on the fence", "low"},
		{"neutral text is medium", "The park gate squeaks when opened", "medium"},
		{"urgent wins over low", "Urgent improvement needed, wall collapsed", "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.urgency, Fallback(tt.description).Urgency)
		})
	}
}

func TestFallbackCaption(t *testing.T) {
	got := Fallback("pothole on the highway")
	assert.Equal(t, "Complaint about road issues", got.Caption)
}

func TestUnavailable(t *testing.T) {
	got := Unavailable()
	assert.Equal(t, "Image analysis unavailable", got.Caption)
	assert.Equal(t, "Other", got.Category)
	assert.Equal(t, "medium", got.Urgency)
	assert.Zero(t, got.Confidence)
}
