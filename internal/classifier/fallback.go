package classifier

import "strings"

// Result is the outcome of analyzing a complaint, whether it came from the
// ML service or from the local fallback.
type Result struct {
	Caption    string  `json:"caption"`
	Category   string  `json:"category"`
	Urgency    string  `json:"urgency"`
	Confidence float64 `json:"confidence"`
}

// fallbackConfidence marks keyword-derived results apart from ML-backed ones.
const fallbackConfidence = 0.6

type categoryRule struct {
	category string
	keywords []string
}

// Ordered rules, first match wins.
var categoryRules = []categoryRule{
	{"Road Issues", []string{"road", "pothole", "street"}},
	{"Water Supply", []string{"water", "supply", "pipe"}},
	{"Electricity", []string{"electric", "power", "light"}},
	{"Sanitation", []string{"sanitation", "sewage", "drain"}},
	{"Street Lighting", []string{"light", "street light"}},
	{"Public Transport", []string{"transport", "bus", "metro"}},
	{"Parks & Recreation", []string{"park", "garden", "recreation"}},
	{"Noise Pollution", []string{"noise", "sound"}},
	{"Air Pollution", []string{"air", "pollution", "smoke"}},
	{"Waste Management", []string{"waste", "garbage", "trash"}},
	{"Traffic Management", []string{"traffic", "congestion"}},
	{"Public Safety", []string{"safety", "security", "crime"}},
	{"Healthcare", []string{"health", "hospital", "medical"}},
	{"Education", []string{"school", "education", "college"}},
}

var urgentKeywords = []string{
	"emergency", "urgent", "critical", "dangerous", "broken",
	"damaged", "leak", "fire", "accident",
}

var lowUrgencyKeywords = []string{
	"suggestion", "improvement", "maintenance", "upgrade", "beautification",
}

// Fallback classifies a complaint from its description alone. It is total:
// unmatched descriptions land in "Other" with medium urgency.
func Fallback(description string) Result {
	text := strings.ToLower(description)

	category := "Other"
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			category = rule.category
			break
		}
	}

	urgency := "medium"
	if containsAny(text, urgentKeywords) {
		urgency = "high"
	} else if containsAny(text, lowUrgencyKeywords) {
		urgency = "low"
	}

	return Result{
		Caption:    "Complaint about " + strings.ToLower(category),
		Category:   category,
		Urgency:    urgency,
		Confidence: fallbackConfidence,
	}
}

// Unavailable is the fixed result used when there is no image to analyze at
// all. Confidence 0 distinguishes it from the keyword fallback.
func Unavailable() Result {
	return Result{
		Caption:    "Image analysis unavailable",
		Category:   "Other",
		Urgency:    "medium",
		Confidence: 0,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
