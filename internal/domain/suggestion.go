package domain

// Suggestion is a read-only task template. Adding one clones its fields
// into a fresh Task with a new ID and creation time; the prototype is
// never mutated.
type Suggestion struct {
	Title         string
	Description   string
	Category      string
	Priority      Priority
	EstimatedTime int // minutes
	Tags          []string
}

// DefaultSuggestions are the canned templates offered in the UI
var DefaultSuggestions = []Suggestion{
	{
		Title:         "Plan the week ahead",
		Description:   "Review the calendar and pick three priorities.",
		Category:      "work",
		Priority:      PriorityHigh,
		EstimatedTime: 25,
		Tags:          []string{"planning"},
	},
	{
		Title:         "Inbox zero",
		Description:   "Archive, reply, or defer everything in the inbox.",
		Category:      "work",
		Priority:      PriorityMedium,
		EstimatedTime: 25,
		Tags:          []string{"email"},
	},
	{
		Title:         "30 minute walk",
		Category:      "health",
		Priority:      PriorityMedium,
		EstimatedTime: 30,
		Tags:          []string{"exercise"},
	},
	{
		Title:         "Read one chapter",
		Category:      "study",
		Priority:      PriorityLow,
		EstimatedTime: 25,
		Tags:          []string{"reading"},
	},
	{
		Title:         "Tidy the desk",
		Category:      "personal",
		Priority:      PriorityLow,
		EstimatedTime: 15,
	},
}
