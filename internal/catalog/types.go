package catalog

// Question types as they appear in the catalog file. Unknown values are
// treated as short-answer by the engine.
const (
	TypeCalculation    = "calculation"
	TypeShortAnswer    = "short_answer"
	TypeEssay          = "essay"
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeMatching       = "matching"
	TypeFillBlank      = "fill_blank"
)
