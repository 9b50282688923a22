// Package classify maps free-text subject labels to categories and question
// text to category-scoped topics.
//
// Both classifiers are ordered rule cascades: rules are evaluated
// top-to-bottom against normalized text and the first match wins. Specificity
// is an authoring invariant — rules must be declared most-specific-first —
// not something the engine computes. Unmatched input resolves to the general
// category/topic, never an error.
package classify

// Category is the closed set of subject categories. Derived, never authored.
type Category string

const (
	CategoryMath       Category = "math"
	CategoryPhysics    Category = "physics"
	CategoryChemistry  Category = "chemistry"
	CategoryBiology    Category = "biology"
	CategoryEnglish    Category = "english"
	CategorySpanish    Category = "spanish"
	CategoryFrench     Category = "french"
	CategoryPhilosophy Category = "philosophy"
	CategoryHistory    Category = "history"
	CategoryEconomics  Category = "economics"
	CategoryHealth     Category = "health"
	CategoryCreole     Category = "creole"
	CategoryComputing  Category = "computing"
	CategoryArts       Category = "arts"
	CategoryEthics     Category = "ethics"
	CategoryGeneral    Category = "general"
)

// AllCategories returns every category, general last.
func AllCategories() []Category {
	return []Category{
		CategoryMath, CategoryPhysics, CategoryChemistry, CategoryBiology,
		CategoryEnglish, CategorySpanish, CategoryFrench, CategoryPhilosophy,
		CategoryHistory, CategoryEconomics, CategoryHealth, CategoryCreole,
		CategoryComputing, CategoryArts, CategoryEthics, CategoryGeneral,
	}
}
