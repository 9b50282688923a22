package classify

import (
	"strings"

	"github.com/edlight/skafo/internal/textnorm"
)

// subjectRule maps normalized-label keywords to a category. Any keyword
// matching (substring) selects the category.
type subjectRule struct {
	keywords []string
	category Category
}

// subjectRules is evaluated in order; first match wins. Specific labels come
// before anything that could shadow them (nursing before biology's anatomy
// keywords, arts' "esthetique" before ethics' "ethique").
var subjectRules = []subjectRule{
	{[]string{"mathematique", "maths", "math", "topographie"}, CategoryMath},
	{[]string{"physique", "physic"}, CategoryPhysics},
	{[]string{"chimie", "chemistry"}, CategoryChemistry},
	{[]string{"infirmier", "infirmiere", "soins", "secourisme", "sante"}, CategoryHealth},
	{[]string{"svt", "biologie", "biology", "geologie", "anatomie", "zoologie", "sciences naturelles", "sciences de la vie"}, CategoryBiology},
	{[]string{"anglais", "english"}, CategoryEnglish},
	{[]string{"espagnol", "espanol", "spanish"}, CategorySpanish},
	{[]string{"francais", "french"}, CategoryFrench},
	{[]string{"philosophie", "philo"}, CategoryPhilosophy},
	{[]string{"histoire", "geographie", "geography"}, CategoryHistory},
	{[]string{"economie", "economique", "economics"}, CategoryEconomics},
	{[]string{"kreyol", "creole", "kominikasyon"}, CategoryCreole},
	{[]string{"informatique", "computing"}, CategoryComputing},
	{[]string{"esthetique", "artistique", "musique", "arts", "art et", "dessin"}, CategoryArts},
	{[]string{"ethique", "civique", "citoyennete"}, CategoryEthics},
	{[]string{"culture generale", "connaissances generales"}, CategoryGeneral},
}

// ClassifySubject maps a free-text subject label to a category.
// Labels nothing matches resolve to general.
func ClassifySubject(label string) Category {
	norm := textnorm.Normalize(label)
	for _, r := range subjectRules {
		for _, kw := range r.keywords {
			if strings.Contains(norm, kw) {
				return r.category
			}
		}
	}
	return CategoryGeneral
}
