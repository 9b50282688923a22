package classify

import "testing"

func TestValidateCleanTables(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("committed rule tables must validate: %v", err)
	}
}

func TestClassifyTopicMath(t *testing.T) {
	cases := []struct {
		text string
		want Topic
	}{
		{"Calculer la dérivée de f(x) = x²", TopicDerivatives},
		{"Déterminer la limite de f en +∞", TopicLimits},
		{"Calculer l'intégrale de 0 à 1", TopicIntegrals},
		{"Résoudre l'équation 2x + 3 = 0", TopicEquations},
		{"Calculer l'écart-type de la série", TopicStatistics},
		{"Quelle est la probabilité de tirer un as ?", TopicProbability},
		{"Calculer le déterminant de la matrice A", TopicMatrices},
		{"Écrire le nombre complexe z sous forme trigonométrique", TopicComplex},
		{"Soit la suite (un) définie par récurrence", TopicSequences},
		{"Simplifier ln(e²)", TopicLogarithms},
		{"Étudier la fonction exponentielle", TopicExponentials},
		{"Calculer le cosinus de l'angle", TopicTrigonometry},
		{"Factoriser l'expression suivante", TopicFactoring},
		{"Les vecteurs u et v sont-ils colinéaires ?", TopicVectors},
		{"Calculer l'aire du triangle ABC", TopicGeometry},
		{"Démontrer par récurrence", TopicSequences},
		{"Bonjour tout le monde", TopicGeneral},
	}
	for _, c := range cases {
		if got := ClassifyTopic(CategoryMath, c.text); got != c.want {
			t.Errorf("ClassifyTopic(math, %q) = %q, want %q", c.text, got, c.want)
		}
	}
}

// A text matching both a specific rule and a later generic rule must resolve
// to the earlier rule. "dérivée de la fonction" hits both derivatives and
// functions; derivatives is declared first.
func TestClassifyTopicPrecedence(t *testing.T) {
	got := ClassifyTopic(CategoryMath, "Calculer la dérivée de la fonction f")
	if got != TopicDerivatives {
		t.Errorf("got %q, want %q (earlier rule must win)", got, TopicDerivatives)
	}

	got = ClassifyTopic(CategoryChemistry, "Équation de combustion d'un hydrocarbure")
	if got != TopicCombustion {
		t.Errorf("got %q, want %q (combustion precedes organic)", got, TopicCombustion)
	}
}

func TestClassifyTopicPhysics(t *testing.T) {
	cases := []struct {
		text string
		want Topic
	}{
		{"Calculer la vitesse du mobile", TopicKinematics},
		{"Calculer l'intensité du courant dans le circuit", TopicCircuits},
		{"Quelle est l'énergie cinétique ?", TopicEnergy},
		{"La période de demi-vie du noyau", TopicNuclear},
		{"Construire l'image donnée par la lentille", TopicOptics},
		{"Calculer la pression au fond du lac", TopicFluids},
		{"Rien de physique ici", TopicGeneral},
	}
	for _, c := range cases {
		if got := ClassifyTopic(CategoryPhysics, c.text); got != c.want {
			t.Errorf("ClassifyTopic(physics, %q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestClassifyTopicChemistry(t *testing.T) {
	cases := []struct {
		text string
		want Topic
	}{
		{"Écrire l'équation de combustion du méthane", TopicCombustion},
		{"Calculer le pH de la solution", TopicAcids},
		{"Équilibrer la réaction d'oxydoréduction", TopicRedox},
		{"Nommer cet alcane", TopicOrganic},
		{"Calculer la concentration molaire", TopicSolutions},
		{"Combien de moles de CO₂ ?", TopicStoichiometry},
	}
	for _, c := range cases {
		if got := ClassifyTopic(CategoryChemistry, c.text); got != c.want {
			t.Errorf("ClassifyTopic(chemistry, %q) = %q, want %q", c.text, got, c.want)
		}
	}
}

func TestClassifyTopicUnknownCategory(t *testing.T) {
	if got := ClassifyTopic(CategoryGeneral, "n'importe quoi"); got != TopicGeneral {
		t.Errorf("got %q, want %q", got, TopicGeneral)
	}
}

func TestClassifyTopicDeterministic(t *testing.T) {
	text := "Calculer la dérivée puis la limite de la fonction"
	first := ClassifyTopic(CategoryMath, text)
	for range 5 {
		if got := ClassifyTopic(CategoryMath, text); got != first {
			t.Fatalf("non-deterministic: %q then %q", first, got)
		}
	}
}
