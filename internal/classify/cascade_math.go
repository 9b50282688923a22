package classify

// Math topics.
const (
	TopicStatistics    Topic = "statistics"
	TopicProbability   Topic = "probability"
	TopicMatrices      Topic = "matrices"
	TopicComplex       Topic = "complex"
	TopicSequences     Topic = "sequences"
	TopicIntegrals     Topic = "integrals"
	TopicDerivatives   Topic = "derivatives"
	TopicLimits        Topic = "limits"
	TopicLogarithms    Topic = "logarithms"
	TopicExponentials  Topic = "exponentials"
	TopicTrigonometry  Topic = "trigonometry"
	TopicFactoring     Topic = "factoring"
	TopicEquations     Topic = "equations"
	TopicFunctions     Topic = "functions"
	TopicVectors       Topic = "vectors"
	TopicGeometry      Topic = "geometry"
	TopicProof         Topic = "proof"
)

func init() {
	// Keyword patterns target the French phrasing of baccalauréat papers,
	// matched after lowercasing and diacritic stripping ("dérivée" arrives
	// as "derivee"). Specific techniques come before the broad buckets:
	// covariance/regression ahead of bare statistics, derivatives ahead of
	// functions, everything ahead of proof.
	registerCascade(CategoryMath, []Rule{
		{Pattern: `covariance|regression|correlation`, Topic: TopicStatistics},
		{Pattern: `ecart[- ]type|mediane|variance|statistiq|histogramme|effectif|moyenne`, Topic: TopicStatistics},
		{Pattern: `probabilit|aleatoire|denombrement|combinaison|arrangement|esperance`, Topic: TopicProbability},
		{Pattern: `matrice|determinant`, Topic: TopicMatrices},
		{Pattern: `complexe|imaginaire|affixe`, Topic: TopicComplex},
		{Pattern: `\bsuites?\b|recurrence|terme general|progression`, Topic: TopicSequences},
		{Pattern: `integrale|primitive|\bintegrer\b`, Topic: TopicIntegrals},
		{Pattern: `deriv|tangente a la courbe`, Topic: TopicDerivatives},
		{Pattern: `limite|asymptote|\blim\b`, Topic: TopicLimits},
		{Pattern: `logarithme|\bln\b|\blog\b`, Topic: TopicLogarithms},
		{Pattern: `exponentielle|\bexp\b`, Topic: TopicExponentials},
		{Pattern: `trigonometr|cosinus|sinus|\bcos\b|\bsin\b|\btan\b`, Topic: TopicTrigonometry},
		{Pattern: `factoris|developp|identite remarquable`, Topic: TopicFactoring},
		{Pattern: `equation|inequation|systeme|resoudre`, Topic: TopicEquations},
		{Pattern: `fonction|variation|courbe representative|domaine de definition`, Topic: TopicFunctions},
		{Pattern: `vecteur|scalaire|colineaire`, Topic: TopicVectors},
		{Pattern: `geometri|triangle|cercle|polygone|perimetre|\baire\b|volume|angle|droite`, Topic: TopicGeometry},
		{Pattern: `demontrer|montrer que|prouver|demonstration`, Topic: TopicProof},
	})
}
