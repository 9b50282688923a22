package classify

// Language topics, shared by the english, spanish, french and creole
// cascades (each category still runs its own independent cascade).
const (
	TopicGrammar       Topic = "grammar"
	TopicConjugation   Topic = "conjugation"
	TopicVocabulary    Topic = "vocabulary"
	TopicComprehension Topic = "comprehension"
	TopicWriting       Topic = "writing"
)

// Philosophy topics.
const (
	TopicKnowledge Topic = "knowledge"
	TopicFreedom   Topic = "freedom"
	TopicMorality  Topic = "morality"
	TopicSociety   Topic = "society"
)

// History topics.
const (
	TopicHaiti      Topic = "haiti"
	TopicWorld      Topic = "world"
	TopicGeographyT Topic = "geography"
)

// Economics topics.
const (
	TopicMarkets     Topic = "markets"
	TopicMoney       Topic = "money"
	TopicMacro       Topic = "macro"
	TopicDevelopment Topic = "development"
)

// Health, computing, arts and ethics topics.
const (
	TopicCare        Topic = "care"
	TopicPrevention  Topic = "prevention"
	TopicAnatomy     Topic = "anatomy"
	TopicProgramming Topic = "programming"
	TopicHardware    Topic = "hardware"
	TopicSoftware    Topic = "software"
	TopicMusic       Topic = "music"
	TopicVisualArts  Topic = "visual"
	TopicCitizenship Topic = "citizenship"
	TopicValues      Topic = "values"
)

func init() {
	registerCascade(CategoryEnglish, []Rule{
		{Pattern: `tense|\bverbs?\b|grammar|plural|pronoun|adjective|adverb|passive voice|conditional`, Topic: TopicGrammar},
		{Pattern: `vocabulary|synonym|antonym|meaning of|opposite of`, Topic: TopicVocabulary},
		{Pattern: `according to the (text|passage)|read the (text|passage)|comprehension`, Topic: TopicComprehension},
		{Pattern: `essay|paragraph|write about|composition|write a letter`, Topic: TopicWriting},
	})

	registerCascade(CategorySpanish, []Rule{
		{Pattern: `\bverbos?\b|conjuga|articulo|\bplural\b|pronombre|adjetivo`, Topic: TopicGrammar},
		{Pattern: `vocabulario|sinonimo|antonimo|significado|contrario`, Topic: TopicVocabulary},
		{Pattern: `segun el texto|lee el texto|lectura|comprension`, Topic: TopicComprehension},
		{Pattern: `escribe|redaccion|parrafo|composicion`, Topic: TopicWriting},
	})

	registerCascade(CategoryFrench, []Rule{
		{Pattern: `conjugu|imparfait|passe compose|passe simple|subjonctif|\bfutur\b|plus-que-parfait`, Topic: TopicConjugation},
		{Pattern: `grammaire|accord|adjectif|pronom|complement|proposition subordonnee`, Topic: TopicGrammar},
		{Pattern: `vocabulaire|synonyme|antonyme|sens du mot|famille de mots`, Topic: TopicVocabulary},
		{Pattern: `d'apres le texte|selon le texte|\btexte\b|comprehension`, Topic: TopicComprehension},
		{Pattern: `redaction|dissertation|rediger|production ecrite`, Topic: TopicWriting},
	})

	// Creole keywords are matched after diacritic stripping, so "gramè"
	// arrives as "grame" and "vèb" as "veb".
	registerCascade(CategoryCreole, []Rule{
		{Pattern: `\bgrame\b|\bvebs?\b|otograf`, Topic: TopicGrammar},
		{Pattern: `dapre teks|\bteks\b|li teks`, Topic: TopicComprehension},
		{Pattern: `ekri|redaksyon`, Topic: TopicWriting},
	})

	registerCascade(CategoryPhilosophy, []Rule{
		{Pattern: `connaissance|verite|\braison\b|\bscience\b|conscience`, Topic: TopicKnowledge},
		{Pattern: `liberte|determinisme|volonte`, Topic: TopicFreedom},
		{Pattern: `morale|devoir|bonheur|vertu|justice`, Topic: TopicMorality},
		{Pattern: `societe|\betat\b|politique|travail|autrui`, Topic: TopicSociety},
	})

	registerCascade(CategoryHistory, []Rule{
		{Pattern: `haiti|haitien|dessalines|toussaint|petion|christophe|saint[- ]domingue|1804|boyer`, Topic: TopicHaiti},
		{Pattern: `guerre mondiale|revolution francaise|colonisation|esclavage|traite negriere`, Topic: TopicWorld},
		{Pattern: `relief|climat|population|\bcarte\b|fleuve|continent|agriculture|ressources naturelles`, Topic: TopicGeographyT},
	})

	registerCascade(CategoryEconomics, []Rule{
		{Pattern: `marche|offre|demande|\bprix\b|concurrence`, Topic: TopicMarkets},
		{Pattern: `monnaie|banque|inflation|credit|\btaux\b`, Topic: TopicMoney},
		{Pattern: `\bpib\b|croissance|chomage|budget|production nationale`, Topic: TopicMacro},
		{Pattern: `developpement|pauvrete|mondialisation`, Topic: TopicDevelopment},
	})

	registerCascade(CategoryHealth, []Rule{
		{Pattern: `prevention|hygiene|vaccination`, Topic: TopicPrevention},
		{Pattern: `anatomie|organe`, Topic: TopicAnatomy},
		{Pattern: `soins|patient|traitement`, Topic: TopicCare},
	})

	registerCascade(CategoryComputing, []Rule{
		{Pattern: `programme|algorithme|\bcode\b`, Topic: TopicProgramming},
		{Pattern: `logiciel|systeme d'exploitation|tableur`, Topic: TopicSoftware},
		{Pattern: `ordinateur|materiel|processeur|memoire`, Topic: TopicHardware},
	})

	registerCascade(CategoryArts, []Rule{
		{Pattern: `musique|\bnotes?\b|gamme|accord|solfege|instrument`, Topic: TopicMusic},
		{Pattern: `dessin|peinture|couleur|sculpture`, Topic: TopicVisualArts},
	})

	registerCascade(CategoryEthics, []Rule{
		{Pattern: `citoyen|droits|devoirs|constitution`, Topic: TopicCitizenship},
		{Pattern: `valeur|respect|tolerance`, Topic: TopicValues},
	})
}
