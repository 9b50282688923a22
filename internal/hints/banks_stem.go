package hints

import "github.com/edlight/skafo/internal/classify"

// Topic-indexed hint banks for the method-driven categories. Three hints per
// topic, ordered from nudge to near-solution.
var topicBanks = map[classify.Category]map[classify.Topic][]string{
	classify.CategoryMath:      mathHints,
	classify.CategoryPhysics:   physicsHints,
	classify.CategoryChemistry: chemistryHints,
}

var mathHints = map[classify.Topic][]string{
	classify.TopicDerivatives: {
		"Rappelez-vous les formules de dérivation usuelles (xⁿ, produit, quotient).",
		"Identifiez la structure de la fonction avant d'appliquer une formule.",
		"Dérivez terme à terme puis simplifiez le résultat.",
	},
	classify.TopicLimits: {
		"Commencez par remplacer la variable par la valeur vers laquelle elle tend.",
		"Si vous obtenez une forme indéterminée, factorisez ou multipliez par le conjugué.",
		"Pensez aux limites de référence (polynômes, ln, exponentielle).",
	},
	classify.TopicIntegrals: {
		"Cherchez une primitive en inversant les formules de dérivation.",
		"N'oubliez pas la constante pour une primitive, les bornes pour une intégrale.",
		"Calculez F(b) - F(a) une fois la primitive trouvée.",
	},
	classify.TopicEquations: {
		"Ramenez tous les termes du même côté pour obtenir la forme standard.",
		"Pour un second degré, calculez le discriminant Δ = b² - 4ac.",
		"Vérifiez chaque solution dans l'équation de départ.",
	},
	classify.TopicStatistics: {
		"Commencez par organiser les données dans un tableau d'effectifs.",
		"Écrivez la formule de l'indicateur demandé avant de calculer.",
		"La moyenne pondérée utilise les effectifs comme coefficients.",
	},
	classify.TopicProbability: {
		"Définissez clairement l'univers et l'événement étudié.",
		"Probabilité = cas favorables / cas possibles quand il y a équiprobabilité.",
		"Pour des événements successifs, demandez-vous s'ils sont indépendants.",
	},
	classify.TopicMatrices: {
		"Vérifiez les dimensions avant toute opération sur les matrices.",
		"Le produit se fait ligne par colonne.",
		"Pour une matrice 2×2, det = ad - bc.",
	},
	classify.TopicComplex: {
		"Écrivez z sous la forme a + bi et identifiez partie réelle et imaginaire.",
		"Le module vaut √(a² + b²), l'argument se lit sur le cercle trigonométrique.",
		"i² = -1 : utilisez-le pour simplifier les produits.",
	},
	classify.TopicSequences: {
		"Déterminez d'abord si la suite est arithmétique ou géométrique.",
		"Arithmétique : un = u₀ + nr. Géométrique : un = u₀qⁿ.",
		"Pour une récurrence, calculez les premiers termes pour voir le comportement.",
	},
	classify.TopicLogarithms: {
		"Rappelez-vous : ln(ab) = ln a + ln b et ln(aⁿ) = n·ln a.",
		"ln et exponentielle sont réciproques : ln(eˣ) = x.",
		"Le logarithme n'est défini que pour des valeurs strictement positives.",
	},
	classify.TopicExponentials: {
		"Rappelez-vous : e^(a+b) = e^a · e^b.",
		"L'exponentielle est toujours strictement positive.",
		"Pour résoudre e^x = k, appliquez ln des deux côtés.",
	},
	classify.TopicTrigonometry: {
		"Placez les données sur le cercle trigonométrique ou un triangle rectangle.",
		"Rappelez-vous : cos²x + sin²x = 1.",
		"Vérifiez si l'angle demandé est en degrés ou en radians.",
	},
	classify.TopicFactoring: {
		"Cherchez d'abord un facteur commun à tous les termes.",
		"Reconnaissez les identités remarquables : a² - b², (a ± b)².",
		"Développez votre résultat pour vérifier la factorisation.",
	},
	classify.TopicFunctions: {
		"Commencez par déterminer le domaine de définition.",
		"Le signe de la dérivée donne le sens de variation.",
		"Résumez l'étude dans un tableau de variation.",
	},
	classify.TopicVectors: {
		"Écrivez les coordonnées de chaque vecteur.",
		"Deux vecteurs sont colinéaires quand xy' - x'y = 0.",
		"Le produit scalaire nul caractérise l'orthogonalité.",
	},
	classify.TopicGeometry: {
		"Faites une figure soignée et reportez-y les données.",
		"Cherchez le théorème adapté : Pythagore, Thalès, ou les formules d'aire.",
		"Vérifiez que votre résultat a un ordre de grandeur plausible.",
	},
	classify.TopicProof: {
		"Écrivez précisément l'hypothèse et la conclusion à démontrer.",
		"Avancez par étapes justifiées, chacune s'appuyant sur la précédente.",
		"Pour une récurrence : initialisation, hérédité, conclusion.",
	},
	classify.TopicGeneral: {
		"Relisez l'énoncé et repérez les données et l'inconnue.",
		"Cherchez la formule ou la propriété qui relie les données à l'inconnue.",
		"Présentez le calcul étape par étape avant de conclure.",
	},
}

var physicsHints = map[classify.Topic][]string{
	classify.TopicKinematics: {
		"Listez les grandeurs connues avec leurs unités.",
		"Choisissez l'équation du mouvement qui relie ces grandeurs.",
		"Convertissez les unités avant d'appliquer la formule.",
	},
	classify.TopicDynamics: {
		"Faites le bilan de toutes les forces appliquées au système.",
		"Appliquez F = ma selon chaque axe.",
		"Le poids vaut P = mg, avec g ≈ 9,8 m/s².",
	},
	classify.TopicEnergy: {
		"Identifiez les formes d'énergie au début et à la fin.",
		"Énergie cinétique : ½mv². Énergie potentielle : mgh.",
		"Sans frottement, l'énergie mécanique se conserve.",
	},
	classify.TopicCircuits: {
		"Schématisez le circuit et repérez série et parallèle.",
		"La loi d'Ohm U = RI s'applique à chaque dipôle.",
		"En série les résistances s'ajoutent, en parallèle ce sont les inverses.",
	},
	classify.TopicElectricity: {
		"Identifiez les charges en présence et leurs signes.",
		"La loi de Coulomb relie force, charges et distance.",
		"Les charges de même signe se repoussent.",
	},
	classify.TopicOptics: {
		"Tracez les rayons particuliers passant par le centre et les foyers.",
		"Utilisez la relation de conjugaison de la lentille.",
		"Vérifiez si l'image est réelle ou virtuelle, droite ou renversée.",
	},
	classify.TopicWaves: {
		"Identifiez fréquence, période et longueur d'onde dans l'énoncé.",
		"La célérité vaut v = λf.",
		"La période est l'inverse de la fréquence.",
	},
	classify.TopicThermodynamics: {
		"Repérez les échanges de chaleur entre les corps.",
		"Q = mcΔT relie chaleur, masse et variation de température.",
		"À l'équilibre thermique, la chaleur cédée égale la chaleur reçue.",
	},
	classify.TopicMagnetism: {
		"Identifiez la source du champ magnétique et son orientation.",
		"Utilisez la règle de la main droite pour les directions.",
		"Un courant crée un champ magnétique autour de lui.",
	},
	classify.TopicNuclear: {
		"Équilibrez nombres de masse et numéros atomiques dans l'équation.",
		"La demi-vie est la durée au bout de laquelle la moitié des noyaux a disparu.",
		"Après n demi-vies, il reste N₀/2ⁿ noyaux.",
	},
	classify.TopicFluids: {
		"La pression augmente avec la profondeur : p = p₀ + ρgh.",
		"La poussée d'Archimède égale le poids du fluide déplacé.",
		"Vérifiez la cohérence des unités (Pa, m, kg/m³).",
	},
	classify.TopicGeneral: {
		"Relevez les données avec leurs unités.",
		"Cherchez la loi physique qui les relie à la grandeur demandée.",
		"Donnez le résultat avec son unité.",
	},
}

var chemistryHints = map[classify.Topic][]string{
	classify.TopicCombustion: {
		"La combustion complète d'un hydrocarbure produit CO₂ et H₂O.",
		"Équilibrez d'abord le carbone, puis l'hydrogène, puis l'oxygène.",
		"Vérifiez que chaque élément est conservé de part et d'autre.",
	},
	classify.TopicAcids: {
		"Identifiez l'acide (donneur de H⁺) et la base (accepteur).",
		"pH = -log[H₃O⁺] en solution aqueuse.",
		"À l'équivalence, les quantités d'acide et de base se correspondent.",
	},
	classify.TopicRedox: {
		"Écrivez les deux couples oxydant/réducteur en présence.",
		"L'oxydation perd des électrons, la réduction en gagne.",
		"Équilibrez les électrons échangés avant de sommer les demi-équations.",
	},
	classify.TopicOrganic: {
		"Identifiez le groupe caractéristique de la molécule.",
		"Les alcanes suivent la formule CnH₂n₊₂.",
		"Le nom dépend de la chaîne la plus longue et des substituants.",
	},
	classify.TopicSolutions: {
		"La concentration molaire vaut C = n/V.",
		"Lors d'une dilution, la quantité de matière se conserve : C₁V₁ = C₂V₂.",
		"Convertissez les volumes en litres avant de calculer.",
	},
	classify.TopicStoichiometry: {
		"Écrivez et équilibrez d'abord l'équation bilan.",
		"Convertissez les masses en moles avec n = m/M.",
		"Les coefficients de l'équation donnent les rapports molaires.",
	},
	classify.TopicAtomic: {
		"Le numéro atomique Z donne le nombre de protons.",
		"Nombre de neutrons = A - Z.",
		"Dans un atome neutre, électrons et protons sont en nombre égal.",
	},
	classify.TopicBonds: {
		"Comptez les électrons de valence de chaque atome.",
		"Liaison covalente : mise en commun ; liaison ionique : transfert.",
		"Chaque atome cherche à compléter sa couche externe.",
	},
	classify.TopicGases: {
		"L'équation des gaz parfaits s'écrit PV = nRT.",
		"Travaillez en unités SI : pascals, m³, kelvins.",
		"À température constante, PV reste constant.",
	},
	classify.TopicGeneral: {
		"Identifiez les espèces chimiques en présence.",
		"Écrivez l'équation de la réaction avant tout calcul.",
		"Vérifiez la conservation des éléments et des charges.",
	},
}
