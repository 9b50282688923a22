package classify

// Physics topics.
const (
	TopicKinematics     Topic = "kinematics"
	TopicDynamics       Topic = "dynamics"
	TopicEnergy         Topic = "energy"
	TopicCircuits       Topic = "circuits"
	TopicElectricity    Topic = "electricity"
	TopicOptics         Topic = "optics"
	TopicWaves          Topic = "waves"
	TopicThermodynamics Topic = "thermodynamics"
	TopicMagnetism      Topic = "magnetism"
	TopicNuclear        Topic = "nuclear"
	TopicFluids         Topic = "fluids"
)

// Chemistry topics.
const (
	TopicCombustion    Topic = "combustion"
	TopicAcids         Topic = "acids"
	TopicRedox         Topic = "redox"
	TopicOrganic       Topic = "organic"
	TopicSolutions     Topic = "solutions"
	TopicStoichiometry Topic = "stoichiometry"
	TopicAtomic        Topic = "atomic"
	TopicBonds         Topic = "bonds"
	TopicGases         Topic = "gases"
)

// Biology topics.
const (
	TopicGenetics     Topic = "genetics"
	TopicCells        Topic = "cells"
	TopicMicrobes     Topic = "microbes"
	TopicHumanBody    Topic = "humanbody"
	TopicReproduction Topic = "reproduction"
	TopicPlants       Topic = "plants"
	TopicEcology      Topic = "ecology"
)

func init() {
	registerCascade(CategoryPhysics, []Rule{
		{Pattern: `circuit|resistance|condensateur|\bohm\b|intensite|courant|dipole|impedance`, Topic: TopicCircuits},
		{Pattern: `charge electrique|coulomb|champ electrique|electrostatique|potentiel`, Topic: TopicElectricity},
		{Pattern: `aimant|magnetique|induction|bobine|solenoide`, Topic: TopicMagnetism},
		{Pattern: `radioactiv|nucleaire|desintegration|demi[- ]vie|\bnoyau\b`, Topic: TopicNuclear},
		{Pattern: `lentille|miroir|refraction|reflexion|optique|prisme`, Topic: TopicOptics},
		{Pattern: `\bondes?\b|frequence|longueur d'onde|sonore|ultrason|vibration`, Topic: TopicWaves},
		{Pattern: `chaleur|temperature|thermique|thermodynamique|calorimetrie|gaz parfait`, Topic: TopicThermodynamics},
		{Pattern: `pression|fluide|hydrostatique|archimede|\bdebit\b`, Topic: TopicFluids},
		{Pattern: `energie|travail|puissance|joule|rendement`, Topic: TopicEnergy},
		{Pattern: `\bforces?\b|newton|frottement|dynamique|poids|inertie`, Topic: TopicDynamics},
		{Pattern: `vitesse|acceleration|mouvement|trajectoire|cinematique|chute libre`, Topic: TopicKinematics},
	})

	// Combustion is deliberately first: a combustion question usually also
	// mentions hydrocarbons, which would otherwise land in organic.
	registerCascade(CategoryChemistry, []Rule{
		{Pattern: `combustion`, Topic: TopicCombustion},
		{Pattern: `\bacide\b|\bbase\b|\bph\b|titrage|indicateur colore`, Topic: TopicAcids},
		{Pattern: `oxydoreduction|redox|oxydation|reducteur|oxydant|electrolyse|\bpile\b`, Topic: TopicRedox},
		{Pattern: `alcane|alcene|alcyne|alcool|organique|hydrocarbure|ester|benzene`, Topic: TopicOrganic},
		{Pattern: `concentration|molaire|dilution|solvant|solute|\bsolution\b`, Topic: TopicSolutions},
		{Pattern: `stoechiometrie|equation[- ]bilan|\bmoles?\b|masse molaire|avogadro`, Topic: TopicStoichiometry},
		{Pattern: `\batomes?\b|atomique|electron|proton|neutron|isotope|classification periodique`, Topic: TopicAtomic},
		{Pattern: `liaison|ionique|covalente|molecule`, Topic: TopicBonds},
		{Pattern: `\bgaz\b|pression partielle|volume molaire`, Topic: TopicGases},
	})

	registerCascade(CategoryBiology, []Rule{
		{Pattern: `genetique|\bgenes?\b|chromosome|\badn\b|heredite|allele`, Topic: TopicGenetics},
		{Pattern: `cellule|mitose|meiose|cytoplasme|membrane`, Topic: TopicCells},
		{Pattern: `bacterie|virus|microbe|infection|immunitaire`, Topic: TopicMicrobes},
		{Pattern: `reproduction|fecondation|gamete|grossesse`, Topic: TopicReproduction},
		{Pattern: `photosynthese|\bplantes?\b|vegetal|racine|feuille`, Topic: TopicPlants},
		{Pattern: `ecosysteme|ecologie|chaine alimentaire|biodiversite|environnement`, Topic: TopicEcology},
		{Pattern: `digestion|respiration|circulation|coeur|\bsang\b|nerveux|muscle|squelette|\brein\b|hormone`, Topic: TopicHumanBody},
	})
}
