package scaffold

import "github.com/edlight/skafo/internal/classify"

var physicsMethods = map[classify.Topic][]string{
	classify.TopicKinematics: {
		"Relever les données (positions, vitesses, durées) avec leurs unités",
		"Écrire l'équation du mouvement applicable",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicDynamics: {
		"Faire le bilan des forces appliquées au système",
		"Appliquer la deuxième loi de Newton",
		"Résoudre et donner le résultat avec son unité",
	},
	classify.TopicEnergy: {
		"Identifier les formes d'énergie en jeu",
		"Écrire le bilan ou le théorème de l'énergie applicable",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicCircuits: {
		"Schématiser le circuit et relever les valeurs",
		"Appliquer la loi d'Ohm ou les lois de Kirchhoff",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicElectricity: {
		"Relever les charges et distances en présence",
		"Écrire la loi de Coulomb ou l'expression du champ",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicOptics: {
		"Tracer le schéma optique (rayons, foyers)",
		"Appliquer la relation de conjugaison ou les lois de la réfraction",
		"Déterminer la position ou la taille de l'image",
	},
	classify.TopicWaves: {
		"Relever fréquence, période ou longueur d'onde",
		"Écrire la relation entre célérité, fréquence et longueur d'onde",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicThermodynamics: {
		"Relever les températures, masses et chaleurs en jeu",
		"Écrire l'équation calorimétrique ou la loi des gaz applicable",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicMagnetism: {
		"Identifier la source du champ et son orientation",
		"Écrire l'expression du champ ou de la force magnétique",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicNuclear: {
		"Écrire l'équation de la désintégration",
		"Appliquer la loi de décroissance radioactive",
		"Calculer la grandeur demandée (activité, durée, masse)",
	},
	classify.TopicFluids: {
		"Relever les pressions, profondeurs et masses volumiques",
		"Appliquer le principe fondamental de l'hydrostatique ou d'Archimède",
		"Calculer la grandeur demandée avec son unité",
	},
	classify.TopicGeneral: {
		"Relever les données avec leurs unités",
		"Écrire la loi physique applicable",
		"Calculer et donner le résultat avec son unité",
	},
}

var chemistryMethods = map[classify.Topic][]string{
	classify.TopicCombustion: {
		"Écrire l'équation de combustion non équilibrée",
		"Équilibrer l'équation",
		"Calculer les quantités de matière demandées",
	},
	classify.TopicAcids: {
		"Identifier l'acide et la base en présence",
		"Écrire l'équation de la réaction acido-basique",
		"Calculer le pH ou la concentration demandée",
	},
	classify.TopicRedox: {
		"Écrire les deux demi-équations électroniques",
		"Combiner les demi-équations en équation bilan",
		"Calculer la grandeur demandée",
	},
	classify.TopicOrganic: {
		"Identifier la famille du composé et son groupe caractéristique",
		"Écrire la formule ou l'équation de la réaction",
		"Nommer le composé ou le produit obtenu",
	},
	classify.TopicSolutions: {
		"Relever les volumes et concentrations donnés",
		"Écrire la relation de dilution ou de concentration",
		"Calculer la grandeur demandée",
	},
	classify.TopicStoichiometry: {
		"Écrire l'équation bilan équilibrée",
		"Établir le tableau d'avancement ou les rapports molaires",
		"Calculer les quantités de matière ou masses demandées",
	},
	classify.TopicAtomic: {
		"Relever le numéro atomique et le nombre de masse",
		"Écrire la composition ou la configuration électronique",
		"Répondre à la question posée sur l'atome",
	},
	classify.TopicBonds: {
		"Écrire la configuration électronique des atomes",
		"Déterminer le type de liaison formée",
		"Représenter la molécule ou le composé",
	},
	classify.TopicGases: {
		"Relever pression, volume et température",
		"Appliquer l'équation des gaz parfaits",
		"Calculer la grandeur demandée",
	},
	classify.TopicGeneral: {
		"Identifier les espèces chimiques en présence",
		"Écrire l'équation ou la relation applicable",
		"Calculer et présenter le résultat",
	},
}
