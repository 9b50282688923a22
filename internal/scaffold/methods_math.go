package scaffold

import "github.com/edlight/skafo/internal/classify"

// Numbered solution-method blanks per math topic. Three or four steps,
// phrased the way a corrected baccalauréat paper lays out its working.
var mathMethods = map[classify.Topic][]string{
	classify.TopicDerivatives: {
		"Écrire la formule de dérivation applicable",
		"Appliquer la formule à la fonction donnée",
		"Simplifier l'expression de f'(x)",
	},
	classify.TopicLimits: {
		"Identifier la forme de la limite (finie, infinie, indéterminée)",
		"Lever l'indétermination si nécessaire (factorisation, conjugué)",
		"Conclure sur la valeur de la limite",
	},
	classify.TopicIntegrals: {
		"Trouver une primitive de la fonction",
		"Appliquer les bornes d'intégration",
		"Calculer et simplifier le résultat",
	},
	classify.TopicEquations: {
		"Mettre l'équation sous forme standard",
		"Choisir la méthode de résolution (factorisation, discriminant, substitution)",
		"Résoudre et écrire l'ensemble des solutions",
		"Vérifier les solutions dans l'équation de départ",
	},
	classify.TopicStatistics: {
		"Organiser les données (effectifs, fréquences)",
		"Écrire la formule de l'indicateur demandé",
		"Calculer la valeur et interpréter le résultat",
	},
	classify.TopicProbability: {
		"Définir l'univers et les événements",
		"Identifier la loi ou la formule de dénombrement applicable",
		"Calculer la probabilité demandée",
	},
	classify.TopicMatrices: {
		"Écrire les matrices en présence",
		"Appliquer l'opération demandée (produit, déterminant, inverse)",
		"Présenter la matrice ou la valeur obtenue",
	},
	classify.TopicComplex: {
		"Écrire le nombre complexe sous la forme demandée",
		"Calculer module et argument si nécessaire",
		"Conclure (forme algébrique, trigonométrique ou exponentielle)",
	},
	classify.TopicSequences: {
		"Identifier la nature de la suite (arithmétique, géométrique, récurrente)",
		"Écrire la relation ou le terme général",
		"Calculer le terme ou la somme demandée",
	},
	classify.TopicLogarithms: {
		"Écrire les propriétés du logarithme utilisées",
		"Transformer l'expression ou l'équation",
		"Conclure en vérifiant le domaine de validité",
	},
	classify.TopicExponentials: {
		"Écrire les propriétés de l'exponentielle utilisées",
		"Transformer l'expression ou l'équation",
		"Conclure et vérifier le résultat",
	},
	classify.TopicTrigonometry: {
		"Identifier la relation trigonométrique applicable",
		"Appliquer la relation aux données de l'énoncé",
		"Calculer la valeur ou l'angle demandé",
	},
	classify.TopicFactoring: {
		"Repérer le facteur commun ou l'identité remarquable",
		"Factoriser ou développer l'expression",
		"Simplifier et présenter la forme finale",
	},
	classify.TopicFunctions: {
		"Déterminer le domaine de définition",
		"Étudier le sens de variation",
		"Dresser le tableau de variation et conclure",
	},
	classify.TopicVectors: {
		"Écrire les coordonnées des vecteurs en jeu",
		"Appliquer l'opération demandée (somme, produit scalaire, colinéarité)",
		"Interpréter le résultat géométriquement",
	},
	classify.TopicGeometry: {
		"Faire une figure et noter les données",
		"Choisir le théorème ou la formule applicable",
		"Appliquer et calculer la grandeur demandée",
	},
	classify.TopicProof: {
		"Écrire l'hypothèse et ce qu'il faut démontrer",
		"Dérouler le raisonnement étape par étape",
		"Conclure en citant le résultat établi",
	},
	classify.TopicGeneral: {
		"Identifier les données et l'inconnue",
		"Choisir la méthode ou la formule applicable",
		"Calculer et présenter le résultat",
	},
}

// Fill-blank framings for math, keyed by topic.
var mathFillBlank = map[classify.Topic]string{
	classify.TopicDerivatives:  "Compléter avec la dérivée demandée",
	classify.TopicLimits:       "Compléter avec la valeur de la limite",
	classify.TopicEquations:    "Compléter avec la solution de l'équation",
	classify.TopicSequences:    "Compléter avec le terme de la suite",
	classify.TopicTrigonometry: "Compléter avec la valeur trigonométrique",
	classify.TopicGeneral:      "Compléter avec la valeur numérique attendue",
}
