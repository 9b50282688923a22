package scaffold

import "github.com/edlight/skafo/internal/classify"

// Categories with per-topic method templates. Everything else falls through
// to categoryAnswers.
var methodTables = map[classify.Category]map[classify.Topic][]string{
	classify.CategoryMath:      mathMethods,
	classify.CategoryPhysics:   physicsMethods,
	classify.CategoryChemistry: chemistryMethods,
}

// Short-answer outlines for categories without a method table.
var categoryAnswers = map[classify.Category][]string{
	classify.CategoryBiology: {
		"Définir les termes ou le phénomène en jeu",
		"Expliquer le mécanisme biologique",
		"Donner un exemple ou une conséquence",
	},
	classify.CategoryEnglish: {
		"State your answer in a complete sentence",
		"Support it with an element from the text",
	},
	classify.CategorySpanish: {
		"Escriba su respuesta en una oración completa",
		"Justifique con un elemento del texto",
	},
	classify.CategoryFrench: {
		"Formuler la réponse en une phrase complète",
		"Appuyer la réponse sur un élément du texte",
	},
	classify.CategoryPhilosophy: {
		"Définir les notions du sujet",
		"Présenter l'argument central",
		"Illustrer par un exemple ou une référence",
	},
	classify.CategoryHistory: {
		"Situer l'événement ou le fait dans son contexte",
		"Exposer les faits ou causes principaux",
		"Indiquer les conséquences ou la portée",
	},
	classify.CategoryEconomics: {
		"Définir la notion économique concernée",
		"Expliquer le mécanisme ou la relation",
		"Illustrer par un exemple chiffré ou concret",
	},
	classify.CategoryHealth: {
		"Nommer la notion ou la pratique concernée",
		"Expliquer son rôle pour la santé",
		"Donner un conseil ou une application pratique",
	},
	classify.CategoryCreole: {
		"Ekri repons ou nan yon fraz konplè",
		"Bay yon egzanp ki soti nan tèks la",
	},
	classify.CategoryComputing: {
		"Définir le terme ou l'outil informatique",
		"Décrire son fonctionnement ou son usage",
		"Donner un exemple d'utilisation",
	},
	classify.CategoryArts: {
		"Identifier l'œuvre, la technique ou la notion",
		"Décrire ses caractéristiques principales",
		"Donner un exemple ou une appréciation",
	},
	classify.CategoryEthics: {
		"Définir la notion civique ou morale",
		"Expliquer son importance pour la société",
		"Donner un exemple de mise en pratique",
	},
}

// Essay outlines. Dedicated variants for the language and humanities
// categories that write essays in their own tongue or tradition.
var essayOutlines = map[classify.Category][]string{
	classify.CategoryEnglish: {
		"Introduction: present the topic and your thesis",
		"Body paragraph 1: first argument with an example",
		"Body paragraph 2: second argument with an example",
		"Conclusion: restate your thesis and close",
	},
	classify.CategorySpanish: {
		"Introducción: presente el tema y su tesis",
		"Desarrollo: argumentos con ejemplos",
		"Conclusión: resuma su posición",
	},
	classify.CategoryPhilosophy: {
		"Introduction : poser le problème et annoncer le plan",
		"Première partie : thèse et arguments",
		"Deuxième partie : antithèse ou objection",
		"Conclusion : synthèse et réponse au problème",
	},
	classify.CategoryFrench: {
		"Introduction : amener le sujet et annoncer le plan",
		"Développement : arguments illustrés d'exemples",
		"Conclusion : bilan et ouverture",
	},
	classify.CategoryHistory: {
		"Introduction : situer le sujet dans le temps et l'espace",
		"Développement : faits, causes et acteurs",
		"Conclusion : conséquences et portée historique",
	},
}

var essayGeneric = []string{
	"Introduction : présenter le sujet",
	"Développement : idées principales avec exemples",
	"Conclusion : résumer votre réponse",
}

// Fill-blank framings by category. Math goes through mathFillBlank first.
var fillBlankFramings = map[classify.Category]string{
	classify.CategoryPhysics:   "Compléter avec la grandeur physique ou sa valeur",
	classify.CategoryChemistry: "Compléter avec l'espèce chimique ou la valeur attendue",
	classify.CategoryBiology:   "Compléter avec le terme biologique qui convient",
	classify.CategoryEnglish:   "Fill in the blank with the correct word",
	classify.CategorySpanish:   "Complete el espacio con la palabra correcta",
	classify.CategoryFrench:    "Compléter avec le mot ou le groupe de mots qui convient",
	classify.CategoryCreole:    "Ranpli espas la ak mo ki kòrèk la",
	classify.CategoryHistory:   "Compléter avec le nom, la date ou le lieu attendu",
	classify.CategoryEconomics: "Compléter avec le terme économique qui convient",
}

// Last resort when neither a method table nor a category outline applies.
var genericFallback = []string{
	"Réponse principale",
	"Justification ou démarche suivie",
}
