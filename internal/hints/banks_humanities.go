package hints

import (
	"github.com/edlight/skafo/internal/catalog"
	"github.com/edlight/skafo/internal/classify"
)

// Keyword-matched hint rules for the categories without a topic bank.
// Patterns run against normalized (lowercased, diacritic-stripped) text;
// first match wins, unmatched text falls to the category defaults.
func init() {
	registerKeywords(classify.CategoryBiology, []keywordRule{
		{Pattern: `genetique|chromosome|\badn\b|allele|heredite`, Hints: []string{
			"Rappelez-vous la structure de l'ADN et le rôle des chromosomes.",
			"Distinguez génotype (les gènes) et phénotype (les caractères visibles).",
			"Un tableau de croisement aide à prévoir la descendance.",
		}},
		{Pattern: `photosynthese|\bplantes?\b|vegetal|feuille`, Hints: []string{
			"La photosynthèse a besoin de lumière, d'eau et de CO₂.",
			"Elle se déroule dans les chloroplastes des cellules vertes.",
			"Elle produit du glucose et libère du dioxygène.",
		}},
		{Pattern: `cellule|mitose|meiose|membrane`, Hints: []string{
			"Identifiez le type de cellule (animale, végétale, bactérienne).",
			"Repérez les organites et leur fonction.",
			"La mitose conserve le nombre de chromosomes, la méiose le divise.",
		}},
		{Pattern: `digestion|respiration|circulation|\bsang\b|coeur`, Hints: []string{
			"Situez l'organe dans son appareil (digestif, respiratoire, circulatoire).",
			"Décrivez le trajet de la substance concernée à travers le corps.",
			"Reliez la structure de l'organe à sa fonction.",
		}},
	})

	registerKeywords(classify.CategoryEnglish, []keywordRule{
		{Pattern: `\btense\b|past|present|future|conjugat`, Hints: []string{
			"Identify the time marker in the sentence (yesterday, now, tomorrow).",
			"Match the tense to the time marker.",
			"Check the verb form: base, -ed, -ing, or with an auxiliary.",
		}},
		{Pattern: `\btext\b|passage|according to|paragraph`, Hints: []string{
			"Read the question first, then scan the text for key words.",
			"The answer is usually near the key words you found.",
			"Answer in a complete sentence using your own words.",
		}},
	})

	registerKeywords(classify.CategorySpanish, []keywordRule{
		{Pattern: `conjuga|verbo|preterito|presente|futuro`, Hints: []string{
			"Identifique el sujeto para elegir la terminación correcta.",
			"Determine el tiempo verbal que pide la oración.",
			"Cuidado con los verbos irregulares (ser, ir, tener).",
		}},
	})

	registerKeywords(classify.CategoryFrench, []keywordRule{
		{Pattern: `conjugu|imparfait|passe compose|subjonctif|futur`, Hints: []string{
			"Repérez le sujet pour accorder la terminaison.",
			"Identifiez le temps demandé et son auxiliaire éventuel.",
			"Attention aux participes passés : accord avec être, pas avec avoir (sauf COD avant).",
		}},
		{Pattern: `\btexte\b|auteur|narrateur|figure de style`, Hints: []string{
			"Relisez le passage concerné avant de répondre.",
			"Appuyez chaque affirmation sur une citation du texte.",
			"Distinguez l'auteur, le narrateur et les personnages.",
		}},
	})

	registerKeywords(classify.CategoryPhilosophy, []keywordRule{
		{Pattern: `liberte|determinisme`, Hints: []string{
			"Définissez la liberté avant d'en discuter les limites.",
			"Opposez liberté et déterminisme avec un exemple.",
			"Pensez aux auteurs étudiés sur ce thème.",
		}},
		{Pattern: `conscience|connaissance|verite|raison`, Hints: []string{
			"Définissez précisément la notion au cœur du sujet.",
			"Distinguez opinion, croyance et connaissance.",
			"Construisez une thèse puis envisagez une objection.",
		}},
	})

	registerKeywords(classify.CategoryHistory, []keywordRule{
		{Pattern: `haiti|independance|1804|dessalines|toussaint|revolution haitienne`, Hints: []string{
			"Situez l'événement dans la chronologie de la révolution haïtienne.",
			"Identifiez les acteurs principaux et leur rôle.",
			"Reliez l'événement à l'indépendance de 1804 et à ses suites.",
		}},
		{Pattern: `carte|climat|relief|population|geographi`, Hints: []string{
			"Localisez la zone concernée sur une carte.",
			"Décrivez les caractéristiques physiques ou humaines demandées.",
			"Reliez le milieu géographique aux activités humaines.",
		}},
	})

	registerKeywords(classify.CategoryEconomics, []keywordRule{
		{Pattern: `offre|demande|marche|prix`, Hints: []string{
			"Rappelez la loi de l'offre et de la demande.",
			"Analysez l'effet d'une variation de prix sur chaque côté du marché.",
			"Illustrez avec un exemple de bien courant.",
		}},
		{Pattern: `monnaie|banque|inflation|credit`, Hints: []string{
			"Rappelez les fonctions de la monnaie (échange, réserve, mesure).",
			"Identifiez le rôle de la banque centrale.",
			"Reliez la masse monétaire au niveau des prix.",
		}},
	})
}

// Category-level fallbacks when no keyword rule matches.
var categoryDefaults = map[classify.Category][]string{
	classify.CategoryBiology: {
		"Définissez les termes biologiques de l'énoncé.",
		"Décrivez le mécanisme étape par étape.",
		"Reliez la structure à la fonction.",
	},
	classify.CategoryEnglish: {
		"Read the question carefully and underline the key words.",
		"Answer in a complete, grammatical sentence.",
		"Check your spelling and verb agreement.",
	},
	classify.CategorySpanish: {
		"Lea la pregunta con atención.",
		"Responda con una oración completa.",
		"Revise la concordancia y la ortografía.",
	},
	classify.CategoryFrench: {
		"Lisez attentivement la consigne.",
		"Répondez par une phrase complète et correcte.",
		"Relisez-vous pour vérifier accords et orthographe.",
	},
	classify.CategoryPhilosophy: {
		"Définissez les notions du sujet avant d'argumenter.",
		"Construisez un raisonnement : thèse, arguments, exemple.",
		"Envisagez une objection pour nuancer votre position.",
	},
	classify.CategoryHistory: {
		"Situez les faits dans le temps et l'espace.",
		"Citez dates, lieux et acteurs précis.",
		"Distinguez causes, déroulement et conséquences.",
	},
	classify.CategoryEconomics: {
		"Définissez la notion économique concernée.",
		"Expliquez le mécanisme qui relie les variables.",
		"Appuyez-vous sur un exemple concret ou chiffré.",
	},
	classify.CategoryHealth: {
		"Pensez aux règles d'hygiène et de prévention étudiées.",
		"Reliez la pratique à son effet sur la santé.",
		"Donnez un exemple d'application au quotidien.",
	},
	classify.CategoryCreole: {
		"Li kesyon an ak anpil atansyon.",
		"Reponn ak yon fraz konplè an kreyòl.",
		"Tcheke òtograf ou anvan ou fini.",
	},
	classify.CategoryComputing: {
		"Définissez le terme ou l'outil informatique concerné.",
		"Décrivez son usage ou son fonctionnement.",
		"Donnez un exemple concret d'utilisation.",
	},
	classify.CategoryArts: {
		"Identifiez l'œuvre, la technique ou la notion artistique.",
		"Décrivez ses caractéristiques principales.",
		"Exprimez une appréciation justifiée.",
	},
	classify.CategoryEthics: {
		"Définissez la notion civique ou morale en jeu.",
		"Expliquez son importance pour la vie en société.",
		"Donnez un exemple de comportement qui l'illustre.",
	},
}

// Type-keyed fallbacks for unmapped categories.
var typeDefaults = map[string][]string{
	catalog.TypeMultipleChoice: {
		"Éliminez d'abord les options manifestement fausses.",
		"Relisez l'énoncé pour chaque option restante.",
		"Méfiez-vous des options trop absolues (toujours, jamais).",
	},
	catalog.TypeTrueFalse: {
		"Cherchez le mot qui rendrait l'affirmation fausse.",
		"Une affirmation est fausse dès qu'une partie l'est.",
		"Justifiez votre verdict par un fait précis.",
	},
	catalog.TypeCalculation: {
		"Relevez les données et ce qui est demandé.",
		"Écrivez la formule avant de remplacer les valeurs.",
		"Vérifiez l'unité et l'ordre de grandeur du résultat.",
	},
	catalog.TypeEssay: {
		"Faites un plan avant de rédiger.",
		"Chaque paragraphe développe une seule idée.",
		"Soignez l'introduction et la conclusion.",
	},
	catalog.TypeFillBlank: {
		"Lisez la phrase entière pour saisir le contexte.",
		"Déterminez la nature du mot attendu.",
		"Vérifiez que la phrase complétée reste correcte.",
	},
	catalog.TypeMatching: {
		"Commencez par les associations dont vous êtes sûr(e).",
		"Procédez par élimination pour les paires restantes.",
		"Vérifiez qu'aucun élément ne reste sans correspondant.",
	},
}

// Last resort, used when nothing more specific applies.
var genericHints = []string{
	"Lisez attentivement la question et repérez les mots-clés.",
	"Rappelez-vous les notions du cours sur ce sujet.",
	"Structurez votre réponse avant de la rédiger.",
}
