package services

import (
	"strings"

	"github.com/ChristelOko/BarometreHED-sub001/models"
)

// WordList : liste de mots-clés associée à une étiquette
type WordList struct {
	Tag   string
	Words []string
}

// Lexicon : les listes de mots du classifieur heuristique.
// C'est de la donnée, pas du code : les listes se règlent sans toucher
// à la logique de décision (comptage puis comparaison).
type Lexicon struct {
	Positive   []string
	Negative   []string
	Tones      []WordList
	HighEnergy []string
	LowEnergy  []string
	Themes     []WordList
	Urgent     []string
}

// DefaultLexicon : lexique français du produit
var DefaultLexicon = Lexicon{
	Positive: []string{
		"bien", "super", "heureuse", "heureux", "joie", "motivée",
		"sereine", "confiante", "alignée", "vivante", "légère", "apaisée",
	},
	Negative: []string{
		"fatiguée", "épuisée", "triste", "mal", "lourde", "vidée",
		"stress", "angoisse", "peur", "colère", "débordée", "perdue",
	},
	Tones: []WordList{
		{Tag: "anxious", Words: []string{"angoisse", "inquiète", "stress", "nerveuse", "anxieuse"}},
		{Tag: "tired", Words: []string{"fatiguée", "épuisée", "vidée", "lourde"}},
		{Tag: "angry", Words: []string{"colère", "agacée", "frustrée", "énervée"}},
		{Tag: "joyful", Words: []string{"joie", "heureuse", "enthousiaste", "vivante"}},
		{Tag: "calm", Words: []string{"calme", "sereine", "apaisée", "paisible", "tranquille"}},
	},
	HighEnergy: []string{
		"énergique", "dynamique", "motivée", "pleine d'énergie", "en forme",
	},
	LowEnergy: []string{
		"fatiguée", "épuisée", "vidée", "au ralenti", "éteinte",
	},
	Themes: []WordList{
		{Tag: "sommeil", Words: []string{"dormi", "sommeil", "nuit", "insomnie"}},
		{Tag: "travail", Words: []string{"travail", "boulot", "réunion", "collègue"}},
		{Tag: "relations", Words: []string{"famille", "couple", "ami", "relation"}},
		{Tag: "corps", Words: []string{"corps", "douleur", "ventre", "tête"}},
		{Tag: "cycle", Words: []string{"règles", "cycle", "lune"}},
	},
	Urgent: []string{
		"au secours", "je n'en peux plus", "insupportable", "urgence", "craquer",
	},
}

// ResponseAnalysis : signaux dérivés d'un texte libre
type ResponseAnalysis struct {
	Sentiment     string
	EmotionalTone []string
	EnergyLevel   string
	KeyThemes     []string
	UrgencyLevel  string
}

// AnalyzeUserResponse classe un texte libre par appartenance de mots-clés.
// Insensible à la casse, appariement par sous-chaîne. Ce n'est pas un
// modèle : juste des comptages comparés.
func AnalyzeUserResponse(text string, lex Lexicon) ResponseAnalysis {
	lower := strings.ToLower(text)

	positiveCount := countMatches(lower, lex.Positive)
	negativeCount := countMatches(lower, lex.Negative)

	sentiment := models.SentimentNeutral
	switch {
	case positiveCount > negativeCount && positiveCount > 0:
		sentiment = models.SentimentPositive
	case negativeCount > positiveCount && negativeCount > 0:
		sentiment = models.SentimentNegative
	case positiveCount > 0 && negativeCount > 0:
		sentiment = models.SentimentMixed
	}

	var tones []string
	for _, tone := range lex.Tones {
		if countMatches(lower, tone.Words) > 0 {
			tones = append(tones, tone.Tag)
		}
	}

	highCount := countMatches(lower, lex.HighEnergy)
	lowCount := countMatches(lower, lex.LowEnergy)
	energy := models.EnergyMedium
	switch {
	case highCount > lowCount && highCount > 0:
		energy = models.EnergyHigh
	case lowCount > highCount && lowCount > 0:
		energy = models.EnergyLow
	}

	var themes []string
	for _, theme := range lex.Themes {
		if countMatches(lower, theme.Words) > 0 {
			themes = append(themes, theme.Tag)
		}
	}

	urgency := models.UrgencyLow
	switch {
	case countMatches(lower, lex.Urgent) > 0:
		urgency = models.UrgencyHigh
	case negativeCount > 2 && energy == models.EnergyLow:
		urgency = models.UrgencyHigh
	case negativeCount > 0 || sentiment == models.SentimentMixed:
		urgency = models.UrgencyMedium
	}

	return ResponseAnalysis{
		Sentiment:     sentiment,
		EmotionalTone: tones,
		EnergyLevel:   energy,
		KeyThemes:     themes,
		UrgencyLevel:  urgency,
	}
}

// countMatches compte les mots de la liste présents dans le texte,
// chaque mot au plus une fois
func countMatches(lowerText string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(lowerText, w) {
			count++
		}
	}
	return count
}
