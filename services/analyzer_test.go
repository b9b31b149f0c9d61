package services

import (
	"testing"

	"github.com/ChristelOko/BarometreHED-sub001/models"
)

func TestAnalyze_PositiveHighEnergy(t *testing.T) {
	t.Parallel()

	got := AnalyzeUserResponse("Je me sens super bien et énergique", DefaultLexicon)
	if got.Sentiment != models.SentimentPositive {
		t.Fatalf("sentiment=%q, attendu positive", got.Sentiment)
	}
	if got.EnergyLevel != models.EnergyHigh {
		t.Fatalf("energy=%q, attendu high", got.EnergyLevel)
	}
	if got.UrgencyLevel != models.UrgencyLow {
		t.Fatalf("urgency=%q, attendu low", got.UrgencyLevel)
	}
}

func TestAnalyze_NegativeLowEnergyUrgent(t *testing.T) {
	t.Parallel()

	got := AnalyzeUserResponse("Je suis épuisée et vidée, j'ai peur, je n'en peux plus", DefaultLexicon)
	if got.Sentiment != models.SentimentNegative {
		t.Fatalf("sentiment=%q, attendu negative", got.Sentiment)
	}
	if got.EnergyLevel != models.EnergyLow {
		t.Fatalf("energy=%q, attendu low", got.EnergyLevel)
	}
	// Mot-clé urgent présent
	if got.UrgencyLevel != models.UrgencyHigh {
		t.Fatalf("urgency=%q, attendu high", got.UrgencyLevel)
	}
}

func TestAnalyze_UrgencyWithoutUrgentKeyword(t *testing.T) {
	t.Parallel()

	// Plus de deux mots négatifs et énergie basse : urgence haute
	got := AnalyzeUserResponse("Je suis épuisée, vidée, triste et j'ai peur", DefaultLexicon)
	if got.EnergyLevel != models.EnergyLow {
		t.Fatalf("energy=%q, attendu low", got.EnergyLevel)
	}
	if got.UrgencyLevel != models.UrgencyHigh {
		t.Fatalf("urgency=%q, attendu high", got.UrgencyLevel)
	}
}

func TestAnalyze_MixedSentiment(t *testing.T) {
	t.Parallel()

	// Un positif, un négatif : comptes égaux, tous deux non nuls
	got := AnalyzeUserResponse("Je me sens bien mais fatiguée", DefaultLexicon)
	if got.Sentiment != models.SentimentMixed {
		t.Fatalf("sentiment=%q, attendu mixed", got.Sentiment)
	}
	if got.UrgencyLevel != models.UrgencyMedium {
		t.Fatalf("urgency=%q, attendu medium", got.UrgencyLevel)
	}
}

func TestAnalyze_NeutralDefaults(t *testing.T) {
	t.Parallel()

	got := AnalyzeUserResponse("Aujourd'hui il pleut", DefaultLexicon)
	if got.Sentiment != models.SentimentNeutral {
		t.Fatalf("sentiment=%q, attendu neutral", got.Sentiment)
	}
	if got.EnergyLevel != models.EnergyMedium {
		t.Fatalf("energy=%q, attendu medium", got.EnergyLevel)
	}
	if got.UrgencyLevel != models.UrgencyLow {
		t.Fatalf("urgency=%q, attendu low", got.UrgencyLevel)
	}
	if len(got.EmotionalTone) != 0 || len(got.KeyThemes) != 0 {
		t.Fatalf("tones=%v themes=%v, attendus vides", got.EmotionalTone, got.KeyThemes)
	}
}

func TestAnalyze_TonesAndThemes(t *testing.T) {
	t.Parallel()

	got := AnalyzeUserResponse("Mal dormi, angoisse au travail, fatiguée", DefaultLexicon)

	wantTones := []string{"anxious", "tired"}
	if len(got.EmotionalTone) != len(wantTones) {
		t.Fatalf("tones=%v, attendu %v", got.EmotionalTone, wantTones)
	}
	for i, tone := range wantTones {
		if got.EmotionalTone[i] != tone {
			t.Fatalf("tones=%v, attendu %v", got.EmotionalTone, wantTones)
		}
	}

	wantThemes := map[string]bool{"sommeil": true, "travail": true}
	for _, theme := range got.KeyThemes {
		if !wantThemes[theme] {
			t.Fatalf("thème inattendu %q dans %v", theme, got.KeyThemes)
		}
		delete(wantThemes, theme)
	}
	if len(wantThemes) != 0 {
		t.Fatalf("thèmes manquants %v dans %v", wantThemes, got.KeyThemes)
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got := AnalyzeUserResponse("SUPER BIEN", DefaultLexicon)
	if got.Sentiment != models.SentimentPositive {
		t.Fatalf("sentiment=%q, attendu positive", got.Sentiment)
	}
}
