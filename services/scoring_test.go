package services

import (
	"errors"
	"testing"

	"github.com/ChristelOko/BarometreHED-sub001/models"
)

func feeling(name, category string, positive bool, centers ...string) models.Feeling {
	return models.Feeling{
		ID:              "f-" + name,
		Name:            name,
		Category:        category,
		IsPositive:      positive,
		AffectedCenters: centers,
	}
}

func TestComputeCategoryScore_EndToEnd(t *testing.T) {
	t.Parallel()

	positive := []models.Feeling{
		feeling("A", models.CategoryGeneral, true),
		feeling("B", models.CategoryGeneral, true),
		feeling("C", models.CategoryGeneral, true),
	}
	negative := []models.Feeling{
		feeling("D", models.CategoryGeneral, false),
		feeling("E", models.CategoryGeneral, false),
	}

	// positiveScore = (1/3)*100*0.6 = 20, negativeScore = (1-1/2)*100*0.4 = 20
	score, err := ComputeCategoryScore(map[string]bool{"A": true, "D": true}, positive, negative)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if score != 40 {
		t.Fatalf("score=%d, attendu 40", score)
	}
}

func TestComputeCategoryScore_Deterministic(t *testing.T) {
	t.Parallel()

	positive := []models.Feeling{
		feeling("A", models.CategoryMental, true),
		feeling("B", models.CategoryMental, true),
	}
	negative := []models.Feeling{
		feeling("C", models.CategoryMental, false),
	}
	selected := map[string]bool{"A": true, "C": true}

	first, err := ComputeCategoryScore(selected, positive, negative)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	second, err := ComputeCategoryScore(selected, positive, negative)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if first != second {
		t.Fatalf("scores %d != %d pour des entrées identiques", first, second)
	}
}

func TestComputeCategoryScore_EmptySelectionBaseline(t *testing.T) {
	t.Parallel()

	var positive, negative []models.Feeling
	for _, n := range []string{"p1", "p2", "p3", "p4", "p5"} {
		positive = append(positive, feeling(n, models.CategoryEmotional, true))
	}
	for _, n := range []string{"n1", "n2", "n3", "n4", "n5"} {
		negative = append(negative, feeling(n, models.CategoryEmotional, false))
	}

	// Sélection vide : round(100 * poidsNégatif) = 50 pour 5+5
	score, err := ComputeCategoryScore(map[string]bool{}, positive, negative)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if score != 50 {
		t.Fatalf("score=%d, attendu 50", score)
	}
}

func TestComputeCategoryScore_Bounds(t *testing.T) {
	t.Parallel()

	positive := []models.Feeling{
		feeling("A", models.CategoryPhysical, true),
		feeling("B", models.CategoryPhysical, true),
		feeling("C", models.CategoryPhysical, true),
	}
	negative := []models.Feeling{
		feeling("D", models.CategoryPhysical, false),
		feeling("E", models.CategoryPhysical, false),
	}

	allPositive := map[string]bool{"A": true, "B": true, "C": true}
	score, err := ComputeCategoryScore(allPositive, positive, negative)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if score != 100 {
		t.Fatalf("tous les positifs: score=%d, attendu 100", score)
	}

	allNegative := map[string]bool{"D": true, "E": true}
	score, err = ComputeCategoryScore(allNegative, positive, negative)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if score != 0 {
		t.Fatalf("tous les négatifs: score=%d, attendu 0", score)
	}
}

func TestComputeCategoryScore_EmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := ComputeCategoryScore(map[string]bool{"A": true}, nil, nil)
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("err=%v, attendu ErrEmptyCatalog", err)
	}
}

func TestOverallScore(t *testing.T) {
	t.Parallel()

	if got := OverallScore(nil); got != 50 {
		t.Fatalf("OverallScore(nil)=%d, attendu 50", got)
	}
	if got := OverallScore([]int{60, 70, 81}); got != 70 {
		t.Fatalf("OverallScore=%d, attendu 70", got)
	}
}

func TestClassifyTrend_ShortHistoryStable(t *testing.T) {
	t.Parallel()

	for _, history := range [][]int{nil, {80}, {80, 20}, {80, 20, 80}} {
		if got := ClassifyTrend(history); got != TrendStable {
			t.Fatalf("ClassifyTrend(%v)=%q, attendu stable", history, got)
		}
	}
}

func TestClassifyTrend_Improving(t *testing.T) {
	t.Parallel()

	// Du plus récent au plus ancien : moyenne récente 80, ancienne 40
	history := []int{80, 80, 80, 80, 40, 40, 40, 40}
	if got := ClassifyTrend(history); got != TrendImproving {
		t.Fatalf("ClassifyTrend=%q, attendu improving", got)
	}
}

func TestClassifyTrend_Declining(t *testing.T) {
	t.Parallel()

	history := []int{40, 40, 40, 40, 80, 80, 80, 80}
	if got := ClassifyTrend(history); got != TrendDeclining {
		t.Fatalf("ClassifyTrend=%q, attendu declining", got)
	}
}

func TestDetermineAffectedCenter_MostVotedWins(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog([]models.Feeling{
		feeling("A", models.CategoryGeneral, false, models.CenterHeart),
		feeling("B", models.CategoryGeneral, false, models.CenterHeart),
		feeling("C", models.CategoryGeneral, false, models.CenterThroat),
	})

	// Deux votes cœur contre un vote gorge
	got := DetermineAffectedCenter([]string{"A", "B", "C"}, catalog)
	if got != models.CenterHeart {
		t.Fatalf("center=%q, attendu heart", got)
	}
}

func TestDetermineAffectedCenter_FirstMaxWinsOnTie(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog([]models.Feeling{
		feeling("A", models.CategoryGeneral, false, models.CenterRoot),
		feeling("B", models.CategoryGeneral, false, models.CenterSpleen),
	})

	// Égalité un partout : le premier vote rencontré gagne
	got := DetermineAffectedCenter([]string{"A", "B"}, catalog)
	if got != models.CenterRoot {
		t.Fatalf("center=%q, attendu root", got)
	}
}

func TestDetermineAffectedCenter_NoVotesDefault(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(nil)
	if got := DetermineAffectedCenter([]string{"inconnu"}, catalog); got != models.CenterG {
		t.Fatalf("center=%q, attendu g_center", got)
	}
}

func TestMostFrequentCenter(t *testing.T) {
	t.Parallel()

	scans := []models.ScanRecord{
		{AffectedCenter: models.CenterSacral},
		{AffectedCenter: models.CenterHead},
		{AffectedCenter: models.CenterSacral},
	}
	if got := MostFrequentCenter(scans); got != models.CenterSacral {
		t.Fatalf("center=%q, attendu sacral", got)
	}
	if got := MostFrequentCenter(nil); got != models.CenterG {
		t.Fatalf("center=%q, attendu g_center par défaut", got)
	}
}

func TestComputeScan(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog([]models.Feeling{
		feeling("vivante", models.CategoryGeneral, true, models.CenterSacral),
		feeling("alignée", models.CategoryGeneral, true, models.CenterG),
		feeling("lourde", models.CategoryGeneral, false, models.CenterRoot),
		feeling("sereine", models.CategoryMental, true, models.CenterHead),
		feeling("dispersée", models.CategoryMental, false, models.CenterHead, models.CenterAjna),
	})

	comp := ComputeScan(catalog, map[string][]string{
		models.CategoryGeneral: {"vivante", "alignée"},
		models.CategoryMental:  {"dispersée"},
		// Catégorie au catalogue vide : ignorée par le garde-fou
		models.CategoryDigestive: {"quelconque"},
	}, models.TypeGenerator)

	if len(comp.CategoryScores) != 2 {
		t.Fatalf("CategoryScores=%v, attendu 2 catégories", comp.CategoryScores)
	}
	// general : (2/2)*100*(2/3) + (1-0)*100*(1/3) = 100
	if comp.CategoryScores[models.CategoryGeneral] != 100 {
		t.Fatalf("score general=%d, attendu 100", comp.CategoryScores[models.CategoryGeneral])
	}
	// mental : 0 + (1-1/1)*100*0.5 = 0
	if comp.CategoryScores[models.CategoryMental] != 0 {
		t.Fatalf("score mental=%d, attendu 0", comp.CategoryScores[models.CategoryMental])
	}
	if comp.OverallScore != 50 {
		t.Fatalf("overall=%d, attendu 50", comp.OverallScore)
	}
	// general porte deux ressentis cochés, mental un seul
	if comp.DominantCategory != models.CategoryGeneral {
		t.Fatalf("dominante=%q, attendu general", comp.DominantCategory)
	}
	if comp.PositiveCounts[models.CategoryGeneral] != 2 || comp.NegativeCounts[models.CategoryMental] != 1 {
		t.Fatalf("comptes inattendus: +%v -%v", comp.PositiveCounts, comp.NegativeCounts)
	}
}
