package services

import (
	"errors"
	"math"

	"github.com/ChristelOko/BarometreHED-sub001/models"
)

// NeutralScore : score de repli quand une catégorie ne peut pas être calculée
const NeutralScore = 50

// ErrEmptyCatalog : la catégorie n'a aucun ressenti défini.
// Erreur de configuration, à garder hors du moteur de score.
var ErrEmptyCatalog = errors.New("catalogue vide pour cette catégorie")

// Tendances de l'historique des scores
const (
	TrendImproving = "improving"
	TrendStable    = "stable"
	TrendDeclining = "declining"
)

// ComputeCategoryScore convertit une sélection de ressentis en score 0-100.
//
// Chaque pool pèse proportionnellement à sa taille dans la catégorie :
// cocher des positifs monte le score à hauteur du poids du pool positif,
// cocher des négatifs entame le poids du pool négatif. Une sélection vide
// vaut donc round(100 * poidsNégatif) et non 0 — comportement historique
// du produit, conservé tel quel.
func ComputeCategoryScore(selected map[string]bool, positive, negative []models.Feeling) (int, error) {
	totalPossible := len(positive) + len(negative)
	if totalPossible == 0 {
		return 0, ErrEmptyCatalog
	}

	positiveCount := countSelected(selected, positive)
	negativeCount := countSelected(selected, negative)

	positiveWeight := float64(len(positive)) / float64(totalPossible)
	negativeWeight := float64(len(negative)) / float64(totalPossible)

	var positiveScore float64
	if len(positive) > 0 {
		positiveScore = float64(positiveCount) / float64(len(positive)) * 100 * positiveWeight
	}

	negativeScore := 100 * negativeWeight
	if len(negative) > 0 {
		negativeScore = (1 - float64(negativeCount)/float64(len(negative))) * 100 * negativeWeight
	}

	return int(math.Round(positiveScore + negativeScore)), nil
}

func countSelected(selected map[string]bool, pool []models.Feeling) int {
	count := 0
	for _, f := range pool {
		if selected[f.Name] {
			count++
		}
	}
	return count
}

// OverallScore : moyenne arrondie des scores de catégorie, 50 si vide
func OverallScore(categoryScores []int) int {
	if len(categoryScores) == 0 {
		return NeutralScore
	}
	sum := 0
	for _, s := range categoryScores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(categoryScores))))
}

// DetermineAffectedCenter élit le centre le plus touché par une sélection.
// Un ressenti vote pour chacun de ses centres. Égalités départagées au
// premier maximum rencontré, dans l'ordre d'apparition des votes.
func DetermineAffectedCenter(selectedNames []string, catalog *Catalog) string {
	votes := make(map[string]int)
	var order []string

	for _, name := range selectedNames {
		f, ok := catalog.Lookup(name)
		if !ok {
			continue
		}
		for _, center := range f.AffectedCenters {
			if votes[center] == 0 {
				order = append(order, center)
			}
			votes[center]++
		}
	}

	if len(order) == 0 {
		return models.CenterG
	}

	best := order[0]
	for _, center := range order[1:] {
		if votes[center] > votes[best] {
			best = center
		}
	}
	return best
}

// ClassifyTrend classe un historique de scores, du plus récent au plus
// ancien. Moins de 4 points : toujours stable. Sinon, écart entre la
// moyenne de la moitié récente et celle de la moitié ancienne.
func ClassifyTrend(history []int) string {
	if len(history) < 4 {
		return TrendStable
	}

	mid := len(history) / 2
	recentMean := mean(history[:mid])
	olderMean := mean(history[mid:])

	difference := recentMean - olderMean
	switch {
	case difference > 5:
		return TrendImproving
	case difference < -5:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []int) float64 {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// MostFrequentCenter : mode du centre affecté sur l'historique de scans,
// premier maximum gagnant en une seule passe
func MostFrequentCenter(scans []models.ScanRecord) string {
	if len(scans) == 0 {
		return models.CenterG
	}
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, scan := range scans {
		counts[scan.AffectedCenter]++
		if counts[scan.AffectedCenter] > bestCount {
			best = scan.AffectedCenter
			bestCount = counts[scan.AffectedCenter]
		}
	}
	return best
}

// ScanComputation : résultat consolidé d'un scan complet
type ScanComputation struct {
	CategoryScores   map[string]int
	PositiveCounts   map[string]int
	NegativeCounts   map[string]int
	OverallScore     int
	AffectedCenter   string
	DominantCategory string
	SelectedFeelings []string
}

// ComputeScan déroule le moteur de score sur toutes les catégories
// renseignées, puis agrège. Les catégories au catalogue vide sont
// ignorées (garde-fou EmptyCatalog), celles absentes de la sélection
// aussi. La catégorie dominante est celle qui porte le plus de
// ressentis cochés, première gagnante dans l'ordre des catégories.
func ComputeScan(catalog *Catalog, selections map[string][]string, hdType string) ScanComputation {
	comp := ScanComputation{
		CategoryScores: make(map[string]int),
		PositiveCounts: make(map[string]int),
		NegativeCounts: make(map[string]int),
	}

	var scores []int
	dominantCount := -1

	for _, category := range models.AllCategories {
		names, ok := selections[category]
		if !ok {
			continue
		}

		selected := make(map[string]bool, len(names))
		for _, n := range names {
			selected[n] = true
		}

		positive, negative := catalog.Category(category, hdType)
		score, err := ComputeCategoryScore(selected, positive, negative)
		if err != nil {
			// Catégorie sans catalogue : on l'ignore plutôt que de
			// laisser un zéro artificiel tirer la moyenne vers le bas
			continue
		}

		comp.CategoryScores[category] = score
		comp.PositiveCounts[category] = countSelected(selected, positive)
		comp.NegativeCounts[category] = countSelected(selected, negative)
		comp.SelectedFeelings = append(comp.SelectedFeelings, names...)
		scores = append(scores, score)

		if len(names) > dominantCount {
			comp.DominantCategory = category
			dominantCount = len(names)
		}
	}

	comp.OverallScore = OverallScore(scores)
	comp.AffectedCenter = DetermineAffectedCenter(comp.SelectedFeelings, catalog)
	return comp
}
