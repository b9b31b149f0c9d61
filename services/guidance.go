package services

import (
	"fmt"
	"sort"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"

	"gorm.io/gorm"
)

// Tonalités émotionnelles d'un scan
const (
	ToneScanPositive    = "positive"
	ToneScanMixed       = "mixed"
	ToneScanChallenging = "challenging"
)

// TemplateSource : recherche d'une guidance de base dans la base de
// connaissances externe. L'échec est une variante normale du résultat,
// jamais propagé au-delà du composeur.
type TemplateSource interface {
	Find(hdType, scoreRange, center string) (*models.GuidanceTemplate, error)
}

// GormTemplateSource : TemplateSource adossé à la table guidance_templates
type GormTemplateSource struct {
	db *gorm.DB
}

func NewGormTemplateSource(db *gorm.DB) *GormTemplateSource {
	return &GormTemplateSource{db: db}
}

func (s *GormTemplateSource) Find(hdType, scoreRange, center string) (*models.GuidanceTemplate, error) {
	var tpl models.GuidanceTemplate
	err := s.db.Where("hd_type = ? AND score_range = ? AND center = ?",
		hdType, scoreRange, center).First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GuidanceService compose la guidance d'un scan : guidance de base
// (externe ou repli local), analyse des ressentis, mantra et insights
type GuidanceService struct {
	templates TemplateSource
	catalog   *Catalog
}

func NewGuidanceService(templates TemplateSource, catalog *Catalog) *GuidanceService {
	return &GuidanceService{templates: templates, catalog: catalog}
}

// Compose produit la guidance complète. Aucun échec ne remonte :
// la recherche externe ratée bascule sur le gabarit local.
func (s *GuidanceService) Compose(overallScore int, center string, selectedNames []string, hdType string) models.GuidanceResponse {
	scoreRange := ScoreRange(overallScore)

	tpl, err := s.templates.Find(hdType, scoreRange, center)
	if err != nil {
		config.Logger.Debugw("guidance externe absente, gabarit local",
			"hdType", hdType,
			"scoreRange", scoreRange,
			"center", center,
		)
		tpl = fallbackTemplate(overallScore, center)
	}

	tone := classifyScanTone(selectedNames, s.catalog)
	dominant := s.dominantCenters(selectedNames, 3)

	guidanceText := tpl.GuidanceText + " " + toneFiller(tone)
	inhale, exhale := mantraForTone(tone)

	return models.GuidanceResponse{
		GuidanceText:        guidanceText,
		MantraInhale:        inhale,
		MantraExhale:        exhale,
		RealignmentExercise: tpl.RealignmentExercise,
		Insights:            buildInsights(tone, dominant),
		EmotionalTone:       tone,
	}
}

// ScoreRange : tranche de score servant de clé de recherche
func ScoreRange(score int) string {
	switch {
	case score < 40:
		return models.ScoreRangeLow
	case score < 70:
		return models.ScoreRangeMedium
	default:
		return models.ScoreRangeHigh
	}
}

// classifyScanTone : positive si les positifs dépassent le double des
// négatifs, challenging dans le cas inverse, mixed sinon
func classifyScanTone(selectedNames []string, catalog *Catalog) string {
	positiveCount := 0
	negativeCount := 0
	for _, name := range selectedNames {
		f, ok := catalog.Lookup(name)
		if !ok {
			continue
		}
		if f.IsPositive {
			positiveCount++
		} else {
			negativeCount++
		}
	}

	switch {
	case positiveCount > 2*negativeCount && positiveCount > 0:
		return ToneScanPositive
	case negativeCount > 2*positiveCount && negativeCount > 0:
		return ToneScanChallenging
	default:
		return ToneScanMixed
	}
}

// dominantCenters : les n centres les plus votés par la sélection,
// même règle de vote que DetermineAffectedCenter
func (s *GuidanceService) dominantCenters(selectedNames []string, n int) []string {
	votes := make(map[string]int)
	var order []string
	for _, name := range selectedNames {
		f, ok := s.catalog.Lookup(name)
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
	sort.SliceStable(order, func(i, j int) bool {
		return votes[order[i]] > votes[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// fallbackTemplate : gabarit local par bande de score et centre,
// sans variation de type HD
func fallbackTemplate(score int, center string) *models.GuidanceTemplate {
	var text string
	switch ScoreRange(score) {
	case models.ScoreRangeLow:
		text = fmt.Sprintf("Ton énergie demande une attention particulière aujourd'hui, surtout autour de %s. Ralentis, ton corps te parle.", centerLabel(center))
	case models.ScoreRangeMedium:
		text = fmt.Sprintf("Ton énergie est en mouvement, avec une sensibilité autour de %s. Observe ce qui te nourrit et ce qui te coûte.", centerLabel(center))
	default:
		text = fmt.Sprintf("Ton énergie est belle et disponible, portée par %s. Profite de cet élan pour ce qui compte vraiment.", centerLabel(center))
	}
	return &models.GuidanceTemplate{
		GuidanceText:        text,
		RealignmentExercise: "Pose une main sur ton ventre, l'autre sur ton cœur, et respire profondément pendant deux minutes.",
	}
}

// centerLabel : libellé français d'un centre
func centerLabel(center string) string {
	switch center {
	case models.CenterHead:
		return "la tête"
	case models.CenterAjna:
		return "l'ajna"
	case models.CenterThroat:
		return "la gorge"
	case models.CenterG:
		return "le centre G"
	case models.CenterHeart:
		return "le cœur"
	case models.CenterSacral:
		return "le sacral"
	case models.CenterSolarPlexus:
		return "le plexus solaire"
	case models.CenterSpleen:
		return "la rate"
	case models.CenterRoot:
		return "la racine"
	default:
		return "ton centre"
	}
}

// toneFiller : phrase de liaison ajoutée à la guidance de base
func toneFiller(tone string) string {
	switch tone {
	case ToneScanPositive:
		return "Ce que tu ressens de lumineux aujourd'hui mérite d'être célébré."
	case ToneScanChallenging:
		return "Ce que tu traverses est réel, et le nommer est déjà un pas vers toi."
	default:
		return "Accueille les deux faces de ce que tu vis, elles font partie du même mouvement."
	}
}

// mantraForTone : paire de mantras respiratoires, fixée par tonalité
func mantraForTone(tone string) (inhale, exhale string) {
	switch tone {
	case ToneScanPositive:
		return "J'accueille cette belle énergie", "Je la laisse rayonner autour de moi"
	case ToneScanChallenging:
		return "J'accueille ce qui est là", "Je relâche ce qui ne m'appartient pas"
	default:
		return "Je respire avec ce qui me traverse", "Je fais de la place à ce qui vient"
	}
}

// buildInsights : jusqu'à trois insights, choisis par tonalité puis par
// centre dominant dans une table fixe
func buildInsights(tone string, dominantCenters []string) []string {
	insights := []string{toneInsight(tone)}
	for _, center := range dominantCenters {
		if len(insights) == 3 {
			break
		}
		if insight, ok := centerInsights[center]; ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

func toneInsight(tone string) string {
	switch tone {
	case ToneScanPositive:
		return "Ton scan penche nettement du côté des ressentis porteurs : note ce qui a nourri cette énergie."
	case ToneScanChallenging:
		return "Les ressentis exigeants dominent ce scan : c'est un appel à la douceur, pas une faute."
	default:
		return "Ton scan mélange ressentis porteurs et exigeants : ton énergie cherche son équilibre."
	}
}

var centerInsights = map[string]string{
	models.CenterHead:        "Beaucoup de mental dans ce scan : offre-toi des moments sans questions à résoudre.",
	models.CenterAjna:        "Ton ajna travaille fort : laisse certaines certitudes rester ouvertes.",
	models.CenterThroat:      "Ta gorge est sollicitée : qu'as-tu besoin d'exprimer et à qui ?",
	models.CenterG:           "Ton centre G est touché : la question de direction demande de la patience, pas de la force.",
	models.CenterHeart:       "Ton cœur est en jeu : vérifie les promesses que tu t'imposes.",
	models.CenterSacral:      "Ton sacral parle : distingue ce qui te fait répondre « oui » de ce que tu subis.",
	models.CenterSolarPlexus: "Ton plexus traverse une vague émotionnelle : aucune décision au sommet ni au creux.",
	models.CenterSpleen:      "Ta rate murmure : écoute ces intuitions brèves avant qu'elles ne s'effacent.",
	models.CenterRoot:        "Ta racine est sous pression : le stress présent n'exige pas de réponse immédiate.",
}
