package controllers

import (
	"net/http"
	"time"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
	"github.com/ChristelOko/BarometreHED-sub001/services"
	"github.com/ChristelOko/BarometreHED-sub001/utils"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	catalog  *services.Catalog
	guidance *services.GuidanceService
	memory   *services.MemoryService
}

func NewScanController(catalog *services.Catalog, guidance *services.GuidanceService, memory *services.MemoryService) *ScanController {
	return &ScanController{
		catalog:  catalog,
		guidance: guidance,
		memory:   memory,
	}
}

// SubmitScan déroule le flux complet d'un scan : scores par catégorie,
// agrégation, guidance, persistance, puis mémorisation du tour
func (sc *ScanController) SubmitScan(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("utilisatrice introuvable", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "utilisatrice introuvable"})
		return
	}

	var req models.ScanSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	computation := services.ComputeScan(sc.catalog, req.Selections, user.HDType)
	if len(computation.CategoryScores) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucune catégorie exploitable dans ce scan"})
		return
	}

	guidance := sc.guidance.Compose(
		computation.OverallScore,
		computation.AffectedCenter,
		computation.SelectedFeelings,
		user.HDType,
	)

	scan := models.ScanRecord{
		ID:               utils.GenerateID(),
		UserID:           user.ID,
		Date:             req.Date,
		OverallScore:     computation.OverallScore,
		CategoryScores:   computation.CategoryScores,
		AffectedCenter:   computation.AffectedCenter,
		SelectedFeelings: computation.SelectedFeelings,
		Category:         computation.DominantCategory,
		CreatedAt:        time.Now().UTC(),
	}

	if err := config.DB.Create(&scan).Error; err != nil {
		config.Logger.Errorw("sauvegarde du scan échouée", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sauvegarde du scan échouée, résultats affichés sans historique"})
		return
	}

	// Tendance calculée sur l'historique incluant ce scan
	trend := sc.recentTrend(user.ID)

	// Mémorisation du tour : un échec n'invalide pas le scan
	if _, err := sc.memory.SaveTurn(c, user.ID, req.Note, computation.DominantCategory,
		computation.SelectedFeelings, computation.OverallScore); err != nil {
		config.Logger.Warnw("mémoire conversationnelle non sauvegardée",
			"error", err,
			"uid", uid,
		)
	}

	c.JSON(http.StatusOK, models.ScanResponse{
		ID:             scan.ID,
		Date:           scan.Date,
		OverallScore:   scan.OverallScore,
		CategoryScores: scan.CategoryScores,
		AffectedCenter: scan.AffectedCenter,
		Category:       scan.Category,
		Trend:          trend,
		Guidance:       guidance,
	})
}

// recentTrend classe la tendance sur les derniers scans, du plus récent
// au plus ancien
func (sc *ScanController) recentTrend(userID string) string {
	var scans []models.ScanRecord
	if err := config.DB.Where("user_id = ?", userID).
		Order("date desc").Limit(8).Find(&scans).Error; err != nil {
		config.Logger.Warnw("historique indisponible pour la tendance", "error", err, "uid", userID)
		return services.TrendStable
	}
	scores := make([]int, len(scans))
	for i, s := range scans {
		scores[i] = s.OverallScore
	}
	return services.ClassifyTrend(scores)
}

// GetScans retourne l'historique des scans depuis une date
func (sc *ScanController) GetScans(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	sinceStr := c.Query("since")
	var since time.Time
	var err error

	if sinceStr != "" {
		since, err = time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "format de date invalide"})
			return
		}
	} else {
		// Trois mois d'historique par défaut
		since = time.Now().AddDate(0, -3, 0)
	}

	var scans []models.ScanRecord
	if err := config.DB.Where("user_id = ? AND date > ?", uid, since).
		Order("date desc").Find(&scans).Error; err != nil {
		config.Logger.Errorw("lecture de l'historique échouée", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lecture de l'historique échouée"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans})
}
