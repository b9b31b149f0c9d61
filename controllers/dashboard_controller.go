package controllers

import (
	"net/http"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
	"github.com/ChristelOko/BarometreHED-sub001/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	memory *services.MemoryService
}

func NewDashboardController(memory *services.MemoryService) *DashboardController {
	return &DashboardController{memory: memory}
}

// GetDashboard agrège l'historique : tendance, centre le plus touché,
// moyenne et synthèse de la mémoire conversationnelle
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	var scans []models.ScanRecord
	if err := config.DB.Where("user_id = ?", uid).
		Order("date desc").Limit(30).Find(&scans).Error; err != nil {
		config.Logger.Errorw("lecture de l'historique échouée", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lecture de l'historique échouée"})
		return
	}

	scores := make([]int, len(scans))
	for i, s := range scans {
		scores[i] = s.OverallScore
	}

	// La synthèse mémoire est optionnelle : son absence n'est pas une erreur
	summary, err := dc.memory.Summary(c, uid.(string))
	if err != nil {
		config.Logger.Warnw("synthèse mémoire indisponible", "error", err, "uid", uid)
		summary = nil
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		TotalScans:         len(scans),
		AverageScore:       services.OverallScore(scores),
		Trend:              services.ClassifyTrend(scores),
		MostFrequentCenter: services.MostFrequentCenter(scans),
		MemorySummary:      summary,
	})
}
