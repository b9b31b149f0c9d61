package controllers

import (
	"net/http"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
	"github.com/ChristelOko/BarometreHED-sub001/services"

	"github.com/gin-gonic/gin"
)

type FeelingController struct {
	catalog *services.Catalog
}

func NewFeelingController(catalog *services.Catalog) *FeelingController {
	return &FeelingController{catalog: catalog}
}

// GetFeelings sert le catalogue de ressentis, filtré pour le type HD de
// l'utilisatrice et optionnellement par catégorie
func (fc *FeelingController) GetFeelings(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "catégorie inconnue"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "utilisatrice introuvable"})
		return
	}

	feelings := fc.catalog.ForUser(user.HDType, category)
	if feelings == nil {
		feelings = []models.Feeling{}
	}

	c.JSON(http.StatusOK, gin.H{"feelings": feelings})
}
