package controllers

import (
	"net/http"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"

	"github.com/gin-gonic/gin"
)

type UserController struct{}

// GetUser retourne le profil de l'utilisatrice connectée
func (uc *UserController) GetUser(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "utilisatrice introuvable"})
		return
	}

	c.JSON(http.StatusOK, user)
}
