package controllers

import (
	"net/http"
	"time"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
	"github.com/ChristelOko/BarometreHED-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

// GuestSession ouvre une session invitée : crée l'utilisatrice si besoin
// et émet un jeton. Les fournisseurs OAuth restent hors périmètre.
func (ac *AuthController) GuestSession(c *gin.Context) {
	var req models.GuestSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		ID:        utils.GenerateID(),
		Name:      req.Name,
		Email:     req.Email,
		HDType:    req.HDType,
		CreatedAt: time.Now().UTC(),
	}

	// Une adresse connue retrouve son compte, sinon création
	if req.Email != "" {
		var existing models.User
		if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
			existing.HDType = req.HDType
			if req.Name != "" {
				existing.Name = req.Name
			}
			if err := config.DB.Save(&existing).Error; err != nil {
				config.Logger.Errorw("mise à jour utilisatrice échouée", "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "ouverture de session échouée"})
				return
			}
			user = existing
		} else if err := config.DB.Create(&user).Error; err != nil {
			config.Logger.Errorw("création utilisatrice échouée", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ouverture de session échouée"})
			return
		}
	} else if err := config.DB.Create(&user).Error; err != nil {
		config.Logger.Errorw("création utilisatrice échouée", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ouverture de session échouée"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("émission du jeton échouée", "error", err, "uid", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ouverture de session échouée"})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{
		Token: token,
		User:  user,
	})
}
