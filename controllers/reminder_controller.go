package controllers

import (
	"net/http"
	"time"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
	"github.com/ChristelOko/BarometreHED-sub001/utils"

	"github.com/gin-gonic/gin"
)

type ReminderController struct{}

// GetReminders liste les rappels de l'utilisatrice
func (rc *ReminderController) GetReminders(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	var reminders []models.Reminder
	if err := config.DB.Where("user_id = ?", uid).Find(&reminders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lecture des rappels échouée"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// CreateReminder enregistre un rappel quotidien
func (rc *ReminderController) CreateReminder(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reminder := models.Reminder{
		ID:         utils.GenerateID(),
		UserID:     uid.(string),
		SendHour:   req.SendHour,
		SendMinute: req.SendMinute,
		Timezone:   req.Timezone,
		Active:     true,
		CreatedAt:  time.Now().UTC(),
	}

	if err := config.DB.Create(&reminder).Error; err != nil {
		config.Logger.Errorw("création du rappel échouée", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "création du rappel échouée"})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// DeleteReminder désactive un rappel
func (rc *ReminderController) DeleteReminder(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	id := c.Param("id")
	result := config.DB.Model(&models.Reminder{}).
		Where("id = ? AND user_id = ?", id, uid).
		Update("active", false)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "suppression du rappel échouée"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "rappel introuvable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "rappel désactivé"})
}

// DueReminders retourne les rappels à envoyer maintenant et les marque
// comme envoyés. Appelé en interne par le dispatcher de notifications.
func (rc *ReminderController) DueReminders(c *gin.Context) {
	now := time.Now().UTC()

	var reminders []models.Reminder
	if err := config.DB.Where("active = ?", true).Find(&reminders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lecture des rappels échouée"})
		return
	}

	var due []models.Reminder
	for _, r := range reminders {
		loc, err := time.LoadLocation(r.Timezone)
		if err != nil {
			loc = time.UTC
		}
		local := now.In(loc)

		// Pas encore l'heure locale du rappel
		if local.Hour() < r.SendHour || (local.Hour() == r.SendHour && local.Minute() < r.SendMinute) {
			continue
		}
		// Déjà envoyé pour la journée locale en cours
		if r.LastSentAt != nil {
			lastLocal := r.LastSentAt.In(loc)
			if lastLocal.Year() == local.Year() && lastLocal.YearDay() == local.YearDay() {
				continue
			}
		}
		due = append(due, r)
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i := range due {
		sent := now
		due[i].LastSentAt = &sent
		if err := tx.Model(&models.Reminder{}).Where("id = ?", due[i].ID).
			Update("last_sent_at", sent).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "marquage des rappels échoué"})
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "marquage des rappels échoué"})
		return
	}

	if due == nil {
		due = []models.Reminder{}
	}
	c.JSON(http.StatusOK, gin.H{"reminders": due})
}
