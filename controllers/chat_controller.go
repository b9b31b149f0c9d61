package controllers

import (
	"net/http"
	"strings"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"
	"github.com/ChristelOko/BarometreHED-sub001/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	aminata *services.AminataService
	memory  *services.MemoryService
}

func NewChatController(aminata *services.AminataService, memory *services.MemoryService) *ChatController {
	return &ChatController{
		aminata: aminata,
		memory:  memory,
	}
}

// SendMessage répond en flux au message envoyé à Aminata, puis mémorise
// le tour de conversation
func (cc *ChatController) SendMessage(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		config.Logger.Errorw("identifiant utilisateur absent")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("utilisatrice introuvable", "error", err, "uid", uid)
		ctx.JSON(http.StatusNotFound, gin.H{"error": "utilisatrice introuvable"})
		return
	}

	var req models.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "requête invalide: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// En-têtes de flux SSE
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("X-Accel-Buffering", "no")

	stream := cc.aminata.StreamReply(ctx, user, req.Message, req.Category)

	var fullResponse strings.Builder
	for chunk := range stream {
		if _, err := ctx.Writer.Write([]byte(chunk)); err != nil {
			config.Logger.Warnw("écriture du flux interrompue", "error", err, "uid", uid)
			return
		}
		ctx.Writer.Flush()
		fullResponse.WriteString(chunk)
	}

	// Mémorisation du tour, score neutre hors scan
	if _, err := cc.memory.SaveTurn(ctx, user.ID, req.Message, req.Category, nil, services.NeutralScore); err != nil {
		config.Logger.Warnw("mémoire conversationnelle non sauvegardée", "error", err, "uid", uid)
	}
}

// GetMemorySummary expose la synthèse de la mémoire d'Aminata.
// summary vaut null tant qu'aucun échange n'est enregistré.
func (cc *ChatController) GetMemorySummary(ctx *gin.Context) {
	uid, exists := ctx.Get("uid")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "identifiant utilisateur absent"})
		return
	}

	summary, err := cc.memory.Summary(ctx, uid.(string))
	if err != nil {
		config.Logger.Errorw("lecture de la mémoire échouée", "error", err, "uid", uid)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "lecture de la mémoire échouée"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"summary": summary})
}
