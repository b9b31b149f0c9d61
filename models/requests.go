package models

import (
	"fmt"
	"time"
)

// ScanSubmitRequest : soumission d'un scan, sélections par catégorie
type ScanSubmitRequest struct {
	Date       time.Time           `json:"date"`
	Selections map[string][]string `json:"selections" binding:"required"` // catégorie -> noms de ressentis cochés
	Note       string              `json:"note"` // texte libre, analysé par Aminata
}

func (r *ScanSubmitRequest) Validate() error {
	if len(r.Selections) == 0 {
		return fmt.Errorf("au moins une catégorie doit être renseignée")
	}
	for category := range r.Selections {
		if !IsValidCategory(category) {
			return fmt.Errorf("catégorie inconnue: %s", category)
		}
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}
	r.Date = r.Date.UTC()
	return nil
}

// ChatRequest : message envoyé à Aminata
type ChatRequest struct {
	Message  string `json:"message" binding:"required"`
	Category string `json:"category"` // catégorie de contexte, optionnelle
}

func (r *ChatRequest) Validate() error {
	if r.Category != "" && !IsValidCategory(r.Category) {
		return fmt.Errorf("catégorie inconnue: %s", r.Category)
	}
	return nil
}

// GuestSessionRequest : ouverture de session invitée
type GuestSessionRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	HDType string `json:"hdType" binding:"required"`
}

func (r *GuestSessionRequest) Validate() error {
	if !IsValidHDType(r.HDType) {
		return fmt.Errorf("type HD inconnu: %s", r.HDType)
	}
	return nil
}

// ReminderRequest : création ou mise à jour d'un rappel
type ReminderRequest struct {
	SendHour   int    `json:"sendHour"`
	SendMinute int    `json:"sendMinute"`
	Timezone   string `json:"timezone"`
}

func (r *ReminderRequest) Validate() error {
	if r.SendHour < 0 || r.SendHour > 23 {
		return fmt.Errorf("heure invalide: %d", r.SendHour)
	}
	if r.SendMinute < 0 || r.SendMinute > 59 {
		return fmt.Errorf("minute invalide: %d", r.SendMinute)
	}
	if r.Timezone == "" {
		r.Timezone = "Europe/Paris"
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("fuseau horaire invalide: %s", r.Timezone)
	}
	return nil
}
