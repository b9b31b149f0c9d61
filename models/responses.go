package models

import "time"

// GuidanceResponse : guidance composée pour un scan
type GuidanceResponse struct {
	GuidanceText        string   `json:"guidanceText"`
	MantraInhale        string   `json:"mantraInhale"`
	MantraExhale        string   `json:"mantraExhale"`
	RealignmentExercise string   `json:"realignmentExercise,omitempty"`
	Insights            []string `json:"insights"`
	EmotionalTone       string   `json:"emotionalTone"`
}

// ScanResponse : résultat complet d'un scan soumis
type ScanResponse struct {
	ID             string           `json:"id"`
	Date           time.Time        `json:"date"`
	OverallScore   int              `json:"overallScore"`
	CategoryScores map[string]int   `json:"categoryScores"`
	AffectedCenter string           `json:"affectedCenter"`
	Category       string           `json:"category"`
	Trend          string           `json:"trend"`
	Guidance       GuidanceResponse `json:"guidance"`
}

// DashboardResponse : synthèse de l'historique pour le tableau de bord
type DashboardResponse struct {
	TotalScans         int            `json:"totalScans"`
	AverageScore       int            `json:"averageScore"`
	Trend              string         `json:"trend"`
	MostFrequentCenter string         `json:"mostFrequentCenter"`
	MemorySummary      *MemorySummary `json:"memorySummary"` // null si aucun échange enregistré
}

// SessionResponse : session invitée ouverte
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
