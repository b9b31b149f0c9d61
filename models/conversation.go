package models

import "time"

// Sentiments dérivés par l'analyseur heuristique
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
	SentimentMixed    = "mixed"
)

// Niveaux d'énergie
const (
	EnergyHigh   = "high"
	EnergyMedium = "medium"
	EnergyLow    = "low"
)

// Niveaux d'urgence
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
	UrgencyLow    = "low"
)

// ConversationTurn : un échange mémorisé du chat Aminata
type ConversationTurn struct {
	Timestamp        time.Time `json:"timestamp"`
	Category         string    `json:"category"`
	UserResponse     string    `json:"userResponse"`
	Sentiment        string    `json:"sentiment"`
	EmotionalTone    []string  `json:"emotionalTone"`
	EnergyLevel      string    `json:"energyLevel"`
	SelectedFeelings []string  `json:"selectedFeelings"`
	Score            int       `json:"score"`
}

// EmotionalPattern : fréquence d'une tonalité émotionnelle sur l'historique
type EmotionalPattern struct {
	Tone      string `json:"tone"`
	Frequency int    `json:"frequency"`
}

// ConversationMemory : mémoire conversationnelle d'un utilisateur.
// Sérialisée en un seul blob JSON dans Redis, clé par utilisateur.
// Historique borné à 20 tours (éviction FIFO), patterns bornés au top 10.
type ConversationMemory struct {
	UserID              string             `json:"userId"`
	ConversationHistory []ConversationTurn `json:"conversationHistory"`
	EmotionalPatterns   []EmotionalPattern `json:"emotionalPatterns"`
	Preferences         map[string]string  `json:"preferences"`
}

// NewConversationMemory retourne une mémoire vierge
func NewConversationMemory(userID string) *ConversationMemory {
	return &ConversationMemory{
		UserID:      userID,
		Preferences: make(map[string]string),
	}
}

// MemorySummary : statistiques agrégées consommées par le tableau de bord
type MemorySummary struct {
	TotalConversations  int      `json:"totalConversations"`
	DominantEmotions    []string `json:"dominantEmotions"`
	AverageEnergyLevel  float64  `json:"averageEnergyLevel"`
	PreferredCategories []string `json:"preferredCategories"`
}
