package services

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/ChristelOko/BarometreHED-sub001/config"
	"github.com/ChristelOko/BarometreHED-sub001/models"

	"github.com/go-redis/redis/v8"
)

const (
	maxHistoryTurns = 20
	maxPatterns     = 10

	memoryKeyPrefix = "aminata:memory:"
)

// MemoryStore : persistance clé/valeur de la mémoire conversationnelle,
// un blob par utilisateur
type MemoryStore interface {
	Load(ctx context.Context, userID string) (*models.ConversationMemory, error)
	Save(ctx context.Context, userID string, memory *models.ConversationMemory) error
}

// RedisMemoryStore : implémentation Redis du MemoryStore
type RedisMemoryStore struct {
	client *redis.Client
}

func NewRedisMemoryStore(client *redis.Client) *RedisMemoryStore {
	return &RedisMemoryStore{client: client}
}

// Load lit le blob mémoire. Clé absente ou blob corrompu : mémoire
// vierge, jamais d'erreur remontée pour ces deux cas.
func (s *RedisMemoryStore) Load(ctx context.Context, userID string) (*models.ConversationMemory, error) {
	raw, err := s.client.Get(ctx, memoryKeyPrefix+userID).Result()
	if err == redis.Nil {
		return models.NewConversationMemory(userID), nil
	}
	if err != nil {
		return nil, err
	}

	var memory models.ConversationMemory
	if err := json.Unmarshal([]byte(raw), &memory); err != nil {
		config.Logger.Warnw("blob mémoire corrompu, réinitialisation",
			"userID", userID,
			"error", err,
		)
		return models.NewConversationMemory(userID), nil
	}
	if memory.Preferences == nil {
		memory.Preferences = make(map[string]string)
	}
	memory.UserID = userID
	return &memory, nil
}

// Save écrase le blob précédent
func (s *RedisMemoryStore) Save(ctx context.Context, userID string, memory *models.ConversationMemory) error {
	raw, err := json.Marshal(memory)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, memoryKeyPrefix+userID, raw, 0).Err()
}

// InMemoryMemoryStore : MemoryStore en mémoire, pour les tests et le
// mode développement sans Redis
type InMemoryMemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewInMemoryMemoryStore() *InMemoryMemoryStore {
	return &InMemoryMemoryStore{blobs: make(map[string][]byte)}
}

func (s *InMemoryMemoryStore) Load(ctx context.Context, userID string) (*models.ConversationMemory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.blobs[userID]
	if !ok {
		return models.NewConversationMemory(userID), nil
	}
	var memory models.ConversationMemory
	if err := json.Unmarshal(raw, &memory); err != nil {
		return models.NewConversationMemory(userID), nil
	}
	if memory.Preferences == nil {
		memory.Preferences = make(map[string]string)
	}
	return &memory, nil
}

func (s *InMemoryMemoryStore) Save(ctx context.Context, userID string, memory *models.ConversationMemory) error {
	raw, err := json.Marshal(memory)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[userID] = raw
	return nil
}

// MemoryService : suivi conversationnel borné et persisté.
// La mutation SaveTurn n'est pas transactionnelle entre l'élagage de
// l'historique et l'écriture du blob ; consistance faible assumée,
// un seul écrivain par utilisateur.
type MemoryService struct {
	store     MemoryStore
	lexicon   Lexicon
	mu        sync.Mutex
	observers []func(userID string)
}

func NewMemoryService(store MemoryStore) *MemoryService {
	return NewMemoryServiceWithLexicon(store, DefaultLexicon)
}

func NewMemoryServiceWithLexicon(store MemoryStore, lexicon Lexicon) *MemoryService {
	return &MemoryService{store: store, lexicon: lexicon}
}

// Subscribe enregistre un observateur notifié après chaque sauvegarde
func (s *MemoryService) Subscribe(fn func(userID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// SaveTurn analyse la réponse, l'ajoute à l'historique (FIFO, 20 max),
// met à jour les patterns émotionnels (top 10) et persiste le tout.
func (s *MemoryService) SaveTurn(ctx context.Context, userID, userResponse, category string, selectedFeelings []string, score int) (models.ConversationTurn, error) {
	analysis := AnalyzeUserResponse(userResponse, s.lexicon)

	turn := models.ConversationTurn{
		Timestamp:        time.Now().UTC(),
		Category:         category,
		UserResponse:     userResponse,
		Sentiment:        analysis.Sentiment,
		EmotionalTone:    analysis.EmotionalTone,
		EnergyLevel:      analysis.EnergyLevel,
		SelectedFeelings: selectedFeelings,
		Score:            score,
	}

	memory, err := s.store.Load(ctx, userID)
	if err != nil {
		// Stockage injoignable : on repart d'une mémoire vierge plutôt
		// que de perdre le tour
		memory = models.NewConversationMemory(userID)
	}

	memory.ConversationHistory = append(memory.ConversationHistory, turn)
	if len(memory.ConversationHistory) > maxHistoryTurns {
		memory.ConversationHistory = memory.ConversationHistory[len(memory.ConversationHistory)-maxHistoryTurns:]
	}

	for _, tone := range turn.EmotionalTone {
		memory.EmotionalPatterns = incrementPattern(memory.EmotionalPatterns, tone)
	}
	sort.SliceStable(memory.EmotionalPatterns, func(i, j int) bool {
		return memory.EmotionalPatterns[i].Frequency > memory.EmotionalPatterns[j].Frequency
	})
	if len(memory.EmotionalPatterns) > maxPatterns {
		memory.EmotionalPatterns = memory.EmotionalPatterns[:maxPatterns]
	}

	if err := s.store.Save(ctx, userID, memory); err != nil {
		return turn, err
	}

	s.notify(userID)
	return turn, nil
}

func incrementPattern(patterns []models.EmotionalPattern, tone string) []models.EmotionalPattern {
	for i := range patterns {
		if patterns[i].Tone == tone {
			patterns[i].Frequency++
			return patterns
		}
	}
	return append(patterns, models.EmotionalPattern{Tone: tone, Frequency: 1})
}

func (s *MemoryService) notify(userID string) {
	s.mu.Lock()
	observers := make([]func(string), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(userID)
	}
}

// Summary agrège la mémoire pour le tableau de bord.
// Retourne nil quand l'historique est vide : l'appelant n'affiche rien.
func (s *MemoryService) Summary(ctx context.Context, userID string) (*models.MemorySummary, error) {
	memory, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(memory.ConversationHistory) == 0 {
		return nil, nil
	}

	dominant := make([]string, 0, 3)
	for _, p := range memory.EmotionalPatterns {
		if len(dominant) == 3 {
			break
		}
		dominant = append(dominant, p.Tone)
	}

	energySum := 0
	for _, turn := range memory.ConversationHistory {
		energySum += energyValue(turn.EnergyLevel)
	}

	return &models.MemorySummary{
		TotalConversations:  len(memory.ConversationHistory),
		DominantEmotions:    dominant,
		AverageEnergyLevel:  float64(energySum) / float64(len(memory.ConversationHistory)),
		PreferredCategories: topCategories(memory.ConversationHistory, 3),
	}, nil
}

// RecentWindow retourne les n derniers tours, du plus ancien au plus
// récent, pour le contexte du prompt
func (s *MemoryService) RecentWindow(ctx context.Context, userID string, n int) []models.ConversationTurn {
	memory, err := s.store.Load(ctx, userID)
	if err != nil || len(memory.ConversationHistory) == 0 {
		return nil
	}
	history := memory.ConversationHistory
	if len(history) > n {
		history = history[len(history)-n:]
	}
	return history
}

func energyValue(level string) int {
	switch level {
	case models.EnergyLow:
		return 1
	case models.EnergyHigh:
		return 3
	default:
		return 2
	}
}

// topCategories : catégories les plus fréquentes de l'historique,
// départage au premier maximum dans l'ordre d'apparition
func topCategories(history []models.ConversationTurn, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, turn := range history {
		if turn.Category == "" {
			continue
		}
		if counts[turn.Category] == 0 {
			order = append(order, turn.Category)
		}
		counts[turn.Category]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}
