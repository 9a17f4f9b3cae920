// service/game_manager.go
package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mc4/chess-ai/internal/model"
	"github.com/mc4/chess-ai/internal/ws"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Config struct {
	// MatchInterval is how often the matchmaking queue is polled.
	MatchInterval time.Duration
}

func DefaultConfig() Config {
	return Config{MatchInterval: time.Second}
}

type GameManager struct {
	cfg              Config
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan ws.Message
	mu               sync.RWMutex
}

// GameSummary is a row of the game listing.
type GameSummary struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	ToMove  string `json:"toMove"`
	Moves   int    `json:"moves"`
	Players int    `json:"players"`
}

func NewGameManager(cfg Config) *GameManager {
	if cfg.MatchInterval <= 0 {
		cfg.MatchInterval = DefaultConfig().MatchInterval
	}
	return &GameManager{
		cfg:              cfg,
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan ws.Message),
	}
}

// Run pairs queued players until ctx is done.
func (gm *GameManager) Run(ctx context.Context) {
	ticker := time.NewTicker(gm.cfg.MatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for gm.matchOnce() {
			}
		}
	}
}

// matchOnce starts a game for the two longest waiting players. It reports
// false when fewer than two players are queued.
func (gm *GameManager) matchOnce() bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	player1, player2, ok := gm.queue.GetNextPair()
	if !ok {
		return false
	}

	gameID := uuid.New().String()
	game := model.NewGame(gameID)
	p1Color, err := game.AddPlayer(player1.ID)
	if err != nil {
		log.Printf("matchmaking: adding %s to %s: %v", player1.ID, gameID, err)
		return true
	}
	p2Color, err := game.AddPlayer(player2.ID)
	if err != nil {
		log.Printf("matchmaking: adding %s to %s: %v", player2.ID, gameID, err)
		return true
	}
	gm.games[gameID] = game
	log.Printf("matchmaking: started game %s for %s and %s", gameID, player1.ID, player2.ID)

	gm.notifyMatch(player1.ID, ws.MatchFoundPayload{GameID: gameID, Color: string(p1Color)})
	gm.notifyMatch(player2.ID, ws.MatchFoundPayload{GameID: gameID, Color: string(p2Color)})
	return true
}

// notifyMatch is called with gm.mu held.
func (gm *GameManager) notifyMatch(playerID string, event ws.MatchFoundPayload) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		return
	}
	msg, err := ws.New(ws.MessageTypeMatchFound, event)
	if err != nil {
		log.Printf("matchmaking: encoding event for %s: %v", playerID, err)
		return
	}
	select {
	case ch <- msg:
	default:
		log.Printf("matchmaking: player %s is not listening", playerID)
	}
	delete(gm.matchingChannels, playerID)
	close(ch)
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}
	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel removes ch and takes its player off the
// queue. The channel is closed here unless a match already closed it.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if current, exists := gm.matchingChannels[playerID]; exists && current == ch {
		delete(gm.matchingChannels, playerID)
		close(ch)
		gm.queue.Remove(playerID)
	}
}

func (gm *GameManager) CreateGame() (*model.Game, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gameID := uuid.New().String()
	if _, exists := gm.games[gameID]; exists {
		return nil, fmt.Errorf("create game %s: id collision", gameID)
	}
	game := model.NewGame(gameID)
	gm.games[gameID] = game
	return game, nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, gameID)
	}
	return game, nil
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	if err := gm.queue.AddPlayer(model.Player{ID: playerID}); err != nil {
		return fmt.Errorf("join matchmaking: %w", err)
	}
	return nil
}

func (gm *GameManager) QueueSize() int {
	return gm.queue.Size()
}

// ListGames returns a summary of every game ordered by id.
func (gm *GameManager) ListGames() []GameSummary {
	gm.mu.RLock()
	ids := maps.Keys(gm.games)
	games := make(map[string]*model.Game, len(ids))
	for _, id := range ids {
		games[id] = gm.games[id]
	}
	gm.mu.RUnlock()

	slices.Sort(ids)
	summaries := make([]GameSummary, 0, len(ids))
	for _, id := range ids {
		state := games[id].GetState()
		players := 0
		if state.Players.White.ID != "" {
			players++
		}
		if state.Players.Black.ID != "" {
			players++
		}
		summaries = append(summaries, GameSummary{
			ID:      id,
			Status:  state.Status,
			ToMove:  state.ToMove,
			Moves:   len(state.MoveHistory),
			Players: players,
		})
	}
	return summaries
}
