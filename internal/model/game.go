package model

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/mc4/chess-ai/internal/chess"
	"github.com/mc4/chess-ai/internal/ws"
	"golang.org/x/exp/slices"
)

// Conn is the part of a websocket connection a game writes to.
type Conn interface {
	WriteJSON(v interface{}) error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // websocket connections allow one writer at a time
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Game holds one game's position, its seated players and its observers.
type Game struct {
	ID          string
	CreatedAt   time.Time
	mu          sync.Mutex
	position    *chess.PositionState
	history     *chess.History
	white       string
	black       string
	outcome     chess.Evaluation
	connections *GameConnections
}

type GameState struct {
	ID          string               `json:"id"`
	Board       *BoardState          `json:"boardState"`
	ToMove      string               `json:"toMove"`
	MoveHistory []Ply                `json:"moveHistory"`
	Captured    Captured             `json:"capturedPieces"`
	IsCheck     bool                 `json:"isCheck"`
	LegalMoves  []MoveView           `json:"legalMoves"`
	EnPassant   *string              `json:"enPassantTarget"`
	Castling    chess.CastlingRights `json:"castling"`
	HalfMoves   int                  `json:"halfMoveClock"`
	Status      string               `json:"status"`
	Winner      *string              `json:"winner"`
	Resolve     *string              `json:"resolve"`
	Players     struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
	LastMove *Ply   `json:"lastMove"`
	Key      string `json:"positionKey"`
}

// Captured lists the pieces each color has lost.
type Captured struct {
	White []PieceView `json:"white"`
	Black []PieceView `json:"black"`
}

func NewGame(id string) *Game {
	pos := chess.NewStandardPosition()
	return &Game{
		ID:          id,
		CreatedAt:   time.Now(),
		position:    pos,
		history:     chess.NewHistory(pos),
		outcome:     chess.Evaluation{Status: chess.StatusInProgress},
		connections: NewGameConnections(),
	}
}

// AddPlayer seats playerID in the first free color. A player already
// seated gets their color back.
func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch playerID {
	case g.white:
		return PlayerColorWhite, nil
	case g.black:
		return PlayerColorBlack, nil
	}
	if g.white == "" {
		g.white = playerID
		return PlayerColorWhite, nil
	}
	if g.black == "" {
		g.black = playerID
		return PlayerColorBlack, nil
	}
	return "", ErrGameFull
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	return playerID != "" && (playerID == g.white || playerID == g.black)
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.white == "" || g.black == ""
}

func (g *Game) colorOf(playerID string) (chess.Color, error) {
	switch {
	case playerID == "":
		return 0, ErrNotInGame
	case playerID == g.white:
		return chess.White, nil
	case playerID == g.black:
		return chess.Black, nil
	}
	return 0, ErrNotInGame
}

// Outcome is the status reached after the last move or resignation.
func (g *Game) Outcome() chess.Evaluation {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.outcome
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

// LegalMoves for the side to move; empty once the game is over.
func (g *Game) LegalMoves() []MoveView {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.outcome.Status.IsTerminal() {
		return []MoveView{}
	}
	return newMoveViews(chess.LegalMoves(g.position, g.position.Turn))
}

// MakeMove plays a move for playerID, who must hold the color to move.
func (g *Game) MakeMove(playerID string, move WSMove) (Ply, error) {
	g.mu.Lock()
	ply, err := g.makeMove(playerID, move)
	g.mu.Unlock()
	if err != nil {
		return Ply{}, err
	}
	go g.broadcastState()
	return ply, nil
}

func (g *Game) makeMove(playerID string, move WSMove) (Ply, error) {
	if g.outcome.Status.IsTerminal() {
		return Ply{}, ErrGameOver
	}
	color, err := g.colorOf(playerID)
	if err != nil {
		return Ply{}, err
	}
	if color != g.position.Turn {
		return Ply{}, ErrNotYourTurn
	}
	from, to, promo, err := move.parse()
	if err != nil {
		return Ply{}, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}

	moves := chess.LegalMoves(g.position, color)
	i := slices.IndexFunc(moves, func(m *chess.Move) bool {
		return m.Matches(from, to, promo)
	})
	if i < 0 {
		return Ply{}, fmt.Errorf("%w: %s%s", ErrIllegalMove, move.From, move.To)
	}

	m := moves[i]
	chess.ApplyMove(g.position, m)
	g.history.Record(g.position, m)
	g.outcome = chess.Outcome(g.position, g.history.Positions())
	log.Printf("game %s: %s played %s, %s", g.ID, color, m, g.outcome)
	return newPly(m), nil
}

// Resign ends the game in favour of playerID's opponent.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	if g.outcome.Status.IsTerminal() {
		g.mu.Unlock()
		return ErrGameOver
	}
	color, err := g.colorOf(playerID)
	if err != nil {
		g.mu.Unlock()
		return err
	}
	g.outcome = chess.Evaluation{Status: chess.StatusResignation, Winner: color.Opposite(), HasWinner: true}
	g.mu.Unlock()

	log.Printf("game %s: %s resigned", g.ID, color)
	go g.broadcastState()
	return nil
}

// snapshot is called with g.mu held.
func (g *Game) snapshot() GameState {
	pos := g.position
	state := GameState{
		ID:          g.ID,
		Board:       newBoardState(pos.Board),
		ToMove:      pos.Turn.String(),
		MoveHistory: make([]Ply, 0, g.history.Len()),
		Captured:    Captured{White: []PieceView{}, Black: []PieceView{}},
		Castling:    pos.Castling,
		HalfMoves:   pos.HalfMoveClock,
		Status:      g.outcome.Status.String(),
		Key:         pos.Key(),
	}
	state.Players.White = ClientPlayer{ID: g.white, Color: PlayerColorWhite}
	state.Players.Black = ClientPlayer{ID: g.black, Color: PlayerColorBlack}

	for _, m := range g.history.Moves() {
		ply := newPly(m)
		state.MoveHistory = append(state.MoveHistory, ply)
		if ply.CapturedPiece != nil {
			if m.Captured.Color == chess.White {
				state.Captured.White = append(state.Captured.White, *ply.CapturedPiece)
			} else {
				state.Captured.Black = append(state.Captured.Black, *ply.CapturedPiece)
			}
		}
	}
	if n := len(state.MoveHistory); n > 0 {
		last := state.MoveHistory[n-1]
		state.LastMove = &last
	}
	if sq, ok := pos.EnPassantTarget(); ok {
		s := sq.String()
		state.EnPassant = &s
	}
	if g.outcome.Status.IsTerminal() {
		state.LegalMoves = []MoveView{}
		resolve := g.outcome.Status.String()
		state.Resolve = &resolve
	} else {
		state.IsCheck = g.outcome.Status == chess.StatusCheck
		state.LegalMoves = newMoveViews(chess.LegalMoves(pos, pos.Turn))
	}
	if g.outcome.HasWinner {
		w := g.outcome.Winner.String()
		state.Winner = &w
	}
	return state
}

func (g *Game) RegisterConnection(playerID string, conn Conn) error {
	g.mu.Lock()
	isAuthorized := g.isPlayerInGame(playerID) || g.canSpectate()
	g.mu.Unlock()

	if !isAuthorized {
		return ErrNotAuthorized
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// keep the healthy connection, the caller closes the new one
		g.connections.mu.Unlock()
		return ErrAlreadyConnected
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Printf("game %s: registered connection for player %s", g.ID, playerID)

	go g.broadcastState()
	return nil
}

// UnregisterConnection drops playerID's connection if it is still conn.
func (g *Game) UnregisterConnection(playerID string, conn Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		log.Printf("game %s: unregistering connection for player %s", g.ID, playerID)
		delete(g.connections.connections, playerID)
	}
}

func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// Send writes msg to one of this game's connections.
func (g *Game) Send(conn Conn, msg ws.Message) error {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()
	return conn.WriteJSON(msg)
}

func (g *Game) broadcastState() {
	g.mu.Lock()
	state := g.snapshot()
	g.mu.Unlock()

	payload, err := json.Marshal(state)
	if err != nil {
		log.Printf("game %s: failed to marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{Type: ws.MessageTypeGameState, Payload: payload}

	g.connections.mu.RLock()
	activeConnections := make(map[string]Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		activeConnections[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range activeConnections {
		if err := g.Send(conn, msg); err != nil {
			log.Printf("game %s: failed to send state to player %s: %v", g.ID, playerID, err)
			g.UnregisterConnection(playerID, conn)
		}
	}
}
