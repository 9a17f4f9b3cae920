package service

import (
	"fmt"

	"github.com/mc4/chess-ai/internal/model"
	"github.com/mc4/chess-ai/internal/ws"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	game, err := gs.gameManager.CreateGame()
	if err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	return game.ID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.PlayerColor, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return game.AddPlayer(playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gs *GameService) LegalMoves(gameID string) ([]model.MoveView, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	return game.LegalMoves(), nil
}

func (gs *GameService) HandleMove(gameID string, playerID string, move model.WSMove) (model.Ply, error) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.Ply{}, err
	}
	ply, err := game.MakeMove(playerID, move)
	if err != nil {
		return model.Ply{}, fmt.Errorf("game %s: %w", gameID, err)
	}
	return ply, nil
}

func (gs *GameService) Resign(gameID string, playerID string) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	if err := game.Resign(playerID); err != nil {
		return fmt.Errorf("game %s: %w", gameID, err)
	}
	return nil
}

func (gs *GameService) ListGames() []GameSummary {
	return gs.gameManager.ListGames()
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn model.Conn) {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(playerID, conn)
}

// Send writes msg on a connection registered with gameID.
func (gs *GameService) Send(gameID string, conn model.Conn, msg ws.Message) error {
	game, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.Send(conn, msg)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string, ch chan ws.Message) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID, ch)
}
