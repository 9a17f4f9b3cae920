package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"
	"github.com/mc4/chess-ai/internal/model"
	"github.com/mc4/chess-ai/internal/service"
	"github.com/mc4/chess-ai/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection serves one client of a game until it disconnects.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, _ := c.Locals("playerID").(string)

	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Printf("ws: register %s in game %s: %v", playerID, gameID, err)
		if errors.Is(err, model.ErrAlreadyConnected) {
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()),
			)
		} else {
			c.WriteJSON(ws.Error(err))
		}
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, playerID, c)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ws: read error from %s: %v", playerID, err)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err = json.Unmarshal(message, &msg); err != nil {
			err = fmt.Errorf("malformed message: %w", err)
		} else {
			err = wsc.handleMessage(gameID, playerID, msg)
		}
		if err != nil {
			if sendErr := wsc.gameService.Send(gameID, c, ws.Error(err)); sendErr != nil {
				log.Printf("ws: send error to %s: %v", playerID, sendErr)
				return
			}
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return fmt.Errorf("malformed move: %w", err)
		}
		_, err := wsc.gameService.HandleMove(gameID, playerID, move)
		return err
	case ws.MessageTypeResign:
		return wsc.gameService.Resign(gameID, playerID)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// HandleMatchmaking queues the player and writes a matchFound message once
// they are paired.
func (wsc *WebSocketController) HandleMatchmaking(c *websocket.Conn) {
	playerID, _ := c.Locals("playerID").(string)
	defer c.Close()

	ch := make(chan ws.Message, 1)
	wsc.gameService.RegisterMatchmakingChannel(playerID, ch)
	defer wsc.gameService.UnregisterMatchmakingChannel(playerID, ch)

	if err := wsc.gameService.JoinMatchmaking(playerID); err != nil && !errors.Is(err, model.ErrAlreadyQueued) {
		c.WriteJSON(ws.Error(err))
		return
	}

	// A read loop notices the client hanging up while we wait.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case msg, ok := <-ch:
		if ok {
			if err := c.WriteJSON(msg); err != nil {
				log.Printf("ws: sending match to %s: %v", playerID, err)
			}
		}
	case <-gone:
	}
}
