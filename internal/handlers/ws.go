package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dionisvl/my.traffic-lights/internal/game"
	"github.com/dionisvl/my.traffic-lights/internal/services"
	"github.com/dionisvl/my.traffic-lights/internal/ws"
)

// WSHandler is the push transport: each connection belongs to one game room,
// sends commands as JSON messages and receives the events the broadcast
// policy decides on.
type WSHandler struct {
	gameService *services.GameService
	hub         *ws.Hub
}

func NewWSHandler(gameService *services.GameService, hub *ws.Hub) *WSHandler {
	return &WSHandler{gameService: gameService, hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type clientMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type joinMessage struct {
	PlayerID string `json:"player_id"`
}

type answerMessage struct {
	QuestionIndex int              `json:"question_index"`
	Answer        game.AnswerColor `json:"answer"`
}

type commentMessage struct {
	QuestionIndex int    `json:"question_index"`
	Comment       string `json:"comment"`
}

type readyMessage struct {
	QuestionIndex int  `json:"question_index"`
	Ready         bool `json:"ready"`
}

type errorPayload struct {
	Code    game.Code `json:"code"`
	Message string    `json:"message"`
}

// HandleGameSocket godoc
// @Summary      WebSocket gateway for one game
// @Description  Join, start, answer, comment and ready commands with real-time fan-out
// @Tags         websocket
// @Param        id path string true "Game ID"
// @Router       /ws/game/{id} [get]
func (h *WSHandler) HandleGameSocket(c *gin.Context) {
	gameID := c.Param("id")
	if _, err := h.gameService.Snapshot(gameID); err != nil {
		abortWithError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(gameID, conn)

	var role game.Role
	defer func() {
		// Teardown marks the bound role offline; the other player is
		// notified but never waited on.
		if role != "" {
			h.dispatch(gameID, conn, h.gameService.Disconnect(gameID, role))
		}
		h.hub.RemoveConnection(gameID, conn)
	}()

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		role = h.handleMessage(gameID, role, conn, msg)
	}
}

// handleMessage applies one client command and returns the (possibly newly
// bound) role of this connection. Failures go back to the sender only.
func (h *WSHandler) handleMessage(gameID string, role game.Role, conn *websocket.Conn, msg clientMessage) game.Role {
	if msg.Type == "join_game" {
		var body joinMessage
		if err := json.Unmarshal(msg.Data, &body); err != nil || body.PlayerID == "" {
			h.sendError(conn, game.CodeInvalidArgument, "player_id required")
			return role
		}
		joined, events, err := h.gameService.Join(gameID, body.PlayerID)
		if err != nil {
			h.sendError(conn, game.CodeOf(err), err.Error())
			return role
		}
		h.dispatch(gameID, conn, events)
		return joined
	}

	if role == "" {
		h.sendError(conn, game.CodeForbidden, "join the game first")
		return role
	}

	var (
		events []services.Event
		err    error
	)
	switch msg.Type {
	case "start_game":
		events, err = h.gameService.Start(gameID, role)
	case "choose_answer":
		var body answerMessage
		if err = json.Unmarshal(msg.Data, &body); err == nil {
			events, err = h.gameService.ChooseAnswer(gameID, role, body.QuestionIndex, body.Answer)
		}
	case "submit_comment":
		var body commentMessage
		if err = json.Unmarshal(msg.Data, &body); err == nil {
			events, err = h.gameService.SubmitComment(gameID, role, body.QuestionIndex, body.Comment)
		}
	case "ready_next":
		var body readyMessage
		if err = json.Unmarshal(msg.Data, &body); err == nil {
			events, err = h.gameService.SetReady(gameID, role, body.QuestionIndex, body.Ready)
		}
	default:
		h.sendError(conn, game.CodeInvalidArgument, "unknown message type")
		return role
	}

	if err != nil {
		h.sendError(conn, game.CodeOf(err), err.Error())
		return role
	}
	h.dispatch(gameID, conn, events)
	return role
}

func (h *WSHandler) dispatch(gameID string, origin *websocket.Conn, events []services.Event) {
	for _, ev := range events {
		msg := ws.WSMessage{Type: ev.Type, Data: ev.Data}
		switch ev.Scope {
		case services.ScopeSender:
			h.hub.Send(origin, msg)
		case services.ScopeOthers:
			h.hub.BroadcastExcept(gameID, origin, msg)
		default:
			h.hub.Broadcast(gameID, msg)
		}
	}
}

func (h *WSHandler) sendError(conn *websocket.Conn, code game.Code, message string) {
	if code == "" {
		code = game.CodeInvalidState
	}
	h.hub.Send(conn, ws.WSMessage{
		Type: "error",
		Data: errorPayload{Code: code, Message: message},
	})
}
