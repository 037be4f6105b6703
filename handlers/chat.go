package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"posada/models"
	"posada/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxInputLength bounds the raw user input; longer inputs are truncated, not
// rejected.
const MaxInputLength = 500

// ChatHandler exposes the conversational booking endpoints.
type ChatHandler struct {
	Service chat.ChatService
	Logger  *zap.Logger
}

func NewChatHandler(svc chat.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Service: svc, Logger: logger}
}

// HandleTurn processes one user message for a session.
func (h *ChatHandler) HandleTurn(c *gin.Context) {
	var req models.TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"mensaje": "Se requiere idSesion.",
		})
		return
	}

	input := strings.TrimSpace(req.Input)
	if r := []rune(input); len(r) > MaxInputLength {
		input = string(r[:MaxInputLength])
	}

	resp, err := h.Service.Advance(req.SessionID, input)
	if err != nil {
		h.Logger.Error("chat turn failed", zap.String("session", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error interno",
			"mensaje": "No pudimos procesar tu mensaje. Intenta de nuevo.",
		})
		return
	}

	status := resp.HTTPStatus
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// HandleReset discards the session's conversation so the flow starts over.
func (h *ChatHandler) HandleReset(c *gin.Context) {
	var req models.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Datos inválidos",
			"mensaje": "Se requiere idSesion.",
		})
		return
	}

	if err := h.Service.Reset(req.SessionID); err != nil {
		h.Logger.Error("chat reset failed", zap.String("session", req.SessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error interno",
			"mensaje": "No pudimos reiniciar la conversación.",
		})
		return
	}

	c.JSON(http.StatusOK, models.ResetResponse{
		Message:   "Conversación reiniciada. Envía un mensaje para comenzar de nuevo.",
		SessionID: req.SessionID,
	})
}

// HandleInfo describes the chat API surface.
func (h *ChatHandler) HandleInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"servicio": "Chat de reservas",
		"endpoints": gin.H{
			"POST /api/chat/mensaje":   "Enviar un mensaje de la conversación",
			"POST /api/chat/reiniciar": "Reiniciar la conversación de una sesión",
			"GET /api/chat/usuario":    "Generar un identificador de sesión",
		},
	})
}

// HandleNewUser issues a fresh session identifier for an anonymous visitor.
func (h *ChatHandler) HandleNewUser(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"idSesion": fmt.Sprintf("user_%d", time.Now().UnixMilli()),
	})
}
