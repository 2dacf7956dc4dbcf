package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pickwise/laptop-advisor-backend/internal/http/response"
	"github.com/pickwise/laptop-advisor-backend/internal/services"
)

type ChatHandler struct {
	sessions services.SessionService
}

func NewChatHandler(sessions services.SessionService) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

type chatReq struct {
	Message        string     `json:"message"`
	ConversationID *uuid.UUID `json:"conversation_id"`
}

// POST /api/conversations
func (h *ChatHandler) CreateConversation(c *gin.Context) {
	s := h.sessions.Create(c.Request.Context())
	response.RespondOK(c, gin.H{
		"conversation_id": s.ID,
		"status":          s.Status,
		"message":         h.sessions.Greeting(),
	})
}

// POST /api/chat
// A missing conversation_id starts a new conversation implicitly.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.RespondError(c, http.StatusBadRequest, "empty_message", errors.New("message must not be empty"))
		return
	}

	ctx := c.Request.Context()
	id := uuid.Nil
	if req.ConversationID != nil {
		id = *req.ConversationID
	}
	if id == uuid.Nil {
		id = h.sessions.Create(ctx).ID
	}

	reply, err := h.sessions.HandleMessage(ctx, id, req.Message)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	response.RespondOK(c, reply)
}

// GET /api/conversations/:id
func (h *ChatHandler) GetConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_conversation_id", err)
		return
	}
	s, err := h.sessions.Get(c.Request.Context(), id)
	if err != nil {
		h.respondSessionError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"conversation_id": s.ID,
		"status":          s.Status,
		"preferences":     s.Preferences,
		"missing":         s.Preferences.MissingRequired(),
		"created_at":      s.CreatedAt,
		"updated_at":      s.UpdatedAt,
	})
}

// POST /api/conversations/:id/complete
func (h *ChatHandler) CompleteConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_conversation_id", err)
		return
	}
	if err := h.sessions.Complete(c.Request.Context(), id); err != nil {
		h.respondSessionError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"conversation_id": id, "status": "completed"})
}

// DELETE /api/conversations/:id
func (h *ChatHandler) DeleteConversation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_conversation_id", err)
		return
	}
	if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
		h.respondSessionError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"conversation_id": id, "deleted": true})
}

func (h *ChatHandler) respondSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		response.RespondError(c, http.StatusNotFound, "conversation_not_found", err)
	case errors.Is(err, services.ErrSessionClosed):
		response.RespondError(c, http.StatusConflict, "session_closed", errors.New(h.sessions.ClosedMessage()))
	default:
		response.RespondError(c, http.StatusInternalServerError, "chat_failed", err)
	}
}
