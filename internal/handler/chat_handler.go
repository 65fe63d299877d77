package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"artisan-service/internal/chat"
	"artisan-service/internal/domain"
	"artisan-service/internal/middleware"
	"artisan-service/internal/service"
	"artisan-service/pkg/response"
	"artisan-service/pkg/xerrors"
)

// connectionErrorMsg is the only thing a caller sees when the completion
// service misbehaves. No retries happen behind it.
const connectionErrorMsg = "Connection error. Please try again."

type ChatHandler struct {
	chat   *service.ChatService
	logger *zap.Logger
}

func NewChatHandler(chat *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, logger: logger}
}

type chatRequest struct {
	SellerID string           `json:"seller_id"`
	Messages []domain.Message `json:"messages"`
}

// Reply answers one turn in the seller's voice for a client-held history.
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SellerID == "" {
		response.Error(w, http.StatusBadRequest, "seller_id required")
		return
	}

	reply, err := h.chat.Reply(r.Context(), req.SellerID, req.Messages)
	if err != nil {
		if err == xerrors.ErrProfileNotFound {
			writeServiceError(w, err)
			return
		}
		h.logger.Warn("chat completion failed", zap.String("seller", req.SellerID), zap.Error(err))
		response.Error(w, http.StatusBadGateway, connectionErrorMsg)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"result": reply})
}

// Assistant answers one turn of the general, persona-free assistant.
func (h *ChatHandler) Assistant(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := h.chat.AssistantReply(r.Context(), req.Messages)
	if err != nil {
		h.logger.Warn("assistant completion failed", zap.Error(err))
		response.Error(w, http.StatusBadGateway, connectionErrorMsg)
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{"result": reply})
}

type sessionView struct {
	State    string           `json:"state"`
	Messages []domain.Message `json:"messages"`
}

func stateName(s int) string {
	switch s {
	case 1:
		return "awaiting_response"
	case 2:
		return "revealing"
	default:
		return "idle"
	}
}

func (h *ChatHandler) session(w http.ResponseWriter, r *http.Request) (*chat.Session, bool) {
	subject, found := middleware.GetAuthSubject(r.Context())
	if !found || subject == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}

	sellerID := chi.URLParam(r, "sellerID")
	s, err := h.chat.SessionFor(r.Context(), subject, sellerID)
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return s, true
}

// Session returns the current state and history of the conversation.
func (h *ChatHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	response.JSON(w, http.StatusOK, sessionView{
		State:    stateName(int(sess.State())),
		Messages: sess.Messages(),
	})
}

// Send submits one user message to the session. Input while a response is
// pending or revealing is rejected without touching the history.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := sess.Send(r.Context(), req.Text); err != nil {
		writeServiceError(w, err)
		return
	}
	response.JSON(w, http.StatusAccepted, sessionView{
		State:    stateName(int(sess.State())),
		Messages: sess.Messages(),
	})
}

// Stop halts an in-progress reveal, keeping the partial text.
func (h *ChatHandler) Stop(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Stop()
	response.JSON(w, http.StatusOK, sessionView{
		State:    stateName(int(sess.State())),
		Messages: sess.Messages(),
	})
}

// Clear resets the conversation to the greeting message.
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Clear(r.Context()); err != nil {
		h.logger.Error("clear chat history", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to clear history")
		return
	}
	response.JSON(w, http.StatusOK, sessionView{
		State:    stateName(int(sess.State())),
		Messages: sess.Messages(),
	})
}
