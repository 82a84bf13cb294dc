package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/chatbot"
	"github.com/cmlabs-hris/hr-portal-go/internal/handler/http/response"
)

type ChatbotHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type chatbotHandlerImpl struct {
	chatbotService chatbot.ChatbotService
}

func NewChatbotHandler(chatbotService chatbot.ChatbotService) ChatbotHandler {
	return &chatbotHandlerImpl{chatbotService: chatbotService}
}

// Ask implements ChatbotHandler.
func (h *chatbotHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var req chatbot.AskRequest
	if err := decodeJSON(r, &req); err != nil {
		slog.Error("Chatbot decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.chatbotService.Ask(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
