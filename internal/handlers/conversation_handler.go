package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/metrics"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucConversation "github.com/BruksfildServices01/fortune-club/internal/usecase/conversation"
)

// ======================================================
// HANDLER
// ======================================================

type ConversationHandler struct {
	list         *ucConversation.ListConversations
	start        *ucConversation.StartConversation
	get          *ucConversation.GetConversation
	listMessages *ucConversation.ListMessages
	send         *ucConversation.SendMessage
}

func NewConversationHandler(
	list *ucConversation.ListConversations,
	start *ucConversation.StartConversation,
	get *ucConversation.GetConversation,
	listMessages *ucConversation.ListMessages,
	send *ucConversation.SendMessage,
) *ConversationHandler {
	return &ConversationHandler{
		list:         list,
		start:        start,
		get:          get,
		listMessages: listMessages,
		send:         send,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StartConversationRequest struct {
	Participant2ID uint `json:"participant2_id"`
}

type SendMessageRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// ======================================================
// CONVERSATIONS
// ======================================================

func (h *ConversationHandler) List(c *gin.Context) {
	page := httpresp.ParsePage(c, 20, 100)

	convs, total, err := h.list.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		page.Limit,
		page.Offset(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, dto.NewConversations(convs), page, total)
}

// Start answers 201 when the conversation is new and 200 when it existed.
func (h *ConversationHandler) Start(c *gin.Context) {
	var req StartConversationRequest
	if !bindJSON(c, &req) {
		return
	}

	conv, created, err := h.start.Execute(c.Request.Context(), middleware.ActorFrom(c), req.Participant2ID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if created {
		httpresp.Created(c, dto.NewConversation(conv))
		return
	}
	httpresp.OK(c, dto.NewConversation(conv))
}

func (h *ConversationHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	conv, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewConversation(conv))
}

// ======================================================
// MESSAGES
// ======================================================

func (h *ConversationHandler) ListMessages(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	msgs, err := h.listMessages.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewMessages(msgs))
}

func (h *ConversationHandler) SendMessage(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req SendMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.send.Execute(c.Request.Context(), middleware.ActorFrom(c), id, ucConversation.SendMessageInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	metrics.MessageSent()
	httpresp.Created(c, dto.NewMessage(msg))
}
