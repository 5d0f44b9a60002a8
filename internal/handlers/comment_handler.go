package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucPost "github.com/BruksfildServices01/fortune-club/internal/usecase/post"
)

type CommentHandler struct {
	list   *ucPost.ListComments
	create *ucPost.CreateComment
}

func NewCommentHandler(list *ucPost.ListComments, create *ucPost.CreateComment) *CommentHandler {
	return &CommentHandler{list: list, create: create}
}

type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

func (h *CommentHandler) List(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), postID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewComments(comments))
}

func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), postID, ucPost.CreateCommentInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewComment(comment))
}
