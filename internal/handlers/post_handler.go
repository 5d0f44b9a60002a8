package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucPost "github.com/BruksfildServices01/fortune-club/internal/usecase/post"
)

const (
	postsDefaultLimit = 20
	postsMaxLimit     = 100
)

// ======================================================
// HANDLER
// ======================================================

type PostHandler struct {
	list     *ucPost.ListPosts
	get      *ucPost.GetPost
	create   *ucPost.CreatePost
	update   *ucPost.UpdatePost
	remove   *ucPost.DeletePost
	moderate *ucPost.ModeratePost
}

func NewPostHandler(
	list *ucPost.ListPosts,
	get *ucPost.GetPost,
	create *ucPost.CreatePost,
	update *ucPost.UpdatePost,
	remove *ucPost.DeletePost,
	moderate *ucPost.ModeratePost,
) *PostHandler {
	return &PostHandler{
		list:     list,
		get:      get,
		create:   create,
		update:   update,
		remove:   remove,
		moderate: moderate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreatePostRequest struct {
	Content  string `json:"content" binding:"required"`
	ImageURL string `json:"image_url"`
}

// UpdatePostRequest uses pointers to tell absent fields from empty ones.
type UpdatePostRequest struct {
	Content  *string `json:"content"`
	ImageURL *string `json:"image_url"`
	Status   *string `json:"status"`
}

type ModeratePostRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

func (h *PostHandler) List(c *gin.Context) {
	page := httpresp.ParsePage(c, postsDefaultLimit, postsMaxLimit)

	posts, total, err := h.list.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		page.Limit,
		page.Offset(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, dto.NewPosts(posts), page, total)
}

func (h *PostHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewPost(p))
}

func (h *PostHandler) Create(c *gin.Context) {
	var req CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucPost.CreatePostInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewPost(p))
}

func (h *PostHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), id, ucPost.UpdatePostInput{
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Status:   req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewPost(p))
}

func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) Moderate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req ModeratePostRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.moderate.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewPost(p))
}
