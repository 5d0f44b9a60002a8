package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucSkill "github.com/BruksfildServices01/fortune-club/internal/usecase/skill"
)

type SkillHandler struct {
	list   *ucSkill.ListSkills
	create *ucSkill.CreateSkill
	remove *ucSkill.DeleteSkill
}

func NewSkillHandler(
	list *ucSkill.ListSkills,
	create *ucSkill.CreateSkill,
	remove *ucSkill.DeleteSkill,
) *SkillHandler {
	return &SkillHandler{list: list, create: create, remove: remove}
}

type CreateSkillRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewSkills(skills))
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req CreateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	s, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), req.Name)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewSkill(*s))
}

func (h *SkillHandler) Delete(c *gin.Context) {
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
