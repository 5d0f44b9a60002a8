package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	domainProfile "github.com/BruksfildServices01/fortune-club/internal/domain/profile"
	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucProfile "github.com/BruksfildServices01/fortune-club/internal/usecase/profile"
)

type ProfileHandler struct {
	get    *ucProfile.GetMyProfile
	update *ucProfile.UpdateMyProfile
	assign *ucProfile.AssignSkills
}

func NewProfileHandler(
	get *ucProfile.GetMyProfile,
	update *ucProfile.UpdateMyProfile,
	assign *ucProfile.AssignSkills,
) *ProfileHandler {
	return &ProfileHandler{get: get, update: update, assign: assign}
}

type AssignSkillsRequest struct {
	SkillIDs json.RawMessage `json:"skill_ids"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	res, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProfile(res))
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var patch domainProfile.Patch
	if !bindJSON(c, &patch) {
		return
	}

	res, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), patch)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProfile(res))
}

func (h *ProfileHandler) AssignSkills(c *gin.Context) {
	var req AssignSkillsRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.assign.Execute(c.Request.Context(), middleware.ActorFrom(c), req.SkillIDs)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewProviderProfile(p))
}
