package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	ucProfile "github.com/BruksfildServices01/fortune-club/internal/usecase/profile"
)

// TellerHandler serves the fortune teller directory.
type TellerHandler struct {
	list   *ucProfile.ListProviders
	search *ucProfile.SearchProviders
}

func NewTellerHandler(list *ucProfile.ListProviders, search *ucProfile.SearchProviders) *TellerHandler {
	return &TellerHandler{list: list, search: search}
}

func (h *TellerHandler) Suggestions(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewProviderProfiles(out))
}

func (h *TellerHandler) Search(c *gin.Context) {
	out, err := h.search.Execute(c.Request.Context(), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, dto.NewProviderProfiles(out))
}
