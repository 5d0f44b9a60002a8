package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/middleware"
	ucAccount "github.com/BruksfildServices01/fortune-club/internal/usecase/account"
)

type MeHandler struct {
	getMe     *ucAccount.GetMe
	listUsers *ucAccount.ListUsers
}

func NewMeHandler(getMe *ucAccount.GetMe, listUsers *ucAccount.ListUsers) *MeHandler {
	return &MeHandler{getMe: getMe, listUsers: listUsers}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, err := h.getMe.Execute(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(user))
}

// ListUsers is the admin directory.
func (h *MeHandler) ListUsers(c *gin.Context) {
	page := httpresp.ParsePage(c, 50, 200)

	users, total, err := h.listUsers.Execute(
		c.Request.Context(),
		middleware.ActorFrom(c),
		page.Limit,
		page.Offset(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, dto.NewUsers(users), page, total)
}
