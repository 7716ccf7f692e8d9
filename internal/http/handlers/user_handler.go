// README: User handler; account lookup by id.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamcost/internal/modules/user"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{users: svc}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid user id")
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
