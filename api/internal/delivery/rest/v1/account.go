package v1

import (
	"net/http"

	"cryptomine/api/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createUser(c *gin.Context) {
	errid := logger.GenErrorId()

	user, err := h.services.Accounts.CreateUser()
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseUserCreated{
		Error: false,
		User:  newUserInfo(user),
	})
}

func (h *Handler) initAccountRoutes(g *gin.RouterGroup) {
	g.POST("/user/create", h.createUser)
}
