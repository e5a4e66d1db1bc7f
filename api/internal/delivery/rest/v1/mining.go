package v1

import (
	"net/http"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/logger"

	"github.com/gin-gonic/gin"
)

type miningRequest struct {
	UserId uint `json:"user_id" validate:"required"`
}

func (h *Handler) bindMiningRequest(c *gin.Context) (*miningRequest, bool) {
	var data miningRequest

	if err := c.ShouldBindJSON(&data); err != nil {
		h.log.Debug("should bind: " + err.Error())
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return nil, false
	}

	if !h.runValidation(c, data) {
		return nil, false
	}

	return &data, true
}

func (h *Handler) startMining(c *gin.Context) {
	errid := logger.GenErrorId()

	data, ok := h.bindMiningRequest(c)
	if !ok {
		return
	}

	session, err := h.services.Mining.Start(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseMiningSession{
		Error:   false,
		Session: newMiningSessionInfo(session),
	})
}

func (h *Handler) stopMining(c *gin.Context) {
	errid := logger.GenErrorId()

	data, ok := h.bindMiningRequest(c)
	if !ok {
		return
	}

	session, err := h.services.Mining.Stop(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseMiningSession{
		Error:   false,
		Session: newMiningSessionInfo(session),
	})
}

// answers with a null session when the user never mined
func (h *Handler) getMiningSession(c *gin.Context) {
	errid := logger.GenErrorId()

	data, ok := h.bindMiningRequest(c)
	if !ok {
		return
	}

	session, err := h.services.Mining.GetCurrent(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseMiningSession{
		Error:   false,
		Session: newMiningSessionInfo(session),
	})
}

func (h *Handler) withdrawMining(c *gin.Context) {
	errid := logger.GenErrorId()

	data, ok := h.bindMiningRequest(c)
	if !ok {
		return
	}

	withdrawal, err := h.services.Mining.Withdraw(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseTransaction{
		Error:       false,
		Transaction: newTransactionInfo(withdrawal),
	})
}

func (h *Handler) initMiningRoutes(g *gin.RouterGroup) {
	g.POST("/mining/start", h.startMining)
	g.POST("/mining/stop", h.stopMining)
	g.POST("/mining/session", h.getMiningSession)
	g.POST("/mining/withdraw", h.withdrawMining)
}
