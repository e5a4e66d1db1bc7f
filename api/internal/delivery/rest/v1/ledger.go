package v1

import (
	"net/http"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/logger"

	"github.com/gin-gonic/gin"
)

type ledgerRequest struct {
	UserId uint `json:"user_id" validate:"required"`
}

func (h *Handler) bindLedgerRequest(c *gin.Context) (*ledgerRequest, bool) {
	var data ledgerRequest

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

// full history, newest first
func (h *Handler) getUserTransactions(c *gin.Context) {
	errid := logger.GenErrorId()

	data, ok := h.bindLedgerRequest(c)
	if !ok {
		return
	}

	transactions, err := h.services.Ledger.Transactions(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	infos := make([]transactionInfo, 0, len(transactions))
	for i := range transactions {
		infos = append(infos, newTransactionInfo(&transactions[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, responseTransactions{
		Error:        false,
		Transactions: infos,
	})
}

// one entry per supported currency, zero rows synthesized
func (h *Handler) getUserBalances(c *gin.Context) {
	errid := logger.GenErrorId()

	data, ok := h.bindLedgerRequest(c)
	if !ok {
		return
	}

	views, err := h.services.Ledger.Balances(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	infos := make([]balanceInfo, 0, len(views))
	for i := range views {
		infos = append(infos, newBalanceInfo(&views[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, responseBalances{
		Error:    false,
		Balances: infos,
	})
}

func (h *Handler) initLedgerRoutes(g *gin.RouterGroup) {
	g.POST("/ledger/transactions", h.getUserTransactions)
	g.POST("/ledger/balances", h.getUserBalances)
}
