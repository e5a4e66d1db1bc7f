package v1

import (
	"net/http"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) swapCrypto(c *gin.Context) {
	var data struct {
		UserId     uint   `json:"user_id" validate:"required"`
		FromCrypto string `json:"from_crypto" validate:"required,crypto"`
		ToCrypto   string `json:"to_crypto" validate:"required,crypto"`
		Amount     string `json:"amount" validate:"required,amount"`
	}

	errid := logger.GenErrorId()

	if err := c.ShouldBindJSON(&data); err != nil {
		h.log.Debug("should bind: " + err.Error())
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	if !h.runValidation(c, data) {
		return
	}

	amount, err := decimal.NewFromString(data.Amount)
	if err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgBadRequest, "")
		return
	}

	pair, err := h.services.Exchange.Swap(data.UserId, domain.StrToCrypto(data.FromCrypto), domain.StrToCrypto(data.ToCrypto), amount)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.TemplOperationErr("swap error: "+err.Error(), errid, data.UserId, amount, data.FromCrypto, c.Request.RequestURI, c.ClientIP())
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	h.log.TemplOperationInfo("swap completed", data.UserId, amount, data.FromCrypto, c.Request.RequestURI)

	transactions := make([]transactionInfo, 0, len(pair))
	for i := range pair {
		transactions = append(transactions, newTransactionInfo(&pair[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, responseTransactions{
		Error:        false,
		Transactions: transactions,
	})
}

func (h *Handler) initExchangeRoutes(g *gin.RouterGroup) {
	g.POST("/exchange/swap", h.swapCrypto)
}
