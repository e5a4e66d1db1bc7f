package v1

import (
	"net/http"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (h *Handler) saveWalletAddress(c *gin.Context) {
	var data struct {
		UserId     uint   `json:"user_id" validate:"required"`
		CryptoType string `json:"crypto_type" validate:"required,crypto"`
		Address    string `json:"address" validate:"required,min=1,max=128"`
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

	wallet, err := h.services.Wallets.Save(data.UserId, domain.StrToCrypto(data.CryptoType), data.Address)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	c.AbortWithStatusJSON(http.StatusOK, responseWalletAddress{
		Error:  false,
		Wallet: newWalletAddressInfo(wallet),
	})
}

func (h *Handler) getUserWalletAddresses(c *gin.Context) {
	var data struct {
		UserId uint `json:"user_id" validate:"required"`
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

	wallets, err := h.services.Wallets.ListByUser(data.UserId)
	if err != nil {
		h.respondServiceErr(c, err, errid)
		return
	}

	infos := make([]walletAddressInfo, 0, len(wallets))
	for i := range wallets {
		infos = append(infos, newWalletAddressInfo(&wallets[i]))
	}

	c.AbortWithStatusJSON(http.StatusOK, responseWalletAddresses{
		Error:   false,
		Wallets: infos,
	})
}

func (h *Handler) withdrawToWallet(c *gin.Context) {
	var data struct {
		UserId        uint   `json:"user_id" validate:"required"`
		CryptoType    string `json:"crypto_type" validate:"required,crypto"`
		Amount        string `json:"amount" validate:"required,amount"`
		WalletAddress string `json:"wallet_address" validate:"required,min=1,max=128"`
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

	withdrawal, err := h.services.Wallets.Withdraw(data.UserId, domain.StrToCrypto(data.CryptoType), amount, data.WalletAddress)
	if err != nil {
		status := domain.GetStatusByErr(err)
		if status == http.StatusInternalServerError {
			h.log.TemplOperationErr("wallet withdrawal error: "+err.Error(), errid, data.UserId, amount, data.CryptoType, c.Request.RequestURI, c.ClientIP())
			responseErr(c, status, domain.ErrMsgInternalServerError, errid)
			return
		}
		responseErr(c, status, err.Error(), "")
		return
	}

	h.log.TemplOperationInfo("wallet withdrawal created", data.UserId, amount, data.CryptoType, c.Request.RequestURI)

	c.AbortWithStatusJSON(http.StatusOK, responseTransaction{
		Error:       false,
		Transaction: newTransactionInfo(withdrawal),
	})
}

func (h *Handler) initWalletRoutes(g *gin.RouterGroup) {
	g.POST("/wallet/save", h.saveWalletAddress)
	g.POST("/wallet/list", h.getUserWalletAddresses)
	g.POST("/wallet/withdraw", h.withdrawToWallet)
}
