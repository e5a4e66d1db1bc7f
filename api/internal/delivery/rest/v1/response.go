package v1

import (
	"net/http"

	"cryptomine/api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const timeFormat = "2006-01-02 15:04:05"

type responseError struct {
	Error   bool   `json:"error"`
	ErrorID string `json:"error_id"`
	Msg     string `json:"msg"`
}

type userInfo struct {
	Id        uint   `json:"id"`
	CreatedAt string `json:"created_at"`
}

type responseUserCreated struct {
	Error bool     `json:"error"`
	User  userInfo `json:"user"`
}

type miningSessionInfo struct {
	Id            uint            `json:"id"`
	UserId        uint            `json:"user_id"`
	Status        string          `json:"status"`
	MiningBalance decimal.Decimal `json:"mining_balance"`
	StartedAt     *string         `json:"started_at"`
	StoppedAt     *string         `json:"stopped_at"`
	CreatedAt     string          `json:"created_at"`
}

type responseMiningSession struct {
	Error   bool               `json:"error"`
	Session *miningSessionInfo `json:"session"`
}

type transactionInfo struct {
	Id             uint            `json:"id"`
	UserId         uint            `json:"user_id"`
	Type           string          `json:"transaction_type"`
	CryptoType     string          `json:"crypto_type"`
	Amount         decimal.Decimal `json:"amount"`
	FromCryptoType *string         `json:"from_crypto_type"`
	ToCryptoType   *string         `json:"to_crypto_type"`
	CreatedAt      string          `json:"created_at"`
}

type responseTransaction struct {
	Error       bool            `json:"error"`
	Transaction transactionInfo `json:"transaction"`
}

type responseTransactions struct {
	Error        bool              `json:"error"`
	Transactions []transactionInfo `json:"transactions"`
}

type balanceInfo struct {
	Id         uint            `json:"id"`
	UserId     uint            `json:"user_id"`
	CryptoType string          `json:"crypto_type"`
	Amount     decimal.Decimal `json:"amount"`
	Persisted  bool            `json:"persisted"`
	UpdatedAt  string          `json:"updated_at"`
}

type responseBalances struct {
	Error    bool          `json:"error"`
	Balances []balanceInfo `json:"balances"`
}

type walletAddressInfo struct {
	Id         uint   `json:"id"`
	UserId     uint   `json:"user_id"`
	CryptoType string `json:"crypto_type"`
	Address    string `json:"address"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type responseWalletAddress struct {
	Error  bool              `json:"error"`
	Wallet walletAddressInfo `json:"wallet"`
}

type responseWalletAddresses struct {
	Error   bool                `json:"error"`
	Wallets []walletAddressInfo `json:"wallets"`
}

func newUserInfo(user *domain.Users) userInfo {
	return userInfo{Id: user.ID, CreatedAt: user.CreatedAt.Format(timeFormat)}
}

func newMiningSessionInfo(session *domain.MiningSessions) *miningSessionInfo {
	if session == nil {
		return nil
	}

	info := &miningSessionInfo{
		Id:            session.ID,
		UserId:        session.UserID,
		Status:        session.Status.ToString(),
		MiningBalance: session.MiningBalance,
		CreatedAt:     session.CreatedAt.Format(timeFormat),
	}
	if session.StartedAt != nil {
		startedAt := session.StartedAt.Format(timeFormat)
		info.StartedAt = &startedAt
	}
	if session.StoppedAt != nil {
		stoppedAt := session.StoppedAt.Format(timeFormat)
		info.StoppedAt = &stoppedAt
	}
	return info
}

func newTransactionInfo(transaction *domain.Transactions) transactionInfo {
	return transactionInfo{
		Id:             transaction.ID,
		UserId:         transaction.UserID,
		Type:           transaction.Type.ToString(),
		CryptoType:     transaction.Crypto,
		Amount:         transaction.Amount,
		FromCryptoType: transaction.FromCrypto,
		ToCryptoType:   transaction.ToCrypto,
		CreatedAt:      transaction.CreatedAt.Format(timeFormat),
	}
}

func newBalanceInfo(view *domain.BalanceView) balanceInfo {
	info := balanceInfo{
		Id:         view.ID,
		UserId:     view.UserID,
		CryptoType: view.Crypto,
		Amount:     view.Amount,
		Persisted:  view.Persisted,
	}
	if view.Persisted {
		info.UpdatedAt = view.UpdatedAt.Format(timeFormat)
	}
	return info
}

func newWalletAddressInfo(wallet *domain.WalletAddresses) walletAddressInfo {
	return walletAddressInfo{
		Id:         wallet.ID,
		UserId:     wallet.UserID,
		CryptoType: wallet.Crypto,
		Address:    wallet.Address,
		CreatedAt:  wallet.CreatedAt.Format(timeFormat),
		UpdatedAt:  wallet.UpdatedAt.Format(timeFormat),
	}
}

func responseErr(c *gin.Context, statusCode int, msg, errorID string) {
	c.AbortWithStatusJSON(statusCode, responseError{true, errorID, msg})
}

// respondServiceErr maps a service failure to its HTTP status. Internal
// errors hide the cause behind an error id; the rest answer with the
// failure message itself.
func (h *Handler) respondServiceErr(c *gin.Context, err error, errid string) {
	status := domain.GetStatusByErr(err)
	if status == http.StatusInternalServerError {
		h.log.Error("handler error", "error", err.Error(), "uri", c.Request.RequestURI, "error_id", errid, "ip", c.ClientIP())
		responseErr(c, status, domain.ErrMsgInternalServerError, errid)
		return
	}
	responseErr(c, status, err.Error(), "")
}
