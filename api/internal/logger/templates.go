package logger

import (
	"github.com/shopspring/decimal"
)

func (l Logger) TemplOperationErr(message string, errorId string, userId uint, amount decimal.Decimal, currency string, uri string, ip string) string {
	l.Error(message, "user_id", userId, "amount", amount.String(), "currency", currency, "uri", uri, "error_id", errorId, "ip", ip)
	return errorId
}

func (l Logger) TemplOperationInfo(message string, userId uint, amount decimal.Decimal, currency string, uri string) {
	l.Info(message, "user_id", userId, "amount", amount.String(), "currency", currency, "uri", uri)
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, ipv4 string, err error) {
	l.Fatal(message, "error", err.Error(), "ipv4", ipv4)
}

func (l Logger) TemplNatsError(message, natsUrl string, err error) {
	l.Error(message, "nats_url", natsUrl, "error", err.Error())
}

func (l Logger) TemplNatsInfo(message, natsUrl string) {
	l.Info(message, "nats_url", natsUrl)
}
