package domain

type Crypto uint8

const (
	CRYPTO_NONE Crypto = iota // only for init
	CRYPTO_BITCOIN
	CRYPTO_BITCOIN_GREEN
	CRYPTO_BITCOIN_CASH
	CRYPTO_ETHEREUM_CLASSIC
	CRYPTO_BINANCE_COIN
	CRYPTO_SOLANA
	CRYPTO_TON
	CRYPTO_NOTCOIN
	CRYPTO_DOGECOIN
	CRYPTO_TRUMP
	CRYPTO_TETHER
	CRYPTO_LITECOIN
)

var Cryptos = [...]string{
	"none",
	"BITCOIN",
	"BITCOIN_GREEN",
	"BITCOIN_CASH",
	"ETHEREUM_CLASSIC",
	"BINANCE_COIN",
	"SOLANA",
	"TON",
	"NOTCOIN",
	"DOGECOIN",
	"TRUMP",
	"TETHER",
	"LITECOIN",
}

// PrimaryCrypto receives mining withdrawals.
const PrimaryCrypto = CRYPTO_BITCOIN

func (c Crypto) ToString() string {
	return Cryptos[c]
}

func (c Crypto) IsNone() bool {
	return c == CRYPTO_NONE
}

func StrToCrypto(s string) Crypto {
	for i, currencyName := range Cryptos {
		if s == currencyName {
			return Crypto(i)
		}
	}
	return CRYPTO_NONE
}

// SupportedCryptos lists every currency a user holds a balance in,
// CRYPTO_NONE excluded. Order is stable.
func SupportedCryptos() []Crypto {
	out := make([]Crypto, 0, len(Cryptos)-1)
	for i := 1; i < len(Cryptos); i++ {
		out = append(out, Crypto(i))
	}
	return out
}
