package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Config struct {
	DB *gorm.DB

	Prod_env bool

	Postgres struct {
		Host     string
		User     string
		Password string
		Db_name  string
		Port     uint16
		Ssl_mode string
	}

	Nats struct {
		Enabled bool
		Servers []string
	}

	Mining struct {
		RatePerSecondStr string          `toml:"rate_per_second"`
		RatePerSecond    decimal.Decimal `toml:"-"` // parsed from RatePerSecondStr
	} `toml:"mining"`

	Api struct {
		Ipv4  string
		Proto string
	} `toml:"web"`
}

// DefaultMiningRate is used when [mining] rate_per_second is not set.
// One hundred satoshi per second of ACTIVE mining.
var DefaultMiningRate = decimal.RequireFromString("0.00000100")

func ReadConfig() *Config {
	byte_config, err := os.ReadFile(os.Getenv("CONFIG"))
	if err != nil {
		panic(err)
	}

	var config Config
	_, err = toml.Decode(string(byte_config), &config)
	if err != nil {
		panic(err)
	}

	config.Mining.RatePerSecond = DefaultMiningRate
	if config.Mining.RatePerSecondStr != "" {
		rate, err := decimal.NewFromString(config.Mining.RatePerSecondStr)
		if err != nil {
			panic("invalid mining rate: " + err.Error())
		}
		if rate.IsNegative() || rate.Exponent() < -8 {
			panic("mining rate must be non-negative with at most 8 decimal places")
		}
		config.Mining.RatePerSecond = rate
	}

	return &config
}
