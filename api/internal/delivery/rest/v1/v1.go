package v1

import (
	"cryptomine/api/internal/config"
	"cryptomine/api/internal/infra/nats"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	services  *service.Services
	db        *gorm.DB
	config    *config.Config
	Natsinfra *nats.NatsInfra
	log       logger.Logger
}

func (h *Handler) InitRoutes(g *gin.RouterGroup) {
	{
		h.initAccountRoutes(g)
		h.initMiningRoutes(g)
		h.initExchangeRoutes(g)
		h.initWalletRoutes(g)
		h.initLedgerRoutes(g)
	}
}

func NewHandler(services *service.Services, db *gorm.DB, config *config.Config, natsinfra *nats.NatsInfra, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		Natsinfra: natsinfra,
		log:       log,
		services:  services,
		db:        db,
	}
}
