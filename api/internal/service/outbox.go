package service

import (
	"fmt"
	"time"

	"cryptomine/api/internal/domain"
	"cryptomine/api/internal/infra/nats"
	"cryptomine/api/internal/logger"
	"cryptomine/api/internal/repository"
	"cryptomine/pkg/nats/natsdomain"
	"cryptomine/pkg/utils"

	"gorm.io/gorm"
)

type OutboxService struct {
	repo      repository.Events
	natsinfra *nats.NatsInfra
	db        *gorm.DB
	l         logger.Logger
}

func NewOutboxService(db *gorm.DB, repo repository.Events, natsinfra *nats.NatsInfra, l logger.Logger) *OutboxService {
	return &OutboxService{repo: repo, natsinfra: natsinfra, db: db, l: l}
}

// createLedgerEvent writes the outbox row for a freshly inserted
// transaction inside the same db transaction.
func createLedgerEvent(tx *gorm.DB, events repository.Events, row *domain.Transactions) error {
	payload := domain.PayloadLedgerTransaction{
		TransactionID: row.ID,
		UserID:        row.UserID,
		Type:          row.Type.ToString(),
		Crypto:        row.Crypto,
		Amount:        row.Amount,
		FromCrypto:    row.FromCrypto,
		ToCrypto:      row.ToCrypto,
	}
	return events.Create(tx, domain.EVENT_LEDGER_TRANSACTION, row.ID, string(utils.MustMarshal(payload)))
}

// StartProcessEvents polls pending outbox rows and publishes them to
// the ledger stream. Without NATS the rows simply stay pending.
func (s *OutboxService) StartProcessEvents() {
	if s.natsinfra == nil {
		s.l.Info("outbox: nats disabled, ledger feed not started")
		return
	}

	const sleepTime = 10 * time.Second

	go func() {
		for {
			events, err := s.repo.FindNew(s.db, 20)
			if err != nil {
				s.l.Debug("outbox: select events failed", "error", err.Error())
				time.Sleep(sleepTime)
				continue
			}

			for _, event := range events {
				if event.Type != domain.EVENT_LEDGER_TRANSACTION {
					s.l.Debug("outbox: invalid event type", "type", event.Type)
					continue
				}
				s.publishLedgerEvent(event)
			}

			time.Sleep(sleepTime)
		}
	}()
}

func (s *OutboxService) publishLedgerEvent(event domain.Events) {
	msgId := fmt.Sprintf("%s_%d", event.Type, event.RelationID)

	err := s.natsinfra.JsPublishMsgId(natsdomain.SubjJsLedgerTransactions.String(), []byte(event.Payload), msgId)
	if err != nil {
		s.l.Debug("outbox: publish failed", "event_id", event.ID, "error", err.Error())
		return
	}

	if err := s.repo.Done(s.db, event.RelationID, event.Type); err != nil {
		s.l.Debug("outbox: mark done failed", "event_id", event.ID, "error", err.Error())
	}
}
