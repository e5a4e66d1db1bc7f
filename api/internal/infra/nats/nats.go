package nats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cryptomine/api/internal/config"
	"cryptomine/api/internal/logger"
	"cryptomine/pkg/nats/natsdomain"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

type NatsInfra struct {
	*natsdomain.Ns
}

// Init connects and ensures the ledger stream exists. Returns nil when
// NATS is disabled in config; callers treat a nil infra as "no feed".
func Init(config *config.Config, log logger.Logger) *NatsInfra {
	if !config.Nats.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	servers := strings.Join(config.Nats.Servers, ",")

	nc, err := nats.Connect(servers,
		nats.MaxReconnects(100),
		nats.ReconnectWait(3*time.Second),
		nats.DisconnectHandler(func(nc *nats.Conn) {
			log.TemplNatsInfo("disconnected", nc.ConnectedUrl())
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.TemplNatsInfo("reconnected", nc.ConnectedUrl())
		}))
	if err != nil {
		log.TemplNatsError("Connect failed", servers, err)
		panic("NATS: connect failed: " + err.Error())
	}

	js, err := jetstream.New(nc)
	if err != nil {
		panic(err)
	}

	if _, err := InitLedgerStream(ctx, js); err != nil {
		panic("NATS: create ledger stream: " + err.Error())
	}

	fmt.Println("nats: Connected to", nc.ConnectedAddr())
	return &NatsInfra{&natsdomain.Ns{Nc: nc, Js: js}}
}

func InitLedgerStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     "ledger",
		Subjects: natsdomain.SubjectsJetStream[:],
	})
}
