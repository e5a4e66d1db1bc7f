package natsdomain

import (
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// nats struct
type Ns struct {
	Nc *nats.Conn
	Js jetstream.JetStream
}
