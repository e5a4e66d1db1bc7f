package natsdomain

import (
	"context"

	"github.com/nats-io/nats.go/jetstream"
)

// jetstream publish with msgId for dedup on redelivery
func (ns *Ns) JsPublishMsgId(subj string, jsonMsg []byte, msgId string) error {
	_, err := ns.Js.Publish(context.Background(), subj, jsonMsg, jetstream.WithMsgID(msgId))
	return err
}
