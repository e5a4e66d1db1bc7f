package natsdomain

// subjects for nats

// .js. - jetstream
var SubjectsJetStream = [...]string{"ledger.js.transactions"}

type SubjJsType uint8

// nats jetstream subjects
const (
	SubjJsLedgerTransactions SubjJsType = iota
)

func (s SubjJsType) String() string {
	return SubjectsJetStream[s]
}
