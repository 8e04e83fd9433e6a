// Package api fetches block and transaction records from public blockchain
// data APIs and decodes them into fixed record shapes.
//
// Two flavors are supported:
//
//	explorer  blockchain.info /rawblock and /rawtx, fully typed records
//	simple    api.blockchain.com /block and /transaction, string-typed records
//
// Every record is a read-only snapshot of one response. Unknown keys are
// ignored; a required key that is missing or null fails the whole decode with
// a MissingFieldError wrapped in a DecodeError.
package api

import (
	"encoding/json"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

// Flavor selects the API family and the record shapes that go with it.
type Flavor string

const (
	FlavorExplorer Flavor = "explorer"
	FlavorSimple   Flavor = "simple"
)

// Valid reports whether f names a supported flavor.
func (f Flavor) Valid() bool {
	return f == FlavorExplorer || f == FlavorSimple
}

// =============================================================================
// Explorer flavor (blockchain.info)
// =============================================================================

// Block is a blockchain.info /rawblock response.
//
// Hash fields are decoded into chainhash.Hash. A hash that is not exactly 64
// hex characters fails the decode with a HashFieldError.
type Block struct {
	Hash         chainhash.Hash `json:"hash"`
	Version      int64          `json:"ver"`
	PrevBlock    chainhash.Hash `json:"prev_block"`
	MerkleRoot   chainhash.Hash `json:"mrkl_root"`
	Time         int64          `json:"time"` // Unix seconds
	Bits         uint32         `json:"bits"`
	Nonce        uint32         `json:"nonce"`
	TxCount      int            `json:"n_tx"`
	Size         int            `json:"size"`
	BlockIndex   int64          `json:"block_index"`
	MainChain    bool           `json:"main_chain"`
	Height       int64          `json:"height"`
	ReceivedTime *int64         `json:"received_time,omitempty"`
	RelayedBy    LenientString  `json:"relayed_by"` // not always a string upstream
	Fee          *int64         `json:"fee,omitempty"`
	Weight       *int64         `json:"weight,omitempty"`
	Tx           []Transaction  `json:"tx"`
}

var blockRequired = []string{
	"hash", "ver", "prev_block", "mrkl_root", "time", "bits", "nonce",
	"n_tx", "size", "block_index", "main_chain", "height", "tx",
}

func (b *Block) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "block", blockRequired...); err != nil {
		return err
	}
	if err := requireHashes(data, "block", "hash", "prev_block", "mrkl_root"); err != nil {
		return err
	}
	type plain Block
	return json.Unmarshal(data, (*plain)(b))
}

// Transaction is a blockchain.info /rawtx response, also embedded in Block.Tx.
type Transaction struct {
	Hash        chainhash.Hash `json:"hash"`
	Version     int64          `json:"ver"`
	Inputs      []Input        `json:"inputs"`
	Outputs     []Output       `json:"out"`
	Size        *int64         `json:"size,omitempty"`
	Weight      *int64         `json:"weight,omitempty"`
	Fee         *int64         `json:"fee,omitempty"`
	LockTime    *int64         `json:"lock_time,omitempty"`
	Time        *int64         `json:"time,omitempty"`
	TxIndex     *int64         `json:"tx_index,omitempty"`
	BlockHeight *int64         `json:"block_height,omitempty"` // null while unconfirmed
}

var transactionRequired = []string{"hash", "ver", "inputs", "out"}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "transaction", transactionRequired...); err != nil {
		return err
	}
	if err := requireHashes(data, "transaction", "hash"); err != nil {
		return err
	}
	type plain Transaction
	return json.Unmarshal(data, (*plain)(t))
}

// Input spends PrevOut. Coinbase inputs carry no PrevOut.
type Input struct {
	Sequence uint32  `json:"sequence"`
	Witness  string  `json:"witness,omitempty"`
	Script   string  `json:"script"`
	Index    int     `json:"index"`
	PrevOut  *Output `json:"prev_out,omitempty"`
}

var inputRequired = []string{"sequence", "script", "index"}

func (in *Input) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "input", inputRequired...); err != nil {
		return err
	}
	type plain Input
	return json.Unmarshal(data, (*plain)(in))
}

// Output is a transaction output. Value is in satoshi.
type Output struct {
	Type              int                `json:"type"`
	Spent             bool               `json:"spent"`
	Value             int64              `json:"value"`
	N                 int                `json:"n"`
	TxIndex           int64              `json:"tx_index"`
	Script            string             `json:"script"`
	Addr              string             `json:"addr,omitempty"`
	SpendingOutpoints []SpendingOutpoint `json:"spending_outpoints"`
}

var outputRequired = []string{"type", "spent", "value", "n", "tx_index", "script", "spending_outpoints"}

func (o *Output) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "output", outputRequired...); err != nil {
		return err
	}
	type plain Output
	return json.Unmarshal(data, (*plain)(o))
}

// SpendingOutpoint names the input that spent an output.
type SpendingOutpoint struct {
	TxIndex int64 `json:"tx_index"`
	N       int   `json:"n"`
}

func (s *SpendingOutpoint) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "spending outpoint", "tx_index", "n"); err != nil {
		return err
	}
	type plain SpendingOutpoint
	return json.Unmarshal(data, (*plain)(s))
}

// =============================================================================
// Simple flavor (api.blockchain.com)
// =============================================================================

// SimpleBlock keeps every scalar as the string the API returns. Embedded
// transactions are opaque: either hash strings or full objects.
type SimpleBlock struct {
	Number       string            `json:"number"`
	Timestamp    string            `json:"timestamp"`
	Transactions []json.RawMessage `json:"transactions"`
	Miner        string            `json:"miner"`
}

func (b *SimpleBlock) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "block", "number", "timestamp", "transactions", "miner"); err != nil {
		return err
	}
	type plain SimpleBlock
	return json.Unmarshal(data, (*plain)(b))
}

// SimpleTransaction is the api.blockchain.com transaction shape.
type SimpleTransaction struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Gas   string `json:"gas"`
}

func (t *SimpleTransaction) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "transaction", "from", "to", "value", "gas"); err != nil {
		return err
	}
	type plain SimpleTransaction
	return json.Unmarshal(data, (*plain)(t))
}
