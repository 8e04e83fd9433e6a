package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dmagro/chainfetch/internal/api"
)

// BlockFormatter prints an explorer block.
type BlockFormatter struct {
	Block   *api.Block
	Limit   int // embedded transactions to list, <= 0 lists all
	Latency time.Duration
}

func (f *BlockFormatter) Format(w io.Writer) error {
	b := f.Block

	header(w, fmt.Sprintf("Block #%s", api.FormatNumber(b.Height)))
	field(w, "Hash", b.Hash)
	field(w, "Version", fmt.Sprintf("%d (0x%08x)", b.Version, b.Version))
	field(w, "Previous Block", b.PrevBlock)
	field(w, "Merkle Root", b.MerkleRoot)
	field(w, "Timestamp", api.FormatTimestamp(b.Time))
	field(w, "Bits", fmt.Sprintf("%d (0x%08x)", b.Bits, b.Bits))
	field(w, "Nonce", b.Nonce)
	field(w, "Tx Count", api.FormatNumber(int64(b.TxCount)))
	field(w, "Size", api.FormatNumber(int64(b.Size))+" bytes")
	if b.Weight != nil {
		field(w, "Weight", api.FormatNumber(*b.Weight)+" WU")
	}
	if b.Fee != nil {
		field(w, "Fees", api.FormatSatoshi(*b.Fee))
	}
	field(w, "Block Index", b.BlockIndex)
	field(w, "Main Chain", yesNo(b.MainChain))
	field(w, "Height", b.Height)
	if b.ReceivedTime != nil {
		field(w, "Received Time", api.FormatTimestamp(*b.ReceivedTime))
	}
	if b.RelayedBy.Set && b.RelayedBy.Value != "" {
		field(w, "Relayed By", b.RelayedBy)
	}

	shown, more := truncate(b.Tx, f.Limit)
	lines := make([]string, 0, len(shown))
	for _, tx := range shown {
		lines = append(lines, fmt.Sprintf("%s  %d in / %d out", tx.Hash, len(tx.Inputs), len(tx.Outputs)))
	}
	fmt.Fprintln(w)
	field(w, "Transactions", len(b.Tx))
	writeList(w, lines, more)

	writeLatency(w, f.Latency)
	return nil
}

// SimpleBlockFormatter prints a simple-flavor block.
type SimpleBlockFormatter struct {
	Block   *api.SimpleBlock
	Limit   int
	Latency time.Duration
}

func (f *SimpleBlockFormatter) Format(w io.Writer) error {
	b := f.Block

	header(w, "Block "+b.Number)
	field(w, "Block Number", b.Number)
	field(w, "Timestamp", b.Timestamp)
	field(w, "Miner", b.Miner)

	shown, more := truncate(b.Transactions, f.Limit)
	lines := make([]string, 0, len(shown))
	for _, raw := range shown {
		lines = append(lines, opaque(raw))
	}
	field(w, "Transactions", len(b.Transactions))
	writeList(w, lines, more)

	writeLatency(w, f.Latency)
	return nil
}

// opaque renders an embedded transaction of unknown shape: strings without
// quotes, anything else as compact JSON.
func opaque(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}

func writeLatency(w io.Writer, latency time.Duration) {
	if latency <= 0 {
		return
	}
	fmt.Fprintln(w)
	field(w, "Fetched in", fmt.Sprintf("%dms", latency.Milliseconds()))
	fmt.Fprintln(w)
}
