package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmagro/chainfetch/internal/api"
)

// TransactionFormatter prints an explorer transaction with input and output tables.
type TransactionFormatter struct {
	Tx      *api.Transaction
	Latency time.Duration
}

func (f *TransactionFormatter) Format(w io.Writer) error {
	tx := f.Tx

	header(w, "Transaction")
	field(w, "Hash", tx.Hash)
	field(w, "Version", tx.Version)
	if tx.Size != nil {
		field(w, "Size", api.FormatNumber(*tx.Size)+" bytes")
	}
	if tx.Weight != nil {
		field(w, "Weight", api.FormatNumber(*tx.Weight)+" WU")
	}
	if tx.Fee != nil {
		field(w, "Fee", api.FormatSatoshi(*tx.Fee))
	}
	if tx.LockTime != nil {
		field(w, "Lock Time", *tx.LockTime)
	}
	if tx.Time != nil {
		field(w, "Time", api.FormatTimestamp(*tx.Time))
	}
	if tx.TxIndex != nil {
		field(w, "Tx Index", *tx.TxIndex)
	}
	if tx.BlockHeight != nil {
		field(w, "Block Height", api.FormatNumber(*tx.BlockHeight))
	} else {
		field(w, "Block Height", dim("unconfirmed"))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold(fmt.Sprintf("Inputs (%d)", len(tx.Inputs))))
	in := newTable(w, "#", "Previous Output", "Address", "Value", "Sequence", "Witness")
	for _, input := range tx.Inputs {
		prev, addr, value := "coinbase", "", ""
		if p := input.PrevOut; p != nil {
			prev = fmt.Sprintf("%d:%d", p.TxIndex, p.N)
			addr = p.Addr
			value = api.FormatSatoshi(p.Value)
		}
		in.AddRow(input.Index, prev, addr, value, input.Sequence, yesNo(input.Witness != ""))
	}
	in.Print()

	fmt.Fprintln(w)
	fmt.Fprintln(w, bold(fmt.Sprintf("Outputs (%d)", len(tx.Outputs))))
	out := newTable(w, "#", "Type", "Address", "Value", "Spent", "Spent By")
	for _, o := range tx.Outputs {
		out.AddRow(o.N, o.Type, shorten(o.Addr, 42), api.FormatSatoshi(o.Value), yesNo(o.Spent), spentBy(o.SpendingOutpoints))
	}
	out.Print()

	writeLatency(w, f.Latency)
	return nil
}

// spentBy lists spending outpoints as "tx_index:n".
func spentBy(points []api.SpendingOutpoint) string {
	refs := make([]string, 0, len(points))
	for _, p := range points {
		refs = append(refs, strconv.FormatInt(p.TxIndex, 10)+":"+strconv.Itoa(p.N))
	}
	return strings.Join(refs, ", ")
}

// SimpleTransactionFormatter prints a simple-flavor transaction.
type SimpleTransactionFormatter struct {
	Tx      *api.SimpleTransaction
	Latency time.Duration
}

func (f *SimpleTransactionFormatter) Format(w io.Writer) error {
	tx := f.Tx

	header(w, "Transaction")
	field(w, "From", tx.From)
	field(w, "To", tx.To)
	field(w, "Value", tx.Value)
	field(w, "Gas", tx.Gas)

	writeLatency(w, f.Latency)
	return nil
}
