package api

import (
	"bytes"
	"encoding/json"

	"github.com/bsv-blockchain/go-sdk/chainhash"
)

var nullLiteral = []byte("null")

// requireFields fails with a MissingFieldError when any of fields is absent
// from the JSON object in data or holds null. Extra keys are ignored.
func requireFields(data []byte, record string, fields ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	for _, name := range fields {
		raw, ok := obj[name]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), nullLiteral) {
			return &MissingFieldError{Record: record, Field: name}
		}
	}
	return nil
}

// requireHashes fails with a HashFieldError when any of fields is present but
// not a string of exactly chainhash.MaxHashStringSize characters. chainhash
// left-pads shorter hex, which would print a value the API never sent.
func requireHashes(data []byte, record string, fields ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	for _, name := range fields {
		raw, ok := obj[name]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || len(s) != chainhash.MaxHashStringSize {
			return &HashFieldError{Record: record, Field: name, Value: string(raw)}
		}
	}
	return nil
}
