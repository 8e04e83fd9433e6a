package api

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Lenient decodes a JSON value into T and falls back to T's zero value when
// the value has a different JSON type. Set reports whether the value decoded
// as T; it is false for null and for a type mismatch.
//
//	"relayed_by": "0.0.0.0"  -> Value "0.0.0.0", Set true
//	"relayed_by": 12         -> Value "",        Set false
//	"relayed_by": {"ip": ..} -> Value "",        Set false
type Lenient[T any] struct {
	Value T
	Set   bool
}

// LenientString is the form used by blockchain.info's relayed_by field.
type LenientString = Lenient[string]

func (l *Lenient[T]) UnmarshalJSON(data []byte) error {
	*l = Lenient[T]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil
		}
		return err
	}

	l.Value = v
	l.Set = true
	return nil
}

// String renders Value for display; strings print without quotes.
func (l Lenient[T]) String() string {
	if s, ok := any(l.Value).(string); ok {
		return s
	}
	b, err := json.Marshal(l.Value)
	if err != nil {
		return ""
	}
	return string(b)
}
