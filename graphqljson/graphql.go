// Package graphqljson decodes GraphQL response payloads, such as a saved
// introspection result, with json v2.
package graphqljson

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// ErrNoData is returned by DecodeResponse when the payload carries neither data
// nor a recognisable bare result.
var ErrNoData = errors.New("graphql response has no data")

// Response is the standard GraphQL response envelope.
type Response struct {
	Data   jsontext.Value `json:"data"`
	Errors []Error        `json:"errors"`
}

type Error struct {
	Message string `json:"message"`
}

// UnmarshalData parses the GraphQL response payload contained in data and stores
// the result into v, which must be a non-nil pointer.
func UnmarshalData(data jsontext.Value, v any) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode graphql data: decode json: cannot decode into non-pointer %T", v)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode graphql data: decode json: %w", err)
	}

	return nil
}

// DecodeResponse accepts either a full response envelope ({"data": ...}) or the
// bare data object, and decodes the data part into v. Errors reported in the
// envelope are returned instead of decoding.
func DecodeResponse(payload []byte, v any) error {
	var envelope Response
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]error, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, errors.New(e.Message))
		}
		return fmt.Errorf("graphql response contains errors: %w", errors.Join(msgs...))
	}

	if len(envelope.Data) > 0 && envelope.Data.Kind() == '{' {
		return UnmarshalData(envelope.Data, v)
	}

	if len(envelope.Data) > 0 && envelope.Data.Kind() == 'n' {
		return ErrNoData
	}

	return UnmarshalData(jsontext.Value(payload), v)
}
