// Package domain holds the Go types that custom scalars of the integration
// schema are bound to through the `models` section of the config.
package domain

import (
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
)

// Email is bound to the Email scalar. Decoding rejects values without an '@'
// and normalizes the domain part to lower case.
type Email string

func ParseEmail(s string) (Email, error) {
	local, host, ok := strings.Cut(s, "@")
	if !ok || local == "" || host == "" {
		return "", fmt.Errorf("invalid email format: %s", s)
	}
	return Email(local + "@" + strings.ToLower(host)), nil
}

func (e *Email) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseEmail(s)
	if err != nil {
		return err
	}

	*e = parsed
	return nil
}

func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(e))
}

// Domain returns the part after the '@'.
func (e Email) Domain() string {
	_, host, _ := strings.Cut(string(e), "@")
	return host
}
