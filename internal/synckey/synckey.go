// Package synckey generates and parses the composite key that binds a
// wire curve to the table row it was built from. A key has the form
// "table:row:code"; the code is a short random tag that keeps curves
// distinguishable when rows are reshuffled.
package synckey

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrMalformedKey is returned when a key does not split into exactly
// three colon-separated fields with an integer row number.
var ErrMalformedKey = errors.New("malformed sync key")

// Alphabet is the symbol set codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the fixed length of a generated code.
const CodeLength = 6

// NewCode returns a fresh random code. Codes are drawn uniformly and
// independently; no uniqueness is enforced.
func NewCode() string {
	b := make([]byte, CodeLength)
	for i := range b {
		b[i] = Alphabet[rand.Intn(len(Alphabet))]
	}
	return string(b)
}

// Encode builds a key from a table name, row number, and code.
// The table name must not contain a colon.
func Encode(table string, row int, code string) string {
	return fmt.Sprintf("%s:%d:%s", table, row, code)
}

// Decode splits a key into its table name, row number, and code.
func Decode(key string) (table string, row int, code string, err error) {
	parts := strings.Split(key, ":")
	if len(parts) != 3 {
		return "", 0, "", fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	row, convErr := strconv.Atoi(parts[1])
	if convErr != nil {
		return "", 0, "", fmt.Errorf("%w: %q has non-numeric row", ErrMalformedKey, key)
	}
	return parts[0], row, parts[2], nil
}
