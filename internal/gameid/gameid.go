// Package gameid generates session identifiers: UUIDv7 values encoded as
// 26-character Crockford base32 strings, so they sort by creation time.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32, as used by TypeID.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the size of an encoded ID.
const Length = 26

// Generator produces IDs from a configurable random source.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator. A nil reader uses crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates an ID from crypto/rand.
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate creates an ID using the generator's random source.
func (g *Generator) Generate() string {
	var (
		id  uuid.UUID
		err error
	)
	if g.rand == nil {
		id, err = uuid.NewV7()
	} else {
		id, err = uuid.NewV7FromReader(g.rand)
	}
	if err != nil {
		panic("failed to generate UUIDv7: " + err.Error())
	}
	return Encode(id)
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are treated
// as a 130-bit number with two leading zero bits, so the first character is
// always 0-7.
func Encode(id uuid.UUID) string {
	var hi, lo uint64
	for i := range 8 {
		hi = hi<<8 | uint64(id[i])
		lo = lo<<8 | uint64(id[i+8])
	}

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Decode parses an encoded ID back into its UUID.
func Decode(s string) (uuid.UUID, error) {
	var id uuid.UUID
	if len(s) != Length {
		return id, fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return id, fmt.Errorf("game ID first character must be 0-7, got %c", s[0])
	}

	var hi, lo uint64
	for i := range Length {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return id, fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}
	for i := range 8 {
		id[7-i] = byte(hi >> (8 * i))
		id[15-i] = byte(lo >> (8 * i))
	}
	return id, nil
}

// Validate checks that s is a well-formed ID.
func Validate(s string) error {
	_, err := Decode(s)
	return err
}
