package parser

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Codec translates between the legacy single-byte code page used by
// declaration files and UTF-8 text.
type Codec struct {
	name string
	cm   *charmap.Charmap
}

// encodings maps accepted configuration names to their code page.
// Declaration exports in the wild are Latin-1 or its Windows superset.
var encodings = map[string]*charmap.Charmap{
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso8859-1":    charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// NewCodec returns the codec for the given encoding name.
func NewCodec(name string) (*Codec, error) {
	cm, ok := encodings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding: %q", name)
	}
	return &Codec{name: name, cm: cm}, nil
}

// Name returns the configured encoding name.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw file bytes to text. Single-byte code pages map every
// byte to a code point, so decoding cannot fail.
func (c *Codec) Decode(raw []byte) string {
	out, _ := c.cm.NewDecoder().Bytes(raw)
	return string(out)
}

// Encode converts text back to the legacy code page. Text that originated
// from Decode always encodes cleanly; characters outside the code page are
// reported as an error.
func (c *Codec) Encode(text string) ([]byte, error) {
	out, err := c.cm.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encoding to %s: %w", c.name, err)
	}
	return out, nil
}
