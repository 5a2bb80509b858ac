package pem

import (
	"fmt"
	"strings"

	"github.com/propensive/gastronomy/codec/base64"
	"github.com/propensive/gastronomy/failure"
)

// ParseError names every malformed-PEM failure raised by Parse.
const ParseError = "PemParseError"

const delimiter = "-----"

// lineWidth is the column the base-64 payload wraps at: 64 encoded
// characters, i.e. 48 source bytes per line.
const lineWidth = 64

// Pem is a labelled binary payload in the textual BEGIN/END container
// format. Values are immutable after construction.
type Pem struct {
	Kind string
	Data []byte
}

// New constructs a container, rejecting labels that would collide with the
// BEGIN/END marker delimiters.
func New(kind string, data []byte) (Pem, error) {
	if strings.Contains(kind, delimiter) {
		return Pem{}, fmt.Errorf("PEM label must not contain %q", delimiter)
	}
	return Pem{Kind: kind, Data: data}, nil
}

// String serializes the container: a BEGIN marker, the base-64 payload
// wrapped at 64 characters, and an END marker, joined with "\n".
func (p Pem) String() string {
	lines := []string{fmt.Sprintf("-----BEGIN %s-----", p.Kind)}
	text := base64.Encode(p.Data)
	for len(text) > lineWidth {
		lines = append(lines, text[:lineWidth])
		text = text[lineWidth:]
	}
	if len(text) > 0 {
		lines = append(lines, text)
	}
	lines = append(lines, fmt.Sprintf("-----END %s-----", p.Kind))
	return strings.Join(lines, "\n")
}

// Parse reads a container back from text. The first line after trimming
// must be a BEGIN marker, and a later line must be an END marker carrying
// the same label, exactly and case-sensitively.
func Parse(text string) (Pem, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	first := lines[0]
	if !strings.HasPrefix(first, "-----BEGIN ") || !strings.HasSuffix(first, delimiter) {
		return Pem{}, failure.New(ParseError, "the BEGIN line could not be found")
	}
	kind := first[len("-----BEGIN ") : len(first)-len(delimiter)]

	end := fmt.Sprintf("-----END %s-----", kind)
	endIndex := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == end {
			endIndex = i
			break
		}
	}
	if endIndex < 0 {
		return Pem{}, failure.New(ParseError, "the message's END line could not be found")
	}

	data, err := base64.Decode(strings.Join(lines[1:endIndex], ""))
	if err != nil {
		return Pem{}, failure.New(ParseError, "could not parse Base64 PEM message")
	}
	return Pem{Kind: kind, Data: data}, nil
}

// IsParseError reports whether the error is a malformed-PEM failure.
func IsParseError(err error) bool {
	return failure.Name(err) == ParseError
}
