// Package pointer parses JSON Pointer (RFC 6901) strings into unescaped
// segments.
package pointer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-openapi/jsonpointer"
)

// EndOfList is the segment that addresses the position after the last
// element of a list.
const EndOfList = "-"

// ErrInvalidPath is returned when a string is not a valid JSON Pointer.
var ErrInvalidPath = errors.New("invalid json pointer")

// Path is a parsed JSON Pointer. Segments are already unescaped.
type Path []string

// Parse parses raw into a Path. The empty string is the root and has no
// segments. Any other value must start with "/". Escapes other than "~0" and
// "~1" are rejected.
func Parse(raw string) (Path, error) {
	if err := checkEscapes(raw); err != nil {
		return nil, err
	}

	p, err := jsonpointer.New(raw)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPath, raw, err)
	}

	return Path(p.DecodedTokens()), nil
}

// MustParse is like Parse but panics on failure.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func checkEscapes(raw string) error {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '~' {
			continue
		}
		if i+1 >= len(raw) || (raw[i+1] != '0' && raw[i+1] != '1') {
			return fmt.Errorf("%w %q: bad escape at offset %d", ErrInvalidPath, raw, i)
		}
		i++
	}
	return nil
}

// IsRoot reports whether p addresses the whole document.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Last returns the final segment, or "" for the root.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns p without its final segment.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// String returns the escaped pointer form of p.
func (p Path) String() string {
	var b strings.Builder
	for _, segment := range p {
		b.WriteByte('/')
		b.WriteString(jsonpointer.Escape(segment))
	}
	return b.String()
}
