package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Path locates a value inside a decoded document. Segments are wire keys or
// list indexes rendered as "[i]".
type Path []string

// Key returns p extended with a wire key. p itself is never modified.
func (p Path) Key(k string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, k)
}

// Index returns p extended with a list index.
func (p Path) Index(i int) Path {
	return p.Key("[" + strconv.Itoa(i) + "]")
}

func (p Path) String() string {
	var b strings.Builder
	for i, seg := range p {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// ShapeError reports a raw value that does not have its field's declared shape.
type ShapeError struct {
	Path string
	Want string
	Got  string
	Err  error
}

func (e *ShapeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("schema: expected %s, got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("schema: %s: expected %s, got %s", e.Path, e.Want, e.Got)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// NoMatchingVariantError reports a union value no candidate fully explains.
type NoMatchingVariantError struct {
	Union     string
	Path      string
	Raw       json.RawMessage
	Attempted []string
	// Reasons holds one rejection per attempted candidate, in order.
	Reasons []error
}

func (e *NoMatchingVariantError) Error() string {
	where := e.Union
	if e.Path != "" {
		where = e.Path + " (" + e.Union + ")"
	}
	return fmt.Sprintf("schema: %s: no matching variant among [%s]", where, strings.Join(e.Attempted, ", "))
}

// Unwrap exposes the per-candidate rejections to errors.Is/As.
func (e *NoMatchingVariantError) Unwrap() []error { return e.Reasons }

// RejectionError explains why one union candidate was not chosen.
type RejectionError struct {
	Variant string
	Reason  string
	Err     error
}

func (e *RejectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Variant, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Variant, e.Reason)
}

func (e *RejectionError) Unwrap() error { return e.Err }

// rawKind names the JSON kind of a raw value for error messages.
func rawKind(raw json.RawMessage) string {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		case '{':
			return "object"
		case '[':
			return "array"
		case '"':
			return "string"
		case 't', 'f':
			return "boolean"
		case 'n':
			return "null"
		default:
			return "number"
		}
	}
	return "empty"
}

func isNull(raw json.RawMessage) bool {
	k := rawKind(raw)
	return k == "null" || k == "empty"
}
