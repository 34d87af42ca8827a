package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
)

// UnionSchema is a logical type whose value is exactly one of a fixed,
// ordered list of object variants.
type UnionSchema struct {
	Name string
	Type reflect.Type

	variants []variant
}

type variant struct {
	name string
	typ  reflect.Type
}

// Variants returns the variant names in resolution order.
func (u *UnionSchema) Variants() []string {
	names := make([]string, len(u.variants))
	for i, v := range u.variants {
		names[i] = v.name
	}
	return names
}

// Match is the outcome of resolving a raw object against a union.
type Match struct {
	// Index is the position of the chosen variant in Variants().
	Index   int
	Variant string
	// Value is a pointer to the decoded variant struct; it implements the
	// union interface.
	Value any
}

// Resolve picks the variant of u that raw represents and decodes it.
//
// Candidates are tried in declaration order. A candidate matches when every
// non-null key of raw is one of its declared keys, its const fields carry
// their literal, and every present field decodes without a shape error. The
// first pass also demands the candidate's required keys; when no candidate
// passes it, a second pass over the same order drops that demand. The first
// match wins, so the result for a given input never depends on anything but
// the declared order.
func (r *Registry) Resolve(u *UnionSchema, raw []byte) (Match, error) {
	return r.resolve(nil, u, raw)
}

// ResolveAt is Resolve with errors located under path.
func (r *Registry) ResolveAt(path Path, u *UnionSchema, raw []byte) (Match, error) {
	return r.resolve(path, u, raw)
}

func (r *Registry) resolve(path Path, u *UnionSchema, raw json.RawMessage) (Match, error) {
	if rawKind(raw) != "object" {
		return Match{}, &ShapeError{Path: path.String(), Want: "object (" + u.Name + ")", Got: rawKind(raw)}
	}
	var reasons []error
	for _, mode := range []matchMode{matchRequired, matchCoverage} {
		reasons = make([]error, 0, len(u.variants))
		for i, vr := range u.variants {
			obj, err := r.Object(vr.typ)
			if err != nil {
				return Match{}, err
			}
			target := reflect.New(vr.typ)
			err = r.object(path, raw, target.Elem(), obj, mode)
			if err == nil {
				return Match{Index: i, Variant: vr.name, Value: target.Interface()}, nil
			}
			if errors.Is(err, ErrUnregistered) {
				return Match{}, err
			}
			if _, ok := err.(*RejectionError); !ok {
				err = &RejectionError{Variant: vr.name, Reason: "shape mismatch", Err: err}
			}
			reasons = append(reasons, err)
		}
	}
	return Match{}, &NoMatchingVariantError{
		Union:     u.Name,
		Path:      path.String(),
		Raw:       append(json.RawMessage(nil), raw...),
		Attempted: u.Variants(),
		Reasons:   reasons,
	}
}

// DecodeUnion resolves raw against the union registered for the interface
// that dst points to and stores the chosen variant in *dst.
func DecodeUnion[T any](r *Registry, raw []byte, dst *T) (Match, error) {
	t := reflect.TypeOf(dst).Elem()
	u, ok := r.Union(t)
	if !ok {
		return Match{}, fmt.Errorf("%w: %s", ErrUnregistered, t)
	}
	m, err := r.Resolve(u, raw)
	if err != nil {
		return Match{}, err
	}
	*dst = m.Value.(T)
	return m, nil
}

func sortedKeys(m map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
