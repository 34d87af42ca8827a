package schema

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrUnregistered is returned when a field refers to an interface type that
// was never registered as a union.
var ErrUnregistered = errors.New("schema: unregistered union")

// Registry caches object schemas and holds the declared unions.
//
// Object schemas are built on first use, so types may reference each other
// (or themselves) in any order. Unions must be registered before the first
// decode that reaches them. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	objects map[reflect.Type]*ObjectSchema
	unions  map[reflect.Type]*UnionSchema
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[reflect.Type]*ObjectSchema),
		unions:  make(map[reflect.Type]*UnionSchema),
	}
}

// Object returns the schema of struct type t (or *t).
func (r *Registry) Object(t reflect.Type) (*ObjectSchema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct", t)
	}
	r.mu.RLock()
	s, ok := r.objects[t]
	r.mu.RUnlock()
	if ok {
		return s, nil
	}
	s, err := r.buildObject(t)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	if prev, ok := r.objects[t]; ok {
		s = prev
	} else {
		r.objects[t] = s
	}
	r.mu.Unlock()
	return s, nil
}

// ObjectOf returns the schema of v's struct type.
func (r *Registry) ObjectOf(v any) (*ObjectSchema, error) {
	return r.Object(reflect.TypeOf(v))
}

// RegisterUnion declares a union. iface must be a nil pointer to the union's
// interface type, e.g. (*ChatMember)(nil); variants are zero values of the
// candidate structs in resolution order. Pointers to each variant must
// implement the interface.
func (r *Registry) RegisterUnion(name string, iface any, variants ...any) (*UnionSchema, error) {
	it := reflect.TypeOf(iface)
	if it == nil || it.Kind() != reflect.Pointer || it.Elem().Kind() != reflect.Interface {
		return nil, fmt.Errorf("schema: union %s: want pointer to interface, got %T", name, iface)
	}
	it = it.Elem()
	if len(variants) == 0 {
		return nil, fmt.Errorf("schema: union %s: no variants", name)
	}
	u := &UnionSchema{Name: name, Type: it}
	seen := make(map[reflect.Type]bool, len(variants))
	for _, v := range variants {
		vt := reflect.TypeOf(v)
		if vt == nil || vt.Kind() != reflect.Struct {
			return nil, fmt.Errorf("schema: union %s: variant %T is not a struct", name, v)
		}
		if !reflect.PointerTo(vt).Implements(it) {
			return nil, fmt.Errorf("schema: union %s: *%s does not implement %s", name, vt.Name(), it)
		}
		if seen[vt] {
			return nil, fmt.Errorf("schema: union %s: duplicate variant %s", name, vt.Name())
		}
		seen[vt] = true
		u.variants = append(u.variants, variant{name: vt.Name(), typ: vt})
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.unions[it]; dup {
		return nil, fmt.Errorf("schema: union %s already registered", name)
	}
	r.unions[it] = u
	return u, nil
}

// MustRegisterUnion is like RegisterUnion but panics on error. It is meant
// for package-level declarations.
func (r *Registry) MustRegisterUnion(name string, iface any, variants ...any) *UnionSchema {
	u, err := r.RegisterUnion(name, iface, variants...)
	if err != nil {
		panic(err)
	}
	return u
}

// Union returns the union registered for interface type t.
func (r *Registry) Union(t reflect.Type) (*UnionSchema, bool) {
	return r.union(t)
}

func (r *Registry) union(t reflect.Type) (*UnionSchema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.unions[t]
	return u, ok
}

// Unions returns the registered unions in no particular order.
func (r *Registry) Unions() []*UnionSchema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*UnionSchema, 0, len(r.unions))
	for _, u := range r.unions {
		out = append(out, u)
	}
	return out
}
