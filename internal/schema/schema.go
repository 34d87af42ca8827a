// Package schema describes wire objects as declared field lists and decodes
// raw JSON against them.
//
// A wire object is a Go struct. Its json tags give the wire keys; an optional
// `schema` tag adds resolver hints:
//
//	Status *string `json:"status,omitempty" schema:"required,const=creator"`
//
// `required` marks a key a union candidate must carry to be chosen and
// `const=<v>` marks a literal discriminant. Plain decoding treats every field
// as optional.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Kind is the expected wire shape of a field.
type Kind int

const (
	KindScalar Kind = iota
	KindObject
	KindList
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindUnion:
		return "union"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape describes what a field holds. Type is the element type: the struct
// for objects, the interface for unions, the value type for scalars.
type Shape struct {
	Kind Kind
	Type reflect.Type
	Ptr  bool
	Elem *Shape
}

func (s *Shape) String() string {
	switch s.Kind {
	case KindList:
		return "[]" + s.Elem.String()
	case KindScalar:
		return describeType(s.Type)
	}
	return s.Type.Name()
}

// Field is one declared field of an object.
type Field struct {
	Name     string
	Key      string
	Required bool
	Const    string
	Shape    Shape

	index []int
}

// ObjectSchema is the declared field list of a wire object.
type ObjectSchema struct {
	Name   string
	Type   reflect.Type
	Fields []Field

	byKey map[string]int
}

// Field returns the declared field for a wire key.
func (s *ObjectSchema) Field(key string) (*Field, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return nil, false
	}
	return &s.Fields[i], true
}

// Keys returns the declared wire keys in declaration order.
func (s *ObjectSchema) Keys() []string {
	keys := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		keys[i] = f.Key
	}
	return keys
}

// RequiredKeys returns the keys marked required.
func (s *ObjectSchema) RequiredKeys() []string {
	var keys []string
	for _, f := range s.Fields {
		if f.Required {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

func (r *Registry) buildObject(t reflect.Type) (*ObjectSchema, error) {
	s := &ObjectSchema{Name: t.Name(), Type: t, byKey: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		key, ok := wireKey(sf)
		if !ok {
			continue
		}
		shape, err := r.shapeOf(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t.Name(), sf.Name, err)
		}
		f := Field{Name: sf.Name, Key: key, Shape: shape, index: sf.Index}
		if err := parseSchemaTag(sf.Tag.Get("schema"), &f); err != nil {
			return nil, fmt.Errorf("schema: %s.%s: %w", t.Name(), sf.Name, err)
		}
		if _, dup := s.byKey[key]; dup {
			return nil, fmt.Errorf("schema: %s: duplicate wire key %q", t.Name(), key)
		}
		s.byKey[key] = len(s.Fields)
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

func (r *Registry) shapeOf(t reflect.Type) (Shape, error) {
	switch t.Kind() {
	case reflect.Interface:
		if _, ok := r.union(t); !ok {
			return Shape{}, fmt.Errorf("%w: interface %s", ErrUnregistered, t)
		}
		return Shape{Kind: KindUnion, Type: t}, nil
	case reflect.Pointer:
		elem := t.Elem()
		if elem.Kind() == reflect.Struct && !reflect.PointerTo(elem).Implements(unmarshalerType) {
			return Shape{Kind: KindObject, Type: elem, Ptr: true}, nil
		}
		if elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Slice || elem.Kind() == reflect.Interface {
			return Shape{}, fmt.Errorf("unsupported field type %s", t)
		}
		return Shape{Kind: KindScalar, Type: elem, Ptr: true}, nil
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Shape{Kind: KindScalar, Type: t}, nil
		}
		elem, err := r.shapeOf(t.Elem())
		if err != nil {
			return Shape{}, err
		}
		return Shape{Kind: KindList, Type: t, Elem: &elem}, nil
	case reflect.Struct:
		if reflect.PointerTo(t).Implements(unmarshalerType) {
			return Shape{Kind: KindScalar, Type: t}, nil
		}
		return Shape{Kind: KindObject, Type: t}, nil
	case reflect.Map, reflect.Chan, reflect.Func:
		return Shape{}, fmt.Errorf("unsupported field type %s", t)
	}
	return Shape{Kind: KindScalar, Type: t}, nil
}

func wireKey(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "-" {
		return "", false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, true
}

func parseSchemaTag(tag string, f *Field) error {
	if tag == "" {
		return nil
	}
	for _, opt := range strings.Split(tag, ",") {
		switch {
		case opt == "required":
			f.Required = true
		case strings.HasPrefix(opt, "const="):
			if f.Shape.Kind != KindScalar || f.Shape.Type.Kind() != reflect.String {
				return fmt.Errorf("const on non-string field")
			}
			f.Const = strings.TrimPrefix(opt, "const=")
		default:
			return fmt.Errorf("unknown schema option %q", opt)
		}
	}
	return nil
}

func describeType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if t.Name() != "" && t.PkgPath() != "" {
			return t.Name()
		}
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
