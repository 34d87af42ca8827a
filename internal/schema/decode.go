package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
)

// Decode decodes raw into dst, which must be a non-nil pointer to a struct
// or to a registered union interface.
func (r *Registry) Decode(raw []byte, dst any) error {
	return r.DecodeAt(nil, raw, dst)
}

// DecodeAt is Decode with errors located under path. Callers that peel a
// value out of a larger document use it to keep error paths absolute.
func (r *Registry) DecodeAt(path Path, raw []byte, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("schema: decode: want non-nil pointer, got %T", dst)
	}
	v := rv.Elem()
	var shape Shape
	switch v.Kind() {
	case reflect.Struct:
		shape = Shape{Kind: KindObject, Type: v.Type()}
	case reflect.Interface:
		shape = Shape{Kind: KindUnion, Type: v.Type()}
	default:
		var err error
		if shape, err = r.shapeOf(v.Type()); err != nil {
			return fmt.Errorf("schema: decode: %w", err)
		}
	}
	if isNull(raw) {
		return &ShapeError{Path: path.String(), Want: shape.String(), Got: rawKind(raw)}
	}
	return r.value(path, raw, v, &shape)
}

// value decodes raw into v according to shape. A null raw value leaves v as
// is, which for every declared field means absent.
func (r *Registry) value(path Path, raw json.RawMessage, v reflect.Value, shape *Shape) error {
	if isNull(raw) {
		return nil
	}
	switch shape.Kind {
	case KindScalar:
		return scalar(path, raw, v, shape)
	case KindObject:
		obj, err := r.Object(shape.Type)
		if err != nil {
			return err
		}
		target := v
		if shape.Ptr {
			target = reflect.New(shape.Type).Elem()
		}
		if err := r.object(path, raw, target, obj, matchAny); err != nil {
			return err
		}
		if shape.Ptr {
			v.Set(target.Addr())
		}
		return nil
	case KindList:
		return r.list(path, raw, v, shape)
	case KindUnion:
		u, ok := r.union(shape.Type)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnregistered, shape.Type)
		}
		m, err := r.resolve(path, u, raw)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(m.Value))
		return nil
	}
	return fmt.Errorf("schema: %s: unknown shape %s", path, shape.Kind)
}

func scalar(path Path, raw json.RawMessage, v reflect.Value, shape *Shape) error {
	target := reflect.New(shape.Type)
	if err := json.Unmarshal(raw, target.Interface()); err != nil {
		return &ShapeError{Path: path.String(), Want: describeType(shape.Type), Got: rawKind(raw), Err: err}
	}
	if shape.Ptr {
		v.Set(target)
	} else {
		v.Set(target.Elem())
	}
	return nil
}

func (r *Registry) list(path Path, raw json.RawMessage, v reflect.Value, shape *Shape) error {
	if rawKind(raw) != "array" {
		return &ShapeError{Path: path.String(), Want: "array", Got: rawKind(raw)}
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return &ShapeError{Path: path.String(), Want: "array", Got: rawKind(raw), Err: err}
	}
	out := reflect.MakeSlice(shape.Type, len(items), len(items))
	for i, item := range items {
		if err := r.value(path.Index(i), item, out.Index(i), shape.Elem); err != nil {
			return err
		}
	}
	v.Set(out)
	return nil
}

// matchMode selects how strictly object checks raw against a schema.
type matchMode int

const (
	// matchAny ignores undeclared keys; plain nested objects use it.
	matchAny matchMode = iota
	// matchCoverage rejects undeclared keys.
	matchCoverage
	// matchRequired is matchCoverage plus every required key present.
	matchRequired
)

// object decodes raw into the struct value v. Union candidates are tested
// with matchCoverage or matchRequired.
func (r *Registry) object(path Path, raw json.RawMessage, v reflect.Value, s *ObjectSchema, mode matchMode) error {
	fields, err := splitObject(path, raw)
	if err != nil {
		return err
	}
	if mode >= matchCoverage {
		for _, key := range sortedKeys(fields) {
			if _, ok := s.byKey[key]; !ok && !isNull(fields[key]) {
				return &RejectionError{Variant: s.Name, Reason: "unexplained field " + strconv.Quote(key)}
			}
		}
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		fr, ok := fields[f.Key]
		if !ok || isNull(fr) {
			if mode == matchRequired && f.Required {
				return &RejectionError{Variant: s.Name, Reason: "missing required field " + strconv.Quote(f.Key)}
			}
			continue
		}
		fp := path.Key(f.Key)
		if f.Const != "" {
			if err := checkConst(fp, fr, f.Const); err != nil {
				return err
			}
		}
		if err := r.value(fp, fr, v.FieldByIndex(f.index), &f.Shape); err != nil {
			return err
		}
	}
	return nil
}

func checkConst(path Path, raw json.RawMessage, want string) error {
	var got string
	if err := json.Unmarshal(raw, &got); err != nil {
		return &ShapeError{Path: path.String(), Want: strconv.Quote(want), Got: rawKind(raw), Err: err}
	}
	if got != want {
		return &ShapeError{Path: path.String(), Want: strconv.Quote(want), Got: strconv.Quote(got)}
	}
	return nil
}

func splitObject(path Path, raw json.RawMessage) (map[string]json.RawMessage, error) {
	if rawKind(raw) != "object" {
		return nil, &ShapeError{Path: path.String(), Want: "object", Got: rawKind(raw)}
	}
	var fields map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&fields); err != nil {
		return nil, &ShapeError{Path: path.String(), Want: "object", Got: "malformed JSON", Err: err}
	}
	return fields, nil
}
