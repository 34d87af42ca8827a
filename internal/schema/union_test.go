package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shape interface{ isShape() }

// point and circle overlap: every point is also a valid circle prefix.
type circle struct {
	X      *float64 `json:"x,omitempty" schema:"required"`
	Y      *float64 `json:"y,omitempty" schema:"required"`
	Radius *float64 `json:"radius,omitempty" schema:"required"`
	Label  *string  `json:"label,omitempty"`
}

type point struct {
	X     *float64 `json:"x,omitempty" schema:"required"`
	Y     *float64 `json:"y,omitempty" schema:"required"`
	Label *string  `json:"label,omitempty"`
}

type blank struct {
	Label *string `json:"label,omitempty"`
}

func (*circle) isShape() {}
func (*point) isShape()  {}
func (*blank) isShape()  {}

func TestResolveOrderAndCoverage(t *testing.T) {
	r := NewRegistry()
	u := r.MustRegisterUnion("Shape", (*shape)(nil), circle{}, point{}, blank{})
	assert.Equal(t, []string{"circle", "point", "blank"}, u.Variants())

	tests := []struct {
		name    string
		in      string
		variant string
		index   int
	}{
		{name: "all circle fields", in: `{"x": 1, "y": 2, "radius": 3}`, variant: "circle", index: 0},
		{name: "required keys prefer point over circle", in: `{"x": 1, "y": 2, "label": "p"}`, variant: "point", index: 1},
		{name: "subset of circle keys without required", in: `{"x": 1, "label": "l"}`, variant: "circle", index: 0},
		{name: "only radius", in: `{"radius": 2}`, variant: "circle", index: 0},
		{name: "null radius is absent", in: `{"x": 1, "y": 2, "radius": null}`, variant: "point", index: 1},
		{name: "only optional fields", in: `{"label": "l"}`, variant: "blank", index: 2},
		{name: "empty object takes first without required fields", in: `{}`, variant: "blank", index: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Resolve(u, []byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.variant, m.Variant)
			assert.Equal(t, tt.index, m.Index)
			_, ok := m.Value.(shape)
			assert.True(t, ok)
		})
	}
}

// ring is only reachable by full coverage: its keys are a superset of
// nothing declared before it.
type ring struct {
	X     *float64 `json:"x,omitempty" schema:"required"`
	Inner *float64 `json:"inner,omitempty" schema:"required"`
	Outer *float64 `json:"outer,omitempty" schema:"required"`
}

func (*ring) isShape() {}

func TestResolveStrictSubsetOfOneCandidate(t *testing.T) {
	r := NewRegistry()
	u := r.MustRegisterUnion("Shape", (*shape)(nil), point{}, circle{}, ring{})

	tests := []struct {
		in      string
		variant string
	}{
		{in: `{"inner": 1}`, variant: "ring"},
		{in: `{"x": 1, "outer": 3}`, variant: "ring"},
		{in: `{"radius": 1, "label": "c"}`, variant: "circle"},
		{in: `{"x": 1}`, variant: "point"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, err := r.Resolve(u, []byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.variant, m.Variant)
		})
	}

	_, err := r.Resolve(u, []byte(`{"inner": 1, "label": "x"}`))
	var nm *NoMatchingVariantError
	require.ErrorAs(t, err, &nm)
	require.Len(t, nm.Reasons, 3)
	assert.Contains(t, nm.Reasons[2].Error(), `unexplained field "label"`)
}

func TestResolveIsDeterministic(t *testing.T) {
	r := NewRegistry()
	u := r.MustRegisterUnion("Shape", (*shape)(nil), point{}, circle{}, blank{})
	in := []byte(`{"x": 0, "y": 0, "label": "origin"}`)
	first, err := r.Resolve(u, in)
	require.NoError(t, err)
	for range 50 {
		m, err := r.Resolve(u, in)
		require.NoError(t, err)
		assert.Equal(t, first.Variant, m.Variant)
	}
	assert.Equal(t, "point", first.Variant)
}

func TestResolveDiscriminant(t *testing.T) {
	r := NewRegistry()
	u := r.MustRegisterUnion("Pet", (*pet)(nil), cat{}, dog{})

	m, err := r.Resolve(u, []byte(`{"kind": "dog"}`))
	require.NoError(t, err)
	assert.Equal(t, "dog", m.Variant)
	d := m.Value.(*dog)
	require.NotNil(t, d.Kind)
	assert.Equal(t, "dog", *d.Kind)

	// Without the discriminant the first fully covering candidate wins.
	m, err = r.Resolve(u, []byte(`{"breed": "pug"}`))
	require.NoError(t, err)
	assert.Equal(t, "dog", m.Variant)
	m, err = r.Resolve(u, []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "cat", m.Variant)
}

func TestResolveNoMatch(t *testing.T) {
	r := NewRegistry()
	u := r.MustRegisterUnion("Pet", (*pet)(nil), cat{}, dog{})

	raw := []byte(`{"kind": "cat", "breed": "siamese"}`)
	_, err := r.Resolve(u, raw)
	var nm *NoMatchingVariantError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "Pet", nm.Union)
	assert.Equal(t, []string{"cat", "dog"}, nm.Attempted)
	assert.JSONEq(t, string(raw), string(nm.Raw))
	require.Len(t, nm.Reasons, 2)
	assert.Contains(t, nm.Reasons[0].Error(), `unexplained field "breed"`)

	// dog is rejected by its discriminant, which surfaces as a shape error.
	var se *ShapeError
	require.True(t, errors.As(nm.Reasons[1], &se))
	assert.Equal(t, "kind", se.Path)
	assert.Equal(t, `"dog"`, se.Want)
}

func TestResolveNonObject(t *testing.T) {
	r := NewRegistry()
	u := r.MustRegisterUnion("Pet", (*pet)(nil), cat{}, dog{})
	_, err := r.Resolve(u, []byte(`"cat"`))
	var se *ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "string", se.Got)
}

func TestResolveNestedPath(t *testing.T) {
	r := newTestRegistry(t)
	var p person
	err := r.Decode([]byte(`{"friends": [{"pet": {"kind": "fish"}}]}`), &p)
	var nm *NoMatchingVariantError
	require.ErrorAs(t, err, &nm)
	assert.Equal(t, "friends[0].pet", nm.Path)
	assert.Contains(t, err.Error(), "friends[0].pet (Pet)")
}

func TestDecodeUnionGeneric(t *testing.T) {
	r := newTestRegistry(t)
	var p pet
	m, err := DecodeUnion(r, []byte(`{"kind": "cat", "lives": 9}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "cat", m.Variant)
	c, ok := p.(*cat)
	require.True(t, ok)
	assert.Equal(t, 9, *c.Lives)

	var unknown shape
	_, err = DecodeUnion(r, []byte(`{}`), &unknown)
	assert.ErrorIs(t, err, ErrUnregistered)
}

func TestDecodeIntoUnionPointer(t *testing.T) {
	r := newTestRegistry(t)
	var p pet
	require.NoError(t, r.Decode([]byte(`{"kind": "dog", "breed": "pug"}`), &p))
	assert.IsType(t, &dog{}, p)
}
