package mapping

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X int
	Y int
}

type place struct {
	ID      int64
	Name    string
	Rating  float64
	Open    bool
	Created time.Time
	Tags    []string
	Origin  *point
	Path    []point
	Named   []point
}

type detailedPlace struct {
	place
	Note string
}

var (
	pointShape    = NewShape[point]("point")
	placeShape    = NewShape[place]("place")
	detailedShape = NewShape[detailedPlace]("detailedPlace")
)

func init() {
	pointShape.Define(
		Int("x", func(p *point) *int { return &p.X }),
		Int("y", func(p *point) *int { return &p.Y }),
	)
	placeShape.Define(
		Long("id", func(p *place) *int64 { return &p.ID }),
		String("name", func(p *place) *string { return &p.Name }),
		Double("rating", func(p *place) *float64 { return &p.Rating }),
		Bool("open", func(p *place) *bool { return &p.Open }),
		Timestamp("createdAt", func(p *place) *time.Time { return &p.Created }),
		Strings("tags", func(p *place) *[]string { return &p.Tags }),
		Object("origin", pointShape, func(p *place) **point { return &p.Origin }),
		Array("path", pointShape, func(p *place) *[]point { return &p.Path }),
		Hash("named", pointShape, func(p *place) *[]point { return &p.Named }),
	)
	detailedShape.Define(
		Embed(placeShape, func(d *detailedPlace) *place { return &d.place }),
		String("note", func(d *detailedPlace) *string { return &d.Note }),
	)
}

func mustParse(t *testing.T, s string) any {
	t.Helper()
	tree, err := Parse([]byte(s))
	require.NoError(t, err)
	return tree
}

func strict() *Mapper {
	return NewMapper(false, zerolog.Nop())
}

func tolerant() *Mapper {
	return NewMapper(true, zerolog.Nop())
}

func TestMapPopulatesDeclaredFields(t *testing.T) {
	raw := mustParse(t, `{
		"id": 5104,
		"name": "Clinton St. Baking Co.",
		"rating": 9.1,
		"open": true,
		"createdAt": 1306252800,
		"tags": ["brunch", "pancakes"],
		"origin": {"x": 1, "y": 2},
		"path": [{"x": 3}, {"y": 4}],
		"named": {"b": {"x": 2}, "a": {"x": 1}},
		"unknown": {"ignored": true}
	}`)

	got, err := Map(strict(), placeShape, raw)
	require.NoError(t, err)

	assert.Equal(t, &place{
		ID:      5104,
		Name:    "Clinton St. Baking Co.",
		Rating:  9.1,
		Open:    true,
		Created: time.Unix(1306252800, 0).UTC(),
		Tags:    []string{"brunch", "pancakes"},
		Origin:  &point{X: 1, Y: 2},
		Path:    []point{{X: 3}, {Y: 4}},
		Named:   []point{{X: 1}, {X: 2}},
	}, got)
}

func TestMapAbsentFieldsAreZero(t *testing.T) {
	// Absence is tolerated in both modes; only type mismatches depend on the flag.
	for name, m := range map[string]*Mapper{"strict": strict(), "tolerant": tolerant()} {
		t.Run(name, func(t *testing.T) {
			got, err := Map(m, placeShape, mustParse(t, `{"name": "only", "origin": null, "tags": null}`))
			require.NoError(t, err)
			assert.Equal(t, &place{Name: "only"}, got)
		})
	}
}

func TestMapNumericStrings(t *testing.T) {
	got, err := Map(strict(), placeShape, mustParse(t, `{"id": "77", "rating": "4.5", "origin": {"x": "10"}}`))
	require.NoError(t, err)
	assert.Equal(t, int64(77), got.ID)
	assert.InDelta(t, 4.5, got.Rating, 1e-9)
	assert.Equal(t, 10, got.Origin.X)
}

func TestMapTypeMismatch(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantPath  string
		coercion  bool
		tolerated *place
	}{
		{
			name:      "primitive",
			input:     `{"name": "a", "id": "many"}`,
			wantPath:  "id",
			coercion:  true,
			tolerated: &place{Name: "a"},
		},
		{
			name:      "nested primitive",
			input:     `{"name": "a", "origin": {"x": "left", "y": 3}}`,
			wantPath:  "origin.x",
			coercion:  true,
			tolerated: &place{Name: "a", Origin: &point{Y: 3}},
		},
		{
			name:      "nested container",
			input:     `{"name": "a", "origin": "here"}`,
			wantPath:  "origin",
			tolerated: &place{Name: "a"},
		},
		{
			name:      "array element",
			input:     `{"name": "a", "path": [{"x": 1}, 7]}`,
			wantPath:  "path[1]",
			tolerated: &place{Name: "a"},
		},
		{
			name:      "string array element",
			input:     `{"name": "a", "tags": ["ok", {"no": 1}]}`,
			wantPath:  "tags[1]",
			coercion:  true,
			tolerated: &place{Name: "a"},
		},
		{
			name:      "hash given array",
			input:     `{"name": "a", "named": []}`,
			wantPath:  "named",
			tolerated: &place{Name: "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/strict", func(t *testing.T) {
			got, err := Map(strict(), placeShape, mustParse(t, tt.input))
			require.Error(t, err)
			assert.Nil(t, got)

			if tt.coercion {
				var ce *CoercionError
				require.ErrorAs(t, err, &ce)
				assert.Equal(t, tt.wantPath, ce.Field)
			} else {
				var se *StructureError
				require.ErrorAs(t, err, &se)
				assert.Equal(t, tt.wantPath, se.Path)
			}
		})

		t.Run(tt.name+"/tolerant", func(t *testing.T) {
			got, err := Map(tolerant(), placeShape, mustParse(t, tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.tolerated, got)
		})
	}
}

func TestMapRootMustBeObject(t *testing.T) {
	for _, m := range []*Mapper{strict(), tolerant()} {
		for _, input := range []string{`[]`, `"venue"`, `12`, `null`} {
			_, err := Map(m, placeShape, mustParse(t, input))
			var se *StructureError
			require.ErrorAs(t, err, &se, "input %s", input)
			assert.Equal(t, "place", se.Shape)
			assert.Equal(t, "object", se.Expected)
		}
	}
}

func TestMapIsIdempotent(t *testing.T) {
	raw := mustParse(t, `{"id": 1, "path": [{"x": 1}], "named": {"z": {"y": 9}, "k": {"y": 8}}}`)

	first, err := Map(strict(), placeShape, raw)
	require.NoError(t, err)
	second, err := Map(strict(), placeShape, raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

func TestMapArray(t *testing.T) {
	got, err := MapArray(strict(), pointShape, mustParse(t, `[{"x": 3}, {"x": 1}, {"x": 2}]`))
	require.NoError(t, err)
	assert.Equal(t, []point{{X: 3}, {X: 1}, {X: 2}}, got)

	empty, err := MapArray(strict(), pointShape, mustParse(t, `[]`))
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = MapArray(tolerant(), pointShape, mustParse(t, `{"x": 1}`))
	var se *StructureError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "array", se.Expected)

	_, err = MapArray(strict(), pointShape, mustParse(t, `[{"x": 1}, "two"]`))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "[1]", se.Path)
}

func TestMapHashSortsByKey(t *testing.T) {
	got, err := MapHash(strict(), pointShape, mustParse(t, `{"a": {"x": 1}, "b": {"x": 2}}`))
	require.NoError(t, err)
	assert.Equal(t, []point{{X: 1}, {X: 2}}, got)

	got, err = MapHash(strict(), pointShape, mustParse(t, `{"b": {"x": 2}, "a": {"x": 1}, "10": {"x": 10}}`))
	require.NoError(t, err)
	assert.Equal(t, []point{{X: 10}, {X: 1}, {X: 2}}, got)

	_, err = MapHash(strict(), pointShape, mustParse(t, `[{"x": 1}]`))
	var se *StructureError
	require.ErrorAs(t, err, &se)
}

func TestMapEmbeddedShape(t *testing.T) {
	got, err := Map(strict(), detailedShape, mustParse(t, `{"id": 3, "name": "Kiasma", "note": "closed mondays"}`))
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Kiasma", got.Name)
	assert.Equal(t, "closed mondays", got.Note)

	_, err = Map(strict(), detailedShape, mustParse(t, `{"id": "x"}`))
	var ce *CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "id", ce.Field)
}

func TestShapeDefinition(t *testing.T) {
	assert.Equal(t, "place", placeShape.Name())
	assert.Equal(t, []string{"id", "name", "rating", "open", "createdAt", "tags", "origin", "path", "named"}, placeShape.Keys())
	assert.Equal(t, []string{"note"}, detailedShape.Keys())

	assert.Panics(t, func() {
		pointShape.Define()
	})

	undefined := NewShape[point]("undefined")
	assert.Panics(t, func() {
		_, _ = Map(strict(), undefined, map[string]any{})
	})
}

func TestShapeDecoder(t *testing.T) {
	decode := pointShape.Decoder()

	v, err := decode(strict(), mustParse(t, `{"x": 4}`))
	require.NoError(t, err)
	assert.Equal(t, &point{X: 4}, v)

	v, err = decode(strict(), mustParse(t, `[]`))
	require.Error(t, err)
	assert.Nil(t, v)
}

func TestParse(t *testing.T) {
	tree, err := Parse([]byte(`{"n": 12345678901234567890}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("12345678901234567890"), tree.(map[string]any)["n"])

	_, err = Parse([]byte(`{"a": 1} {"b": 2}`))
	assert.ErrorIs(t, err, ErrTrailingData)

	_, err = Parse([]byte(`{"a": `))
	assert.Error(t, err)

	_, err = Parse([]byte("  [1]\n"))
	assert.NoError(t, err)
}
