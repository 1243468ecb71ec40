package mapfile

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/katalvlaran/worlded/geometry"
	"github.com/katalvlaran/worlded/mapgraph"
)

// Sentinel errors for map documents.
var (
	// ErrMissingField indicates "vertices" or "lines" is absent.
	ErrMissingField = errors.New("mapfile: missing field")

	// ErrMalformedDocument indicates a syntax, structure or type mismatch.
	ErrMalformedDocument = errors.New("mapfile: malformed document")

	// ErrIO indicates the map file could not be read or written.
	ErrIO = errors.New("mapfile: i/o failure")
)

// Field names of the persisted document.
const (
	FieldVertices = "vertices"
	FieldLines    = "lines"
)

// Coordinates and indices are bounded by ±2^53, the range float64 holds exactly.
const schemaText = `{
	"type": "object",
	"properties": {
		"vertices": {"type": "array", "items": {"$ref": "#/$defs/point"}},
		"lines":    {"type": "array", "items": {"$ref": "#/$defs/pair"}}
	},
	"$defs": {
		"point": {
			"type": "array", "minItems": 2, "maxItems": 2,
			"items": {"type": "integer", "minimum": -9007199254740992, "maximum": 9007199254740992}
		},
		"pair": {
			"type": "array", "minItems": 2, "maxItems": 2,
			"items": {"type": "integer", "minimum": 0, "maximum": 9007199254740992}
		}
	}
}`

var docSchema = jsonschema.MustCompileString("worlded-map.schema.json", schemaText)

// Document is the persisted shape of a map.
type Document struct {
	Vertices [][2]int `json:"vertices"`
	Lines    [][2]int `json:"lines"`
}

// Option tunes Decode and Load.
type Option func(*options)

type options struct {
	strict bool
}

// WithStrict makes decoding reject documents whose graph breaks a
// mapgraph invariant (dangling or parallel lines, self-loops, stacked vertices).
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Encode returns the document for s in current index order.
func Encode(s *mapgraph.Store) Document {
	vs := s.Vertices()
	es := s.Edges()
	doc := Document{
		Vertices: make([][2]int, len(vs)),
		Lines:    make([][2]int, len(es)),
	}
	for i, v := range vs {
		doc.Vertices[i] = [2]int{v.X, v.Y}
	}
	for i, e := range es {
		doc.Lines[i] = [2]int{e.A, e.B}
	}

	return doc
}

// Store builds a store from the document without checking invariants.
func (d Document) Store() *mapgraph.Store {
	vs := make([]geometry.Point, len(d.Vertices))
	for i, v := range d.Vertices {
		vs[i] = geometry.Point{X: v[0], Y: v[1]}
	}
	es := make([]mapgraph.Edge, len(d.Lines))
	for i, l := range d.Lines {
		es[i] = mapgraph.Edge{A: l[0], B: l[1]}
	}

	return mapgraph.FromSlices(vs, es)
}

// Marshal encodes s as an indented JSON document.
func Marshal(s *mapgraph.Store) ([]byte, error) {
	data, err := json.MarshalIndent(Encode(s), "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "mapfile: encode")
	}

	return append(data, '\n'), nil
}

// Decode parses data into a new store. On error no store is returned.
func Decode(data []byte, opts ...Option) (*mapgraph.Store, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(ErrMalformedDocument, "%v", err)
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.Wrap(ErrMalformedDocument, "top level is not an object")
	}
	var missing []string
	for _, f := range []string{FieldVertices, FieldLines} {
		if _, ok := obj[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrMissingField, "%q", strings.Join(missing, ", "))
	}
	if err := docSchema.Validate(raw); err != nil {
		return nil, errors.Wrapf(ErrMalformedDocument, "%v", err)
	}

	doc := Document{
		Vertices: pairs(obj[FieldVertices]),
		Lines:    pairs(obj[FieldLines]),
	}
	s := doc.Store()
	if o.strict {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
		}
	}

	return s, nil
}

// pairs converts a schema-checked array of integer pairs.
func pairs(v interface{}) [][2]int {
	items, _ := v.([]interface{})
	out := make([][2]int, len(items))
	for i, item := range items {
		p, _ := item.([]interface{})
		for k := 0; k < 2 && k < len(p); k++ {
			if f, ok := p[k].(float64); ok {
				out[i][k] = int(f)
			}
		}
	}

	return out
}
