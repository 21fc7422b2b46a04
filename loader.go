package rasterbuilder

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

type Profile int

const (
	ProfileGray Profile = iota
	ProfileYCbCr
)

func (p Profile) String() string {
	switch p {
	case ProfileYCbCr:
		return "ycbcr"
	default:
		return "gray"
	}
}

// LayerSet holds the decoded input planes. All layers share the same
// dimensions; the profile is decided once at load time and never re-inspected
// downstream.
type LayerSet struct {
	Profile Profile
	Layers  []*mat.Dense
	Rows    int
	Cols    int
}

// Load reads a JSON file holding a depth-3 nested array (layers, then rows,
// then columns of numeric samples) and decodes it into a LayerSet.
func Load(path string) (*LayerSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	var raw [][][]float64
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if dec.More() {
		return nil, &ParseError{Path: path, Err: errors.New("trailing data after layer array")}
	}

	ls, err := NewLayerSet(raw)
	if err != nil {
		var upe *UnsupportedProfileError
		if errors.As(err, &upe) {
			return nil, err
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return ls, nil
}

// NewLayerSet validates a decoded nested array and converts each layer to a
// dense matrix.
func NewLayerSet(raw [][][]float64) (*LayerSet, error) {
	if n := len(raw); n != 1 && n != 3 {
		return nil, &UnsupportedProfileError{Layers: n}
	}
	rows := len(raw[0])
	if rows == 0 {
		return nil, errors.New("layer 0 has no rows")
	}
	cols := len(raw[0][0])
	if cols == 0 {
		return nil, errors.New("layer 0 has empty rows")
	}

	layers := make([]*mat.Dense, len(raw))
	for li, layer := range raw {
		if len(layer) != rows {
			return nil, fmt.Errorf("layer %d has %d rows, layer 0 has %d", li, len(layer), rows)
		}
		data := make([]float64, 0, rows*cols)
		for ri, row := range layer {
			if len(row) != cols {
				return nil, fmt.Errorf("layer %d row %d has %d columns, want %d", li, ri, len(row), cols)
			}
			data = append(data, row...)
		}
		layers[li] = mat.NewDense(rows, cols, data)
	}

	profile := ProfileGray
	if len(layers) == 3 {
		profile = ProfileYCbCr
	}
	return &LayerSet{Profile: profile, Layers: layers, Rows: rows, Cols: cols}, nil
}
