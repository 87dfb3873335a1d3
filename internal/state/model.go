package state

import (
	"bytes"
	"io"

	"github.com/google/uuid"
)

// Point is a position in surface-local pixel coordinates.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Snapshot is an encoded copy of the whole raster surface at one instant.
// The encoded bytes are never mutated after creation.
type Snapshot struct {
	ID   uuid.UUID
	data []byte
}

// NewSnapshot copies data into a new Snapshot with a fresh ID.
func NewSnapshot(data []byte) Snapshot {
	buf := make([]byte, len(data))
	copy(buf, data)
	return Snapshot{ID: uuid.New(), data: buf}
}

// Reader returns a reader over the encoded bytes.
func (s Snapshot) Reader() io.Reader { return bytes.NewReader(s.data) }

// Len is the size of the encoding in bytes.
func (s Snapshot) Len() int { return len(s.data) }

// IsZero reports whether s was never filled in.
func (s Snapshot) IsZero() bool { return s.data == nil }
