package yad

import (
	"fmt"

	"github.com/KingsBeCattz/yad/errs"
	"github.com/KingsBeCattz/yad/internal/collision"
	"github.com/KingsBeCattz/yad/internal/pool"
	"github.com/KingsBeCattz/yad/tag"
)

// Container is the top-level YAD record: a version header plus an
// insertion-ordered sequence of Rows, per §4.7. Rows are looked up by name
// through the same internal/collision.Tracker discipline as Row's keys
// (§4.6), for duplicate row-name rejection.
type Container struct {
	version Version
	rows    []*Row
	tracker *collision.Tracker
}

// NewContainer creates an empty Container with the given version header.
func NewContainer(version Version) *Container {
	return &Container{
		version: version,
		rows:    make([]*Row, 0),
		tracker: collision.NewTracker(),
	}
}

// Version returns the container's version header.
func (c *Container) Version() Version { return c.version }

// AddRow adds r to the container. It returns errs.ErrDuplicateRowName if a
// row with the same name is already present; the existing row is left
// unchanged.
func (c *Container) AddRow(r *Row) error {
	if _, ok := c.tracker.Track(r.name); !ok {
		return fmt.Errorf("%w: %q", errs.ErrDuplicateRowName, r.name)
	}
	c.rows = append(c.rows, r)
	return nil
}

// Row looks up a row by name. ok is false if no row with that name exists.
func (c *Container) Row(name string) (*Row, bool) {
	idx, ok := c.tracker.Index(name)
	if !ok {
		return nil, false
	}
	return c.rows[idx], true
}

// Rows returns the container's rows in insertion order. The returned slice
// is owned by the caller.
func (c *Container) Rows() []*Row {
	cp := make([]*Row, len(c.rows))
	copy(cp, c.rows)
	return cp
}

// Stats summarizes a Container's shape without requiring callers to
// re-walk the decoded tree. It is a pure in-memory convenience with no
// effect on the wire format, modeled on the teacher's habit of exposing
// blob shape (MetricCount, offsets) directly off the header.
type Stats struct {
	RowCount    int
	KeyCount    int
	EncodedSize int
}

// Stats computes a Stats snapshot for c. EncodedSize re-derives the would-be
// encoded byte length by running the encoder, so every call to Stats costs
// one full encode, even when only RowCount/KeyCount are read; an encode
// error is returned with a zero Stats.
func (c *Container) Stats() (Stats, error) {
	s := Stats{RowCount: len(c.rows)}
	for _, r := range c.rows {
		s.KeyCount += r.Len()
	}

	data, err := Encode(c)
	if err != nil {
		return Stats{}, err
	}
	s.EncodedSize = len(data)
	return s, nil
}

// encodeContainer appends the wire form of c to buf: 0xF0 · major · minor ·
// patch · beta · (row)*, per §4.7.
func encodeContainer(buf *pool.ByteBuffer, c *Container) error {
	buf.MustWriteByte(tag.VersionHeader)
	buf.MustWriteByte(c.version.Major)
	buf.MustWriteByte(c.version.Minor)
	buf.MustWriteByte(c.version.Patch)
	buf.MustWriteByte(c.version.Beta)

	for _, r := range c.rows {
		if err := encodeRow(buf, r); err != nil {
			return err
		}
	}
	return nil
}

// decodeContainer decodes a Container from the whole of data, starting at
// the mandatory 0xF0 version header and consuming rows until end-of-input.
func decodeContainer(data []byte) (*Container, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", errs.ErrMalformedVersionHeader)
	}
	if data[0] != tag.VersionHeader {
		return nil, fmt.Errorf("%w: missing 0xF0 marker", errs.ErrMalformedVersionHeader)
	}
	if len(data) < 5 {
		return nil, errs.ErrUnexpectedEOF
	}

	c := NewContainer(Version{
		Major: data[1],
		Minor: data[2],
		Patch: data[3],
		Beta:  data[4],
	})

	pos := 5
	for pos < len(data) {
		if data[pos] != tag.RowStart {
			return nil, fmt.Errorf("%w: expected row start or EOF, got 0x%02X", errs.ErrMalformedContainer, data[pos])
		}

		r, next, err := decodeRow(data, pos)
		if err != nil {
			return nil, err
		}
		if err := c.AddRow(r); err != nil {
			return nil, err
		}
		pos = next
	}

	return c, nil
}
