// Package indexmap implements the two external interfaces a
// predecoder's experiment driver hands it: a DetectorOrderMap (detector
// id -> its (round, row-major index) position in a syndrome round) and
// an ErrorIndexMap (error id -> the data-qubit positions it flips).
// Both are immutable once loaded and safe to share read-only across the
// process's lifetime. The on-disk format is a small fixed-width binary
// encoding, in the style of the codestream marker segments this package
// is grounded on.
package indexmap

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncated is returned when a file ends in the middle of a record.
var ErrTruncated = errors.New("indexmap: truncated index file")

// Position locates one bit inside a specific round's flat grid.
type Position struct {
	Round uint32
	Index uint32
}

// DetectorOrderMap resolves a detector id to its position. Built once
// per code distance and treated as read-only afterward.
type DetectorOrderMap struct {
	byID map[uint32]Position
}

// NewDetectorOrderMap returns an empty, mutable-until-loaded map.
func NewDetectorOrderMap() *DetectorOrderMap {
	return &DetectorOrderMap{byID: make(map[uint32]Position)}
}

// Set records the position for a detector id.
func (m *DetectorOrderMap) Set(detectorID uint32, pos Position) {
	m.byID[detectorID] = pos
}

// Get returns the position for a detector id, and whether it was found.
func (m *DetectorOrderMap) Get(detectorID uint32) (Position, bool) {
	pos, ok := m.byID[detectorID]
	return pos, ok
}

// Len returns the number of entries.
func (m *DetectorOrderMap) Len() int { return len(m.byID) }

const detectorRecordSize = 4 + 4 + 4 // id, round, index

// Save writes the map as a count header followed by fixed-width
// big-endian records (id, round, index).
func (m *DetectorOrderMap) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.BigEndian, uint32(len(m.byID))); err != nil {
		return fmt.Errorf("indexmap: writing detector count: %w", err)
	}
	for id, pos := range m.byID {
		rec := [3]uint32{id, pos.Round, pos.Index}
		if err := binary.Write(bw, binary.BigEndian, rec); err != nil {
			return fmt.Errorf("indexmap: writing detector record %d: %w", id, err)
		}
	}
	return bw.Flush()
}

// LoadDetectorOrderMap reads a map written by Save.
func LoadDetectorOrderMap(r io.Reader) (*DetectorOrderMap, error) {
	br := bufio.NewReader(r)
	var count uint32
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing count header", ErrTruncated)
		}
		return nil, fmt.Errorf("indexmap: reading detector count: %w", err)
	}
	m := &DetectorOrderMap{byID: make(map[uint32]Position, count)}
	for i := uint32(0); i < count; i++ {
		var rec [3]uint32
		if err := binary.Read(br, binary.BigEndian, &rec); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: record %d/%d", ErrTruncated, i, count)
			}
			return nil, fmt.Errorf("indexmap: reading detector record %d: %w", i, err)
		}
		m.byID[rec[0]] = Position{Round: rec[1], Index: rec[2]}
	}
	return m, nil
}

// ErrorIndexMap resolves an error id to every data-qubit position it
// flips (an error may span multiple rounds' worth of data qubits, e.g.
// a hook fault touching two positions at once).
type ErrorIndexMap struct {
	byID map[uint32][]Position
}

// NewErrorIndexMap returns an empty, mutable-until-loaded map.
func NewErrorIndexMap() *ErrorIndexMap {
	return &ErrorIndexMap{byID: make(map[uint32][]Position)}
}

// Set records the positions an error id flips.
func (m *ErrorIndexMap) Set(errorID uint32, positions []Position) {
	m.byID[errorID] = positions
}

// Get returns the positions for an error id, and whether it was found.
func (m *ErrorIndexMap) Get(errorID uint32) ([]Position, bool) {
	positions, ok := m.byID[errorID]
	return positions, ok
}

// Len returns the number of entries.
func (m *ErrorIndexMap) Len() int { return len(m.byID) }

// Save writes the map as a count header followed by, per error id, its
// id, its position count, and that many (round, index) pairs.
func (m *ErrorIndexMap) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.BigEndian, uint32(len(m.byID))); err != nil {
		return fmt.Errorf("indexmap: writing error count: %w", err)
	}
	for id, positions := range m.byID {
		header := [2]uint32{id, uint32(len(positions))}
		if err := binary.Write(bw, binary.BigEndian, header); err != nil {
			return fmt.Errorf("indexmap: writing error header %d: %w", id, err)
		}
		for _, pos := range positions {
			rec := [2]uint32{pos.Round, pos.Index}
			if err := binary.Write(bw, binary.BigEndian, rec); err != nil {
				return fmt.Errorf("indexmap: writing error position for %d: %w", id, err)
			}
		}
	}
	return bw.Flush()
}

// LoadErrorIndexMap reads a map written by Save.
func LoadErrorIndexMap(r io.Reader) (*ErrorIndexMap, error) {
	br := bufio.NewReader(r)
	var count uint32
	if err := binary.Read(br, binary.BigEndian, &count); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing count header", ErrTruncated)
		}
		return nil, fmt.Errorf("indexmap: reading error count: %w", err)
	}
	m := &ErrorIndexMap{byID: make(map[uint32][]Position, count)}
	for i := uint32(0); i < count; i++ {
		var header [2]uint32
		if err := binary.Read(br, binary.BigEndian, &header); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, fmt.Errorf("%w: header %d/%d", ErrTruncated, i, count)
			}
			return nil, fmt.Errorf("indexmap: reading error header %d: %w", i, err)
		}
		id, n := header[0], header[1]
		positions := make([]Position, n)
		for j := uint32(0); j < n; j++ {
			var rec [2]uint32
			if err := binary.Read(br, binary.BigEndian, &rec); err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					return nil, fmt.Errorf("%w: position %d/%d for error %d", ErrTruncated, j, n, id)
				}
				return nil, fmt.Errorf("indexmap: reading error position %d for %d: %w", j, id, err)
			}
			positions[j] = Position{Round: rec[0], Index: rec[1]}
		}
		m.byID[id] = positions
	}
	return m, nil
}
