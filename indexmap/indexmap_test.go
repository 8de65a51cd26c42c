package indexmap

import (
	"bytes"
	"errors"
	"testing"
)

func TestDetectorOrderMapRoundTrip(t *testing.T) {
	m := NewDetectorOrderMap()
	m.Set(0, Position{Round: 0, Index: 0})
	m.Set(7, Position{Round: 2, Index: 13})

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadDetectorOrderMap(&buf)
	if err != nil {
		t.Fatalf("LoadDetectorOrderMap: %v", err)
	}
	if loaded.Len() != m.Len() {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), m.Len())
	}
	pos, ok := loaded.Get(7)
	if !ok || pos != (Position{Round: 2, Index: 13}) {
		t.Fatalf("Get(7) = %v, %v; want {2 13}, true", pos, ok)
	}
}

func TestDetectorOrderMapLoadTruncated(t *testing.T) {
	var buf bytes.Buffer
	m := NewDetectorOrderMap()
	m.Set(1, Position{Round: 0, Index: 0})
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-2])
	if _, err := LoadDetectorOrderMap(truncated); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestErrorIndexMapRoundTrip(t *testing.T) {
	m := NewErrorIndexMap()
	m.Set(3, []Position{{Round: 0, Index: 1}, {Round: 1, Index: 2}})
	m.Set(4, nil)

	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadErrorIndexMap(&buf)
	if err != nil {
		t.Fatalf("LoadErrorIndexMap: %v", err)
	}
	positions, ok := loaded.Get(3)
	if !ok || len(positions) != 2 || positions[1] != (Position{Round: 1, Index: 2}) {
		t.Fatalf("Get(3) = %v, %v; want 2 positions ending in {1 2}", positions, ok)
	}
	if _, ok := loaded.Get(4); !ok {
		t.Fatalf("expected error id 4 present with zero positions")
	}
}

func TestErrorIndexMapLoadTruncated(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorIndexMap()
	m.Set(1, []Position{{Round: 0, Index: 0}})
	if err := m.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-2])
	if _, err := LoadErrorIndexMap(truncated); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
