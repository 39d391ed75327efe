package source

import (
	"context"
	"testing"
)

type fakeSource struct{}

func (fakeSource) Rows(context.Context) ([][]string, error) { return nil, nil }

func TestRegistry(t *testing.T) {
	Register("fake", func(cfg Config) (Source, error) {
		return fakeSource{}, nil
	})
	defer delete(registry, "fake")

	src, err := New(Config{Type: "fake"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src == nil {
		t.Fatal("expected source instance")
	}

	found := false
	for _, name := range Types() {
		if name == "fake" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected 'fake' in %v", Types())
	}
}

func TestNewUnknownType(t *testing.T) {
	if _, err := New(Config{Type: "carrier-pigeon"}); err == nil {
		t.Fatal("expected error for unknown source type")
	}
}
