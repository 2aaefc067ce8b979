package employees

import (
	"context"
	"errors"
	"testing"
)

func TestMalformedIDsTreatedAsNotFound(t *testing.T) {
	s := NewStore(nil)

	if err := s.Delete(context.Background(), "abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete with malformed id: expected ErrNotFound, got %v", err)
	}

	_, err := s.Update(context.Background(), "not-a-uuid", "Name", "n@example.com", "Engineer", "Platform")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("update with malformed id: expected ErrNotFound, got %v", err)
	}
}
