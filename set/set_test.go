package set

import (
	"reflect"
	"testing"
)

func TestFromSliceKeepsOrder(t *testing.T) {
	s := FromSlice([]string{"p1", "p2", "p1", "p3", "p2"})
	if s.Size() != 3 {
		t.Fatalf("expected size 3, got %d", s.Size())
	}
	if got := s.ToSlice(); !reflect.DeepEqual(got, []string{"p1", "p2", "p3"}) {
		t.Errorf("ToSlice() = %v, want [p1 p2 p3]", got)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	s := New[string]()
	s.Add("p1")
	s.Add("p1")
	if s.Size() != 1 {
		t.Errorf("expected size 1 after double add, got %d", s.Size())
	}
	if !s.Contains("p1") {
		t.Error("expected set to contain p1")
	}
	if s.Contains("p2") {
		t.Error("did not expect set to contain p2")
	}
}
