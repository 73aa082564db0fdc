package netcore

import "testing"

func TestSchema_RemoveKeepsRemainingEntriesReachable(t *testing.T) {
	s := newSchema("default", "accepted")
	x := s.append("x")
	y := s.append("y")

	s.remove(x)

	if s.has(x) {
		t.Fatal("x should be gone")
	}
	if !s.has(y) {
		t.Fatal("y should survive removal of an unrelated entry")
	}
	if !s.has(s.defaultID) || !s.has(s.acceptedID) {
		t.Fatal("default/accepted must survive unrelated removal")
	}
	name, ok := s.nameOf(y)
	if !ok || name != "y" {
		t.Fatalf("nameOf(y) = %q, %v", name, ok)
	}
}

func TestSchema_RenameUnknownFails(t *testing.T) {
	s := newSchema("default", "accepted")
	if s.rename(NewID[StatusKind](), "ghost") {
		t.Fatal("rename of an unknown status should report failure")
	}
}
