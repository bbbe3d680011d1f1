package engine

import "testing"

func TestMarkSetBound(t *testing.T) {
	m := NewMarkSet(3)

	m.Add(1)
	m.Add(2)
	if m.Full() {
		t.Error("set with 2 of 3 marks should not be full")
	}
	m.Add(3)
	if !m.Full() || m.Len() != 3 {
		t.Errorf("Len() = %d, Full() = %v, want 3, true", m.Len(), m.Full())
	}

	mustPanic(t, "overflow", func() { m.Add(4) })

	m.Clear()
	if m.Len() != 0 || m.Contains(1) {
		t.Error("Clear should remove every mark")
	}
}

func TestMarkSetRekey(t *testing.T) {
	m := NewMarkSet(3)
	m.Add(5)
	m.Add(6)

	if !m.Rekey(5, 9) {
		t.Fatal("Rekey of marked tile returned false")
	}
	if m.Rekey(42, 43) {
		t.Error("Rekey of unmarked tile returned true")
	}

	ids := m.IDs()
	if len(ids) != 2 || ids[0] != 9 || ids[1] != 6 {
		t.Errorf("IDs() = %v, want [9 6]", ids)
	}
}
