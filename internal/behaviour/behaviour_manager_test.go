package behaviour

import (
	"testing"
)

type MockBehaviour struct {
	starts  int
	updates int
	elapsed float64
	log     *[]string
	name    string
}

func (m *MockBehaviour) Start() { m.starts++ }

func (m *MockBehaviour) Update(deltaTime float64) {
	m.updates++
	m.elapsed += deltaTime
	if m.log != nil {
		*m.log = append(*m.log, m.name)
	}
}

func TestBehaviourManagerStartsOnce(t *testing.T) {
	m := NewBehaviourManager()
	b := &MockBehaviour{}
	m.Add(b)

	m.UpdateAll(0.5)
	m.UpdateAll(0.25)

	if b.starts != 1 {
		t.Errorf("Start should run once, ran %d times", b.starts)
	}
	if b.updates != 2 || b.elapsed != 0.75 {
		t.Errorf("Expected 2 updates totalling 0.75s, got %d/%f", b.updates, b.elapsed)
	}
}

func TestBehaviourManagerOrder(t *testing.T) {
	var log []string
	m := NewBehaviourManager()
	m.Add(&MockBehaviour{name: "a", log: &log})
	m.Add(&MockBehaviour{name: "b", log: &log})

	m.UpdateAll(0)

	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("Behaviours should update in insertion order, got %v", log)
	}
}

func TestBehaviourManagerRemoveAndClear(t *testing.T) {
	m := NewBehaviourManager()
	a, b := &MockBehaviour{}, &MockBehaviour{}
	m.Add(a)
	m.Add(b)

	m.Remove(a)
	m.UpdateAll(1)

	if a.updates != 0 || b.updates != 1 {
		t.Error("Removed behaviour should not be updated")
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 behaviour, got %d", m.Len())
	}

	m.Clear()
	if m.Len() != 0 {
		t.Error("Clear should remove every behaviour")
	}
}
