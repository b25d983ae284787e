package app

import (
	"fmt"
	"slices"
	"sync"
)

// ModalID identifies a modal dialog.
type ModalID string

// Modals of the ledger screen.
const (
	AddTransactionModal ModalID = "addTransactionModal"
	ImportModal         ModalID = "importModal"
)

// Modals tracks the visibility of the modal dialogs. The zero value has
// every modal hidden.
type Modals struct {
	mu      sync.Mutex
	visible map[ModalID]bool
}

// ParseModal returns the ModalID named s.
func ParseModal(s string) (ModalID, error) {
	switch id := ModalID(s); id {
	case AddTransactionModal, ImportModal:
		return id, nil
	case "add":
		return AddTransactionModal, nil
	case "import":
		return ImportModal, nil
	default:
		return "", fmt.Errorf("unknown modal %q", s)
	}
}

// Open shows the modal id.
func (m *Modals) Open(id ModalID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.visible == nil {
		m.visible = make(map[ModalID]bool)
	}
	m.visible[id] = true
}

// Close hides the modal id.
func (m *Modals) Close(id ModalID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.visible, id)
}

// Visible reports whether the modal id is shown.
func (m *Modals) Visible(id ModalID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.visible[id]
}

// Backdrop handles a click whose target is target: a click on a visible
// modal itself, outside of its content, hides every modal. It reports
// whether modals were hidden.
func (m *Modals) Backdrop(target ModalID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.visible[target] {
		return false
	}
	clear(m.visible)
	return true
}

// List returns the visible modals, sorted.
func (m *Modals) List() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var ids []string
	for id := range m.visible {
		ids = append(ids, string(id))
	}
	slices.Sort(ids)
	return ids
}
