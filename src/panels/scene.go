package panels

import (
	"sync"

	"github.com/google/uuid"
)

// Field is one named value of a component.
type Field struct {
	Name  string
	Value string
}

// Component is a named group of fields attached to an entity.
type Component struct {
	Name   string
	Fields []Field
}

// Entity is a scene object as shown by the hierarchy and inspector.
type Entity struct {
	ID         uuid.UUID
	Name       string
	Depth      int
	Components []Component
}

// SceneSource is the read side of the engine's scene the editor panels need.
type SceneSource interface {
	SceneName() string
	// Entities returns the scene in hierarchy order, children following their
	// parent with a greater depth.
	Entities() []Entity
	Selected() (Entity, bool)
}

// StaticScene is an in-memory SceneSource.
type StaticScene struct {
	mu       sync.RWMutex
	name     string
	entities []Entity
	selected uuid.UUID
}

// NewStaticScene returns a scene holding entities in hierarchy order.
func NewStaticScene(name string, entities ...Entity) *StaticScene {
	return &StaticScene{name: name, entities: entities}
}

func (s *StaticScene) SceneName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *StaticScene) Entities() []Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Entity(nil), s.entities...)
}

func (s *StaticScene) Selected() (Entity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entities {
		if e.ID == s.selected {
			return e, true
		}
	}
	return Entity{}, false
}

// Select marks the entity with id as selected. Unknown ids clear the
// selection.
func (s *StaticScene) Select(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
}

// SelectNext moves the selection by delta entities, wrapping around.
func (s *StaticScene) SelectNext(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.entities)
	if n == 0 {
		return
	}
	cur := -1
	for i, e := range s.entities {
		if e.ID == s.selected {
			cur = i
		}
	}
	if cur < 0 && delta < 0 {
		cur = 0
	}
	next := ((cur+delta)%n + n) % n
	s.selected = s.entities[next].ID
}
