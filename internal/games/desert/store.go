package desert

// Group is an unordered collection of live entities of one kind.
type Group[T any] struct {
	items []T
}

// Add appends an entity to the group.
func (g *Group[T]) Add(item T) {
	g.items = append(g.items, item)
}

// ForEach calls fn with a pointer to every entity so it can be mutated in
// place. fn must not add or remove entities.
func (g *Group[T]) ForEach(fn func(*T)) {
	for i := range g.items {
		fn(&g.items[i])
	}
}

// RemoveIf drops every entity for which pred returns true and reports how
// many were removed. The released slots are zeroed immediately.
func (g *Group[T]) RemoveIf(pred func(*T) bool) int {
	kept := g.items[:0]
	for i := range g.items {
		if !pred(&g.items[i]) {
			kept = append(kept, g.items[i])
		}
	}
	removed := len(g.items) - len(kept)

	var zero T
	for i := len(kept); i < len(g.items); i++ {
		g.items[i] = zero
	}
	g.items = kept
	return removed
}

// Len returns the number of live entities.
func (g *Group[T]) Len() int {
	return len(g.items)
}

// Items returns the live entities. The slice is only valid until the next
// mutation of the group.
func (g *Group[T]) Items() []T {
	return g.items
}

// Clear removes every entity.
func (g *Group[T]) Clear() {
	g.RemoveIf(func(*T) bool { return true })
}

// Store holds the three independently managed entity sets.
type Store struct {
	Obstacles Group[Obstacle]
	Pickups   Group[Pickup]
	Particles Group[Particle]
}
