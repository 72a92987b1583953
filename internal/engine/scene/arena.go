package scene

import "fmt"

// arena is append-only storage for one component kind. Indices handed out
// by push stay valid for the arena's lifetime because nothing is removed.
type arena[T any] struct {
	kind  Kind
	items []T
}

func (a *arena[T]) push(v T) int {
	a.items = append(a.items, v)
	return len(a.items) - 1
}

// at returns a pointer into the backing array. The pointer is invalidated by
// the next push (growth may relocate), so callers must not hold it across
// insertions; they hold the index instead.
func (a *arena[T]) at(i int) *T {
	if i < 0 || i >= len(a.items) {
		panic(fmt.Sprintf("scene: %s index %d out of range [0,%d)", a.kind, i, len(a.items)))
	}
	return &a.items[i]
}

func (a *arena[T]) len() int {
	return len(a.items)
}
