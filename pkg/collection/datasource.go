package collection

import "github.com/matzehuels/stackshift/pkg/dnd"

// DataSource is the ordered model behind a Collection. Items are located
// by identity; a Collection never copies or inspects them.
type DataSource interface {
	// Count returns the number of items in group.
	Count(group int) int

	// Item returns the item at pos, or nil if pos is out of range.
	Item(pos dnd.Position) dnd.Item

	// Position finds item by identity.
	Position(item dnd.Item) (dnd.Position, bool)

	Insert(item dnd.Item, pos dnd.Position)
	Remove(pos dnd.Position)
	Move(from, to dnd.Position)

	// CanDrop reports whether the dragged item may occupy pos.
	CanDrop(pos dnd.Position) bool
}

// Labeler is optionally implemented by a DataSource to caption drag
// proxies. Without it the proxy label is empty.
type Labeler interface {
	Label(item dnd.Item) string
}

// DragPolicy is optionally implemented by a DataSource whose items are not
// all draggable.
type DragPolicy interface {
	CanDragAt(pos dnd.Position) bool
}
