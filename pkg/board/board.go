package board

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/errors"
)

// Card is one draggable entry.
type Card struct {
	ID     string `toml:"id"`
	Title  string `toml:"title"`
	Color  string `toml:"color,omitempty"`
	Locked bool   `toml:"locked,omitempty"`
}

// NewCard returns an unlocked card with a fresh ID.
func NewCard(title, color string) *Card {
	return &Card{ID: uuid.NewString(), Title: title, Color: color}
}

func (c *Card) String() string { return c.Title }

// List is an ordered column of cards. It shows a single group, 0.
type List struct {
	Name  string  `toml:"name"`
	Limit int     `toml:"limit,omitempty"`
	Cards []*Card `toml:"cards"`

	board *Board
}

// Board is a titled set of lists.
type Board struct {
	Title string  `toml:"title"`
	Lists []*List `toml:"lists"`

	active *Card
}

// New creates a board from lists, adopting each of them.
func New(title string, lists ...*List) *Board {
	b := &Board{Title: title, Lists: lists}
	b.adopt()
	return b
}

func (b *Board) adopt() {
	for _, l := range b.Lists {
		l.board = b
	}
}

// List returns the list named name.
func (b *Board) List(name string) (*List, bool) {
	for _, l := range b.Lists {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// Cards returns the number of cards on the board.
func (b *Board) Cards() int {
	n := 0
	for _, l := range b.Lists {
		n += len(l.Cards)
	}
	return n
}

// Snapshot returns card titles per list, in board order.
func (b *Board) Snapshot() [][]string {
	out := make([][]string, len(b.Lists))
	for i, l := range b.Lists {
		out[i] = l.Titles()
	}
	return out
}

// Active returns the card currently being dragged, if any.
func (b *Board) Active() *Card { return b.active }

// DidStartDragging records the dragged card.
func (b *Board) DidStartDragging(s *dnd.Session) {
	if c, ok := s.Item.(*Card); ok {
		b.active = c
	}
}

// DidEndDragging clears the dragged card.
func (b *Board) DidEndDragging(*dnd.Session) {
	b.active = nil
}

// Validate checks names, IDs and limits.
func (b *Board) Validate() error {
	if err := errors.ValidateName("board", b.Title); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidBoard, err, "invalid title")
	}
	if len(b.Lists) == 0 {
		return errors.New(errors.ErrCodeInvalidBoard, "board %q has no lists", b.Title)
	}

	names := make(map[string]bool, len(b.Lists))
	ids := make(map[string]bool)
	for _, l := range b.Lists {
		if err := errors.ValidateName("list", l.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidBoard, err, "invalid list")
		}
		if names[l.Name] {
			return errors.New(errors.ErrCodeInvalidBoard, "duplicate list %q", l.Name)
		}
		names[l.Name] = true

		if l.Limit < 0 {
			return errors.New(errors.ErrCodeInvalidBoard, "list %q has negative limit %d", l.Name, l.Limit)
		}
		if l.Limit > 0 && len(l.Cards) > l.Limit {
			return errors.New(errors.ErrCodeInvalidBoard, "list %q holds %d cards, over its limit of %d", l.Name, len(l.Cards), l.Limit)
		}

		for i, c := range l.Cards {
			if c == nil {
				return errors.New(errors.ErrCodeInvalidBoard, "list %q has an empty card at %d", l.Name, i)
			}
			if err := errors.ValidateName("card", c.Title); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidBoard, err, "list %q card %d", l.Name, i)
			}
			if ids[c.ID] {
				return errors.New(errors.ErrCodeInvalidBoard, "duplicate card id %q", c.ID)
			}
			ids[c.ID] = true
		}
	}
	return nil
}

// Palette is the sample board's column colors.
var Palette = []string{"#356695", "#B15827", "#8A9556"}

// Sample builds a demo board of lists columns holding cards cards each,
// titled "i:j".
func Sample(lists, cards int) *Board {
	ls := make([]*List, lists)
	for i := range ls {
		l := &List{Name: fmt.Sprintf("List %d", i+1)}
		color := Palette[i%len(Palette)]
		for j := range cards {
			l.Cards = append(l.Cards, NewCard(fmt.Sprintf("%d:%d", i, j), color))
		}
		ls[i] = l
	}
	return New("Sample", ls...)
}

// =============================================================================
// List as collection.DataSource
// =============================================================================

// Titles returns the card titles in order.
func (l *List) Titles() []string {
	out := make([]string, len(l.Cards))
	for i, c := range l.Cards {
		out[i] = c.Title
	}
	return out
}

// Full reports whether the list has reached its limit.
func (l *List) Full() bool {
	return l.Limit > 0 && len(l.Cards) >= l.Limit
}

func (l *List) String() string { return l.Name }

// Count returns the number of cards in group 0.
func (l *List) Count(group int) int {
	if group != 0 {
		return 0
	}
	return len(l.Cards)
}

// Item returns the card at pos, or nil.
func (l *List) Item(pos dnd.Position) dnd.Item {
	if !l.inRange(pos) {
		return nil
	}
	return l.Cards[pos.Index]
}

// Position finds a card by identity.
func (l *List) Position(item dnd.Item) (dnd.Position, bool) {
	c, ok := item.(*Card)
	if !ok {
		return dnd.Position{}, false
	}
	i := slices.Index(l.Cards, c)
	if i < 0 {
		return dnd.Position{}, false
	}
	return dnd.Position{Index: i}, true
}

// Insert places a card at pos. Out-of-range indices are clamped.
func (l *List) Insert(item dnd.Item, pos dnd.Position) {
	c, ok := item.(*Card)
	if !ok {
		return
	}
	i := min(max(pos.Index, 0), len(l.Cards))
	l.Cards = slices.Insert(l.Cards, i, c)
}

// Remove deletes the card at pos.
func (l *List) Remove(pos dnd.Position) {
	if !l.inRange(pos) {
		return
	}
	l.Cards = slices.Delete(l.Cards, pos.Index, pos.Index+1)
}

// Move relocates the card at from so that it ends up at to.
func (l *List) Move(from, to dnd.Position) {
	if !l.inRange(from) {
		return
	}
	c := l.Cards[from.Index]
	l.Cards = slices.Delete(l.Cards, from.Index, from.Index+1)
	i := min(max(to.Index, 0), len(l.Cards))
	l.Cards = slices.Insert(l.Cards, i, c)
}

// CanDrop applies the locked-card and limit rules. A locked card's slot
// takes no drops, but the card itself still shifts when others move past it.
func (l *List) CanDrop(pos dnd.Position) bool {
	if pos.Group != 0 || pos.Index < 0 || pos.Index > len(l.Cards) {
		return false
	}
	if pos.Index < len(l.Cards) && l.Cards[pos.Index].Locked {
		return false
	}
	if l.Full() && !l.holdsActive() {
		return false
	}
	return true
}

// CanDragAt keeps locked cards in place.
func (l *List) CanDragAt(pos dnd.Position) bool {
	return l.inRange(pos) && !l.Cards[pos.Index].Locked
}

// Label captions a drag proxy.
func (l *List) Label(item dnd.Item) string {
	if c, ok := item.(*Card); ok {
		return c.Title
	}
	return ""
}

func (l *List) holdsActive() bool {
	if l.board == nil || l.board.active == nil {
		return false
	}
	return slices.Contains(l.Cards, l.board.active)
}

func (l *List) inRange(pos dnd.Position) bool {
	return pos.Group == 0 && pos.Index >= 0 && pos.Index < len(l.Cards)
}

var _ dnd.Delegate = (*Board)(nil)
