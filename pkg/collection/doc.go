// Package collection implements a scrollable, ordered container that takes
// part in drag-and-drop sessions run by package dnd.
//
// A [Collection] lays out the items of a [DataSource] with a [FlowLayout]
// and implements dnd.Draggable, dnd.Droppable and dnd.Reverter on top of it.
// Points and rectangles handed to it by the manager are in its local
// (content) space, where the visible region starts at the scroll offset.
//
// # Target Resolution
//
// A hovering rectangle resolves to an insertion [dnd.Position] by picking,
// among visible cells covered by at least a third of their area, the one
// whose centre is nearest to the rectangle's centre. If the data source
// refuses a drop there, the search walks backward one slot at a time and
// gives up once it runs past the first slot. It never searches forward.
//
// # Mutations
//
// Every insert, delete or move is followed by an animation batch of
// AnimationDuration. While a batch is in flight, hover moves are dropped
// rather than queued; the next hover update re-resolves from current state.
// Membership changes (entering, leaving, reverting and handing off) always
// apply.
//
// # Autoscroll
//
// When the dragged rectangle sticks out past the visible region along the
// scroll axis by more than Threshold of its own extent, a periodic timer
// scrolls toward that edge by up to MaxStep per tick. A tick that would
// leave the scrollable range stops the timer instead.
package collection
