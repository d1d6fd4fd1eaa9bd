// Package board is the card-list model the terminal app drags around.
//
// A [Board] holds named [List]s of [Card]s. Each List implements
// collection.DataSource, so it can back a collection.Collection directly.
// Cards are identified by pointer, never by title, so two cards with the
// same caption stay distinct while they move.
//
// # Drop Policy
//
// Lists refuse drops that would break board rules:
//   - a locked card cannot be dragged and nothing may be dropped onto its
//     slot; it still shifts when other cards move past it
//   - a list with a Limit refuses new cards once full (the card being
//     dragged may still move inside the list it is in)
//
// The board learns which card is in flight by acting as the drag
// manager's delegate.
//
// # Documents
//
// Boards are stored as TOML:
//
//	title = "Sprint"
//
//	[[lists]]
//	name = "Todo"
//	limit = 5
//
//	[[lists.cards]]
//	title = "Write docs"
//	color = "#356695"
package board
