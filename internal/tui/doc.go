// Package tui is the interactive terminal board.
//
// Mouse input drives a [pipeline.Runner]: a left press arms a drag, holding
// still or moving begins it, and releasing drops the card. The wheel scrolls
// the column under the pointer. Esc or losing focus cancels a drag, and the
// card returns to where it started.
//
// Screen cells are the engine's units: a column is ui.column_width cells
// wide and every card ui.card_height rows tall. A frame tick at ui.frame_rate
// advances the engine's clock, so animations run at the terminal's pace.
package tui
