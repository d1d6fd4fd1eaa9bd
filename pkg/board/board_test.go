package board

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stackshift/pkg/dnd"
	"github.com/matzehuels/stackshift/pkg/errors"
)

func pos(i int) dnd.Position { return dnd.Position{Index: i} }

func TestSample(t *testing.T) {
	b := Sample(3, 21)
	require.Len(t, b.Lists, 3)
	assert.Equal(t, 63, b.Cards())
	assert.Equal(t, "0:0", b.Lists[0].Cards[0].Title)
	assert.Equal(t, "2:20", b.Lists[2].Cards[20].Title)
	assert.Equal(t, Palette[1], b.Lists[1].Cards[3].Color)
	assert.NoError(t, b.Validate())

	// IDs are unique even though titles could collide in other boards.
	seen := map[string]bool{}
	for _, l := range b.Lists {
		for _, c := range l.Cards {
			assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
			seen[c.ID] = true
		}
	}
}

func TestListDataSource(t *testing.T) {
	b := Sample(1, 5)
	l := b.Lists[0]
	c2 := l.Cards[2]

	p, ok := l.Position(c2)
	require.True(t, ok)
	assert.Equal(t, pos(2), p)
	assert.Same(t, c2, l.Item(p))
	assert.Nil(t, l.Item(pos(9)))
	assert.Zero(t, l.Count(1))

	// Identity, not equality.
	twin := *c2
	_, ok = l.Position(&twin)
	assert.False(t, ok)
	_, ok = l.Position("0:2")
	assert.False(t, ok)

	l.Move(pos(2), pos(4))
	assert.Equal(t, []string{"0:0", "0:1", "0:3", "0:4", "0:2"}, l.Titles())

	l.Move(pos(4), pos(0))
	assert.Equal(t, []string{"0:2", "0:0", "0:1", "0:3", "0:4"}, l.Titles())

	l.Remove(pos(0))
	assert.Equal(t, []string{"0:0", "0:1", "0:3", "0:4"}, l.Titles())

	l.Insert(c2, pos(99))
	assert.Equal(t, []string{"0:0", "0:1", "0:3", "0:4", "0:2"}, l.Titles())

	l.Insert("not a card", pos(0))
	assert.Equal(t, 5, l.Count(0))
}

func TestCanDropLockedSlot(t *testing.T) {
	b := Sample(1, 4)
	l := b.Lists[0]
	l.Cards[1].Locked = true

	assert.True(t, l.CanDrop(pos(0)))
	assert.False(t, l.CanDrop(pos(1)))
	assert.True(t, l.CanDrop(pos(2)))
	assert.True(t, l.CanDrop(pos(4)))
	assert.False(t, l.CanDrop(pos(5)))
	assert.False(t, l.CanDrop(pos(-1)))
	assert.False(t, l.CanDrop(dnd.Position{Group: 1}))

	assert.False(t, l.CanDragAt(pos(1)))
	assert.True(t, l.CanDragAt(pos(0)))
}

func TestLockedCardShiftsWithNeighbours(t *testing.T) {
	b := Sample(1, 3)
	l := b.Lists[0]
	locked := l.Cards[1]
	locked.Locked = true

	l.Move(pos(0), pos(2))
	assert.Equal(t, []string{"0:1", "0:2", "0:0"}, l.Titles())

	// The rules follow the card, not the index it used to have.
	assert.False(t, l.CanDrop(pos(0)))
	assert.False(t, l.CanDragAt(pos(0)))
	assert.True(t, l.CanDrop(pos(1)))
	assert.True(t, l.CanDragAt(pos(2)))
	assert.Same(t, locked, l.Item(pos(0)))
}

func TestCanDropLimit(t *testing.T) {
	b := Sample(2, 3)
	full, other := b.Lists[0], b.Lists[1]
	full.Limit = 3
	require.True(t, full.Full())

	// A card from elsewhere cannot come in.
	b.DidStartDragging(&dnd.Session{Item: other.Cards[0]})
	assert.False(t, full.CanDrop(pos(0)))
	assert.True(t, other.CanDrop(pos(0)))

	// A card already inside may still move around.
	b.DidStartDragging(&dnd.Session{Item: full.Cards[2]})
	assert.True(t, full.CanDrop(pos(0)))

	b.DidEndDragging(nil)
	assert.Nil(t, b.Active())
	assert.False(t, full.CanDrop(pos(0)))
}

func TestDecode(t *testing.T) {
	doc := `
title = "Sprint"

[[lists]]
name = "Todo"
limit = 3

[[lists.cards]]
title = "Write docs"
color = "#356695"

[[lists.cards]]
id = "fixed"
title = "Ship"
locked = true

[[lists]]
name = "Done"
`
	b, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "Sprint", b.Title)
	assert.Equal(t, [][]string{{"Write docs", "Ship"}, {}}, b.Snapshot())
	assert.NotEmpty(t, b.Lists[0].Cards[0].ID)
	assert.Equal(t, "fixed", b.Lists[0].Cards[1].ID)
	assert.True(t, b.Lists[0].Cards[1].Locked)
	assert.Same(t, b, b.Lists[1].board)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", `title = `},
		{"unknown key", "title = \"x\"\ncolour = 1\n[[lists]]\nname = \"a\""},
		{"no lists", `title = "x"`},
		{"empty title", "title = \"\"\n[[lists]]\nname = \"a\""},
		{"duplicate list", "title = \"x\"\n[[lists]]\nname = \"a\"\n[[lists]]\nname = \"a\""},
		{"negative limit", "title = \"x\"\n[[lists]]\nname = \"a\"\nlimit = -1"},
		{"over limit", "title = \"x\"\n[[lists]]\nname = \"a\"\nlimit = 1\n[[lists.cards]]\ntitle = \"1\"\n[[lists.cards]]\ntitle = \"2\""},
		{"duplicate id", "title = \"x\"\n[[lists]]\nname = \"a\"\n[[lists.cards]]\nid = \"d\"\ntitle = \"1\"\n[[lists.cards]]\nid = \"d\"\ntitle = \"2\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidBoard), "got %v", err)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.toml")
	b := Sample(2, 3)
	b.Lists[1].Limit = 5
	b.Lists[0].Cards[0].Locked = true

	require.NoError(t, b.Save(path))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, b.Snapshot(), got.Snapshot())
	assert.Equal(t, b.Lists[0].Cards[1].ID, got.Lists[0].Cards[1].ID)
	assert.Equal(t, 5, got.Lists[1].Limit)
	assert.True(t, got.Lists[0].Cards[0].Locked)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeFileNotFound))

	_, err = Load("board.json")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}
