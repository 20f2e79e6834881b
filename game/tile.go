package game

// Tile is one fixed slot on the circular board. The set of tiles is closed:
// GoTile, JailTile, PlainTile, PropertyTile and ChanceTile.
type Tile interface {
	Label() string
	tile()
}

// GoTile pays the Go bonus to a player landing exactly on it.
type GoTile struct{}

// JailTile sends a player landing on it to jail.
type JailTile struct{}

// PlainTile is decorative only.
type PlainTile struct {
	Name string
}

// PropertyTile can be bought and charges rent to other players.
type PropertyTile struct {
	Name  string
	Price int
	Rent  int
}

// ChanceTile draws a card from the chance deck.
type ChanceTile struct{}

func (GoTile) Label() string         { return "Go" }
func (JailTile) Label() string       { return "Jail" }
func (t PlainTile) Label() string    { return t.Name }
func (t PropertyTile) Label() string { return t.Name }
func (ChanceTile) Label() string     { return "Chance" }

func (GoTile) tile()       {}
func (JailTile) tile()     {}
func (PlainTile) tile()    {}
func (PropertyTile) tile() {}
func (ChanceTile) tile()   {}
