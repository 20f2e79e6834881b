package game

// Board is the fixed, ordered ring of tiles. Indices wrap modulo Size.
type Board struct {
	tiles []Tile
}

// NewBoard creates a board from the given tiles, in order.
func NewBoard(tiles ...Tile) *Board {
	b := &Board{tiles: make([]Tile, len(tiles))}
	copy(b.tiles, tiles)
	return b
}

// Size returns the number of tiles on the board.
func (b *Board) Size() int {
	return len(b.tiles)
}

// Tile returns the tile at the given index. The index wraps around the board.
func (b *Board) Tile(index int) Tile {
	n := len(b.tiles)
	return b.tiles[((index%n)+n)%n]
}

// Tiles returns a copy of the board's tiles.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return tiles
}

// Advance returns the index reached by moving steps tiles forward from index.
func (b *Board) Advance(index, steps int) int {
	n := len(b.tiles)
	return (((index + steps) % n) + n) % n
}

// hasChance reports whether any tile draws from the chance deck.
func (b *Board) hasChance() bool {
	for _, t := range b.tiles {
		if _, ok := t.(ChanceTile); ok {
			return true
		}
	}
	return false
}

// PropertyAt returns the property at index, if that tile is a property.
func (b *Board) PropertyAt(index int) (PropertyTile, bool) {
	p, ok := b.Tile(index).(PropertyTile)
	return p, ok
}

// surf spots on the standard board, in board order
var properties = []PropertyTile{
	{Name: "Pipeline, Hawaii", Price: 200, Rent: 50},
	{Name: "Teahupo'o, Tahiti", Price: 220, Rent: 55},
	{Name: "Jeffreys Bay, South Africa", Price: 250, Rent: 60},
	{Name: "Bells Beach, Australia", Price: 280, Rent: 70},
	{Name: "Trestles, California", Price: 300, Rent: 75},
	{Name: "Snapper Rocks, Australia", Price: 320, Rent: 80},
	{Name: "Rincon, Puerto Rico", Price: 230, Rent: 60},
	{Name: "Hossegor, France", Price: 260, Rent: 65},
	{Name: "El Porto, California", Price: 290, Rent: 75},
	{Name: "Waimea Bay, Hawaii", Price: 310, Rent: 85},
	{Name: "Fistral Beach, England", Price: 270, Rent: 70},
}

// CreateBoard builds the standard Surfpoly board.
func CreateBoard() *Board {
	return NewBoard(
		GoTile{},
		properties[0],
		properties[1],
		JailTile{},
		properties[2],
		properties[3],
		PlainTile{Name: "Surf Station"},
		properties[4],
		properties[5],
		ChanceTile{},
		properties[6],
		properties[7],
		properties[8],
		properties[9],
		properties[10],
	)
}
