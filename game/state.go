package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Setup holds everything needed to start a game.
type Setup struct {
	NumPlayers int
	Names      []string
	Board      *Board       // defaults to CreateBoard()
	Cards      []ChanceCard // defaults to StandardCards()
	Rules      Rules        // defaults to NewStandardRules()
	Rand       *rand.Rand   // shuffles the chance deck
}

// GameState is the complete state of one game. Players is indexed by player
// ID and keeps eliminated players; the active roster is derived from it.
type GameState struct {
	ID        string
	Board     *Board
	Rules     Rules
	Players   []*Player
	Ownership []int // owner ID per board index, NoPlayer if unowned or not a property
	Deck      *Deck
	Over      bool
	Won       int // winner ID, NoPlayer while the game runs
}

// PurchaseDecider answers the buy question when a player can afford an
// unowned property.
type PurchaseDecider interface {
	ShouldBuy(player *Player, property PropertyTile) bool
}

// DecideFunc adapts a function to a PurchaseDecider.
type DecideFunc func(player *Player, property PropertyTile) bool

func (f DecideFunc) ShouldBuy(player *Player, property PropertyTile) bool {
	return f(player, property)
}

// NewGame validates the setup, shuffles the chance pool and seats the players.
func NewGame(s Setup) (*GameState, error) {
	if s.NumPlayers < 1 {
		return nil, fmt.Errorf("%w: need at least one player, got %d", ErrInvalidConfig, s.NumPlayers)
	}
	if len(s.Names) != s.NumPlayers {
		return nil, fmt.Errorf("%w: %d players but %d names", ErrInvalidConfig, s.NumPlayers, len(s.Names))
	}
	for i, name := range s.Names {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: player %d has no name", ErrInvalidConfig, i+1)
		}
	}
	if s.Rand == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalidConfig)
	}
	if s.Board == nil {
		s.Board = CreateBoard()
	}
	if s.Board.Size() == 0 {
		return nil, fmt.Errorf("%w: empty board", ErrInvalidConfig)
	}
	if s.Cards == nil {
		s.Cards = StandardCards()
	}
	if s.Board.hasChance() && len(s.Cards) == 0 {
		return nil, fmt.Errorf("%w: board has a chance tile but the chance pool is empty", ErrInvalidConfig)
	}
	if s.Rules == nil {
		s.Rules = NewStandardRules()
	}

	gs := &GameState{
		ID:        uuid.NewString(),
		Board:     s.Board,
		Rules:     s.Rules,
		Players:   make([]*Player, s.NumPlayers),
		Ownership: make([]int, s.Board.Size()),
		Deck:      NewDeck(s.Cards, s.Rand),
		Won:       NoPlayer,
	}
	// Initialize all tiles unowned (-1)
	for i := range gs.Ownership {
		gs.Ownership[i] = NoPlayer
	}
	for i, name := range s.Names {
		gs.Players[i] = newPlayer(i, strings.TrimSpace(name), s.Rules.StartingMoney())
	}
	return gs, nil
}

// Player returns the player with the given ID, active or not.
func (gs *GameState) Player(id int) (*Player, bool) {
	if id < 0 || id >= len(gs.Players) {
		return nil, false
	}
	return gs.Players[id], true
}

// ActivePlayers returns the players not yet eliminated, in join order.
func (gs *GameState) ActivePlayers() []*Player {
	active := make([]*Player, 0, len(gs.Players))
	for _, p := range gs.Players {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

func (gs *GameState) activePlayer(id int) (*Player, error) {
	p, ok := gs.Player(id)
	if !ok {
		return nil, fmt.Errorf("%w: unknown player %d", ErrPlayerNotActive, id)
	}
	if p.Eliminated {
		return nil, fmt.Errorf("%w: %s is eliminated", ErrPlayerNotActive, p.Name)
	}
	return p, nil
}

// IsSkippingTurn reports whether the player sits out the coming turn in
// jail. The last turn of a sentence is not skipped: the player is released
// and rolls. Drivers check it before asking for a roll.
func (gs *GameState) IsSkippingTurn(id int) (bool, error) {
	p, err := gs.activePlayer(id)
	if err != nil {
		return false, err
	}
	return p.InJail && p.JailTurns > 1, nil
}

// Owner returns the owner of the property at index, or NoPlayer.
func (gs *GameState) Owner(index int) int {
	if index < 0 || index >= len(gs.Ownership) {
		return NoPlayer
	}
	return gs.Ownership[index]
}

// Winner returns the winning player once the game is over.
func (gs *GameState) Winner() (*Player, bool) {
	if gs.Won == NoPlayer {
		return nil, false
	}
	return gs.Players[gs.Won], true
}

// Space is one board slot together with the active players standing on it.
type Space struct {
	Index     int
	Tile      Tile
	Owner     int
	Occupants []*Player
}

// Occupancy lists every tile with the active players currently on it.
func (gs *GameState) Occupancy() []Space {
	spaces := make([]Space, gs.Board.Size())
	for i, t := range gs.Board.Tiles() {
		spaces[i] = Space{Index: i, Tile: t, Owner: gs.Ownership[i]}
	}
	for _, p := range gs.ActivePlayers() {
		spaces[p.Position].Occupants = append(spaces[p.Position].Occupants, p)
	}
	return spaces
}

// Leaderboard ranks the active players by net worth.
func (gs *GameState) Leaderboard() []Standing {
	return Rank(gs.ActivePlayers(), gs.Rules)
}
