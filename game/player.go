package game

// Tokens are handed out to players in join order, wrapping around.
var Tokens = []string{"🌊", "🏖", "🌴", "🏄", "🎯"}

// Player is a participant. ID is the player's index in join order and is
// stable for the whole game.
type Player struct {
	ID         int
	Name       string
	Token      string
	Position   int
	Money      int
	Properties []string // names of owned properties, in purchase order
	InJail     bool
	JailTurns  int // turns left to sit out while InJail
	Eliminated bool
}

func newPlayer(id int, name string, money int) *Player {
	return &Player{
		ID:         id,
		Name:       name,
		Token:      Tokens[id%len(Tokens)],
		Money:      money,
		Properties: []string{},
	}
}

func (p *Player) earn(amount int) {
	p.Money += amount
}

func (p *Player) pay(amount int) {
	p.Money -= amount
}

func (p *Player) buy(property PropertyTile) {
	p.Money -= property.Price
	p.Properties = append(p.Properties, property.Name)
}

func (p *Player) goToJail(index, sentence int) {
	p.InJail = true
	p.JailTurns = sentence
	p.Position = index
}

func (p *Player) leaveJail() {
	p.InJail = false
	p.JailTurns = 0
}

// Copy returns a deep copy of the player.
func (p *Player) Copy() *Player {
	c := *p
	c.Properties = make([]string, len(p.Properties))
	copy(c.Properties, p.Properties)
	return &c
}
