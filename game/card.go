package game

import (
	"golang.org/x/exp/rand"
)

// ChanceCard changes the drawing player's money by Amount (negative = loss).
type ChanceCard struct {
	Description string
	Amount      int
}

// StandardCards returns the chance pool used by the standard game.
func StandardCards() []ChanceCard {
	return []ChanceCard{
		{Description: "You bought new surfing gear.", Amount: -150},
		{Description: "You won a local surfing competition!", Amount: 300},
		{Description: "You had to repair your surfboard.", Amount: -100},
		{Description: "You earned royalties from a surf movie appearance.", Amount: 250},
		{Description: "You paid a fine for surfing in a restricted area.", Amount: -200},
	}
}

// Deck is a cyclic chance deck. Drawn cards go back to the bottom, so the
// deck never shrinks.
type Deck struct {
	cards []ChanceCard
}

// NewDeck copies the pool into a new deck and shuffles it once.
func NewDeck(pool []ChanceCard, r *rand.Rand) *Deck {
	d := &Deck{cards: make([]ChanceCard, len(pool))}
	copy(d.cards, pool)
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw takes the top card and puts it back at the bottom.
func (d *Deck) Draw() (ChanceCard, bool) {
	if len(d.cards) == 0 {
		return ChanceCard{}, false
	}
	card := d.cards[0]
	copy(d.cards, d.cards[1:])
	d.cards[len(d.cards)-1] = card
	return card, true
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns the deck contents from top to bottom.
func (d *Deck) Cards() []ChanceCard {
	cards := make([]ChanceCard, len(d.cards))
	copy(cards, d.cards)
	return cards
}
