package game

import (
	"golang.org/x/exp/rand"
)

// Dice produces a single roll per turn.
type Dice interface {
	Roll() int
}

type randomDice struct {
	r     *rand.Rand
	faces int
}

// NewDice returns a fair die with the given number of faces.
func NewDice(r *rand.Rand, faces int) Dice {
	return &randomDice{r: r, faces: faces}
}

func (d *randomDice) Roll() int {
	return d.r.Intn(d.faces) + 1
}

// ScriptedDice replays a fixed sequence of rolls, cycling when exhausted.
type ScriptedDice struct {
	Rolls []int
	next  int
}

func (d *ScriptedDice) Roll() int {
	roll := d.Rolls[d.next%len(d.Rolls)]
	d.next++
	return roll
}

// NewRand returns a seeded random source for dice and deck shuffling.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
