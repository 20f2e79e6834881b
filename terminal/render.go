package terminal

import (
	"fmt"
	"strings"
	"surfpoly/game"
)

// ShowOutcome narrates a turn.
func (c *Console) ShowOutcome(gs *game.GameState, out game.TurnOutcome) {
	p, ok := gs.Player(out.PlayerID)
	if !ok {
		return
	}

	switch out.Jail {
	case game.JailSkipped:
		c.printf("%s is in jail for %d more turns.\n", p.Name, p.JailTurns)
	case game.JailReleased:
		c.printf("%s is now free from jail!\n", p.Name)
	}

	if out.Moved {
		c.printf("%s rolled a %d.\n", p.Name, out.Roll)
		c.printf("%s\n", describe(gs, p, out))
		c.printf("%s has $%d and owns: [%s]\n", p.Name, p.Money, strings.Join(p.Properties, ", "))
	}

	if out.Eliminated {
		c.printf("%s is bankrupt! Game over for them.\n", p.Name)
	}
}

func describe(gs *game.GameState, p *game.Player, out game.TurnOutcome) string {
	switch out.Resolution {
	case game.CollectedGoBonus:
		return fmt.Sprintf("You landed on Go! Collect $%d.", out.MoneyDelta)
	case game.SentToJail:
		return fmt.Sprintf("Go to Jail! You are now in jail for %d turns.", p.JailTurns)
	case game.RestedOnPlain:
		return fmt.Sprintf("%s landed on %s.", p.Name, out.Tile.Label())
	case game.DrewChance:
		return fmt.Sprintf("%s Effect: %s", out.Card.Description, signed(out.Card.Amount))
	case game.Purchased:
		return fmt.Sprintf("You bought %s!", out.Tile.Label())
	case game.DeclinedPurchase:
		return "You chose not to buy."
	case game.CannotAfford:
		return fmt.Sprintf("%s landed on %s. You don't have enough money to buy this property.", p.Name, out.Tile.Label())
	case game.PaidRent:
		owner, _ := gs.Player(out.Owner)
		return fmt.Sprintf("%s landed on %s, owned by %s. You paid $%d to %s.",
			p.Name, out.Tile.Label(), owner.Name, -out.MoneyDelta, owner.Name)
	case game.OwnProperty:
		return fmt.Sprintf("%s landed on %s. You own this property.", p.Name, out.Tile.Label())
	default:
		return ""
	}
}

func signed(amount int) string {
	if amount >= 0 {
		return fmt.Sprintf("+$%d", amount)
	}
	return fmt.Sprintf("-$%d", -amount)
}

// ShowBoard prints one cell per tile: the tokens standing there, with (J)
// for jailed players, or the tile name when it is empty.
func (c *Console) ShowBoard(gs *game.GameState) {
	var b strings.Builder
	b.WriteString("Board:\n")
	for _, space := range gs.Occupancy() {
		b.WriteString("| ")
		if len(space.Occupants) == 0 {
			b.WriteString(space.Tile.Label())
		}
		for _, p := range space.Occupants {
			b.WriteString(p.Token)
			if p.InJail {
				b.WriteString("(J)")
			}
		}
		b.WriteString(" ")
	}
	b.WriteString("|\n")
	c.printf("%s", b.String())
}

func (c *Console) ShowLeaderboard(standings []game.Standing) {
	c.printf("\nLeaderboard:\n")
	for i, s := range standings {
		c.printf("%d. %s (%s) - Net Worth: $%d\n", i+1, s.Player.Name, s.Player.Token, s.NetWorth)
	}
}
