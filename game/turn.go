package game

import "fmt"

// TakeTurn plays one turn for the player: serve jail time, or move by roll
// and resolve the landing tile, then check for bankruptcy and a winner.
// A player with sentence left does not move and roll is ignored; on the
// last jail turn the player is released and moves by roll the same turn.
// Gameplay results are reported in the outcome; errors are reserved for
// invalid calls.
func (gs *GameState) TakeTurn(id, roll int, decider PurchaseDecider) (TurnOutcome, error) {
	if gs.Over {
		return TurnOutcome{}, ErrGameOver
	}
	p, err := gs.activePlayer(id)
	if err != nil {
		return TurnOutcome{}, err
	}

	out := TurnOutcome{
		PlayerID: p.ID,
		From:     p.Position,
		To:       p.Position,
		Owner:    NoPlayer,
		Winner:   NoPlayer,
	}
	start := p.Money

	if p.InJail && p.JailTurns > 1 {
		p.JailTurns--
		out.Jail = JailSkipped
		gs.settle(p, start, &out)
		return out, nil
	}

	if roll < 1 || roll > gs.Rules.DieFaces() {
		return TurnOutcome{}, fmt.Errorf("%w: %d", ErrInvalidRoll, roll)
	}
	if p.InJail {
		p.leaveJail()
		out.Jail = JailReleased
	}

	// Passing over Go pays nothing, only landing on it does
	p.Position = gs.Board.Advance(p.Position, roll)
	out.Moved = true
	out.Roll = roll
	out.To = p.Position

	gs.resolve(p, decider, &out)
	gs.settle(p, start, &out)
	return out, nil
}

// resolve applies the effect of the tile the player landed on.
func (gs *GameState) resolve(p *Player, decider PurchaseDecider, out *TurnOutcome) {
	t := gs.Board.Tile(p.Position)
	out.Tile = t

	switch tile := t.(type) {
	case GoTile:
		bonus := gs.Rules.GoBonus()
		p.earn(bonus)
		out.Transfers = append(out.Transfers, Transfer{From: Bank, To: p.ID, Amount: bonus})
		out.Resolution = CollectedGoBonus

	case JailTile:
		p.goToJail(p.Position, gs.Rules.JailSentence())
		out.To = p.Position
		out.Jail = JailSentenced
		out.Resolution = SentToJail

	case PlainTile:
		out.Resolution = RestedOnPlain

	case ChanceTile:
		card, ok := gs.Deck.Draw()
		if !ok {
			out.Resolution = RestedOnPlain
			return
		}
		p.earn(card.Amount)
		out.Card = &card
		if card.Amount >= 0 {
			out.Transfers = append(out.Transfers, Transfer{From: Bank, To: p.ID, Amount: card.Amount})
		} else {
			out.Transfers = append(out.Transfers, Transfer{From: p.ID, To: Bank, Amount: -card.Amount})
		}
		out.Resolution = DrewChance

	case PropertyTile:
		gs.resolveProperty(p, p.Position, tile, decider, out)
	}
}

func (gs *GameState) resolveProperty(p *Player, index int, property PropertyTile, decider PurchaseDecider, out *TurnOutcome) {
	owner := gs.Ownership[index]
	switch {
	case owner == NoPlayer:
		if p.Money < property.Price {
			out.Resolution = CannotAfford
			return
		}
		if decider == nil || !decider.ShouldBuy(p, property) {
			out.Resolution = DeclinedPurchase
			return
		}
		p.buy(property)
		gs.Ownership[index] = p.ID
		out.Transfers = append(out.Transfers, Transfer{From: p.ID, To: Bank, Amount: property.Price})
		out.Resolution = Purchased

	case owner == p.ID:
		out.Resolution = OwnProperty

	default:
		// Eliminated owners keep their properties and still collect
		landlord := gs.Players[owner]
		p.pay(property.Rent)
		landlord.earn(property.Rent)
		out.Owner = owner
		out.Transfers = append(out.Transfers, Transfer{From: p.ID, To: owner, Amount: property.Rent})
		out.Resolution = PaidRent
	}
}

// settle records the mover's net change, eliminates a bankrupt mover and
// ends the game when at most one player is left.
func (gs *GameState) settle(p *Player, start int, out *TurnOutcome) {
	out.MoneyDelta = p.Money - start
	if p.Money <= 0 {
		p.Eliminated = true
		out.Eliminated = true
	}

	active := gs.ActivePlayers()
	if len(active) <= 1 {
		gs.Over = true
		out.GameOver = true
		if len(active) == 1 {
			gs.Won = active[0].ID
			out.Winner = gs.Won
		}
	}
}
