package game

import (
	"golang.org/x/exp/slices"
)

// Standing is a player's place on the leaderboard.
type Standing struct {
	Player   *Player
	NetWorth int
}

// NetWorth is money plus a fixed value per owned property. It ranks players
// and is never spendable.
func NetWorth(p *Player, rules Rules) int {
	return p.Money + rules.PropertyWorth()*len(p.Properties)
}

// Rank orders players by descending net worth. Ties keep the input order.
func Rank(players []*Player, rules Rules) []Standing {
	standings := make([]Standing, len(players))
	for i, p := range players {
		standings[i] = Standing{Player: p, NetWorth: NetWorth(p, rules)}
	}
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.NetWorth - a.NetWorth
	})
	return standings
}
