package engine

import "slices"

// Standing is one line of the final ranking.
type Standing struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	UVs      int    `json:"uvs"`
	Diplomas int    `json:"diplomas"`
}

// Standings ranks players by credits, highest first. Ties keep seating order and share
// a rank.
func (g *Game) Standings() []Standing {
	players := slices.Clone(g.Players)
	slices.SortStableFunc(players, func(a, b *Player) int {
		return b.Inventory.Credits - a.Inventory.Credits
	})

	out := make([]Standing, len(players))
	for i, p := range players {
		rank := i + 1
		if i > 0 && out[i-1].Credits == p.Inventory.Credits {
			rank = out[i-1].Rank
		}
		out[i] = Standing{
			Rank:     rank,
			PlayerID: p.ID,
			Name:     p.Name,
			Credits:  p.Inventory.Credits,
			UVs:      len(p.Inventory.UVs),
			Diplomas: len(p.Inventory.Diplomas),
		}
	}
	return out
}
