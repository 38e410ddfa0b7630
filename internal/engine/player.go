package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Player holds one player's state.
type Player struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	FirstPlayer bool       `json:"first_player"` // starts the current round
	Acting      bool       `json:"acting"`       // currently taking a turn
	Inventory   *Inventory `json:"inventory"`

	game *Game
}

// NewPlayer seats a new player in g.
func NewPlayer(g *Game, name string) *Player {
	return &Player{
		ID:        uuid.NewString(),
		Name:      name,
		Inventory: NewInventory(g.Config.StartingPens, g.log.With(zap.String("player", name))),
		game:      g,
	}
}

// AddToPersonalWork adds the PersonalWork half of c and applies its bonus.
func (p *Player) AddToPersonalWork(c *Card) {
	pw := c.PersonalWork
	p.Inventory.AddPersonalWork(pw)

	switch pw.Bonus {
	case BonusPen:
		p.Inventory.PenCount++
	case BonusCredit:
		p.Inventory.Credits++
	case BonusDoubleCredit:
		p.Inventory.Credits += 2
	case BonusProfessor:
		for _, other := range p.game.Players {
			other.Inventory.HasProfessor = false
		}
		p.Inventory.HasProfessor = true
	}
}

// AddToUV adds the UV half of c.
func (p *Player) AddToUV(c *Card) {
	p.Inventory.AddUV(c.UV)
}

// HasSkillAvailable reports whether the player owns a PersonalWork of skill s with a
// pen on it. Only penned skills unlock UVs.
func (p *Player) HasSkillAvailable(s Skill) bool {
	for _, pw := range p.Inventory.PersonalWorks {
		if pw.Skill == s && pw.HasPen {
			return true
		}
	}
	return false
}

func (p *Player) AddPen() {
	p.Inventory.PenCount++
}

// RemovePen spends one pen; it is a no-op when none is left.
func (p *Player) RemovePen() {
	if p.Inventory.PenCount <= 0 {
		p.game.log.Warn("no pen left to remove", zap.String("player", p.Name))
		return
	}
	p.Inventory.PenCount--
}

// HasPen reports whether the player holds at least one unused pen.
func (p *Player) HasPen() bool {
	return p.Inventory.PenCount > 0
}

// PlacePen moves a pen onto the i-th owned PersonalWork.
func (p *Player) PlacePen(i int) error {
	return p.Inventory.PlacePen(i)
}

// LiftPen takes the pen back from the i-th owned PersonalWork.
func (p *Player) LiftPen(i int) error {
	return p.Inventory.LiftPen(i)
}

// AvailableDiplomas returns the diplomas the player may take right now, or nil.
func (p *Player) AvailableDiplomas() []*Diploma {
	return p.game.FindAvailableDiplomas(p)
}
