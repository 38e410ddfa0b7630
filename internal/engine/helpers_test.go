package engine_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"kanagawa/internal/engine"
)

// staticCatalog hands out fresh copies of in-memory cards and diplomas.
type staticCatalog struct {
	cards     func() []*engine.Card
	groups    func() []*engine.DiplomaGroup
	cardLoads int
}

func (s *staticCatalog) LoadCards() ([]*engine.Card, error) {
	s.cardLoads++
	return s.cards(), nil
}

func (s *staticCatalog) LoadDiplomaGroups() ([]*engine.DiplomaGroup, error) {
	return s.groups(), nil
}

var testBonuses = []engine.Bonus{
	engine.BonusNone, engine.BonusPen, engine.BonusCredit,
	engine.BonusNone, engine.BonusDoubleCredit, engine.BonusProfessor,
}

func newCard(code string, cat engine.UVCategory, need, skill engine.Skill, bonus engine.Bonus) *engine.Card {
	return &engine.Card{
		PersonalWork: &engine.PersonalWork{Skill: skill, Bonus: bonus},
		UV:           &engine.UV{Code: code, Category: cat, RequiredSkill: need},
	}
}

// testCards returns n cards, the first four of them starters.
func testCards(n int) []*engine.Card {
	skills := engine.AllSkills()
	cats := engine.AllCategories()
	cards := make([]*engine.Card, n)
	for i := range cards {
		bonus := testBonuses[i%len(testBonuses)]
		if i < 4 {
			bonus = engine.BonusNone
		}
		skill := skills[i%len(skills)]
		cards[i] = newCard(fmt.Sprintf("UV%02d", i), cats[i%len(cats)], skill, skill, bonus)
		cards[i].StarterCard = i < 4
	}
	return cards
}

func diploma(credits int, uvs ...int) *engine.Diploma {
	return &engine.Diploma{
		RequiredUVs:    uvs,
		RequiredSkills: make([]int, engine.SkillCount),
		Credits:        credits,
	}
}

// testGroups needs three UVs of one category per diploma, out of reach in the
// opening rounds.
func testGroups() []*engine.DiplomaGroup {
	return []*engine.DiplomaGroup{
		{Name: "Science", Diplomas: []*engine.Diploma{diploma(4, 3, 0, 0, 0), diploma(6, 4, 1, 0, 0)}},
		{Name: "Methods", Diplomas: []*engine.Diploma{diploma(4, 0, 3, 0, 0)}},
		{Name: "Humanities", Diplomas: []*engine.Diploma{diploma(5, 0, 0, 3, 0), diploma(5, 0, 0, 0, 3)}},
	}
}

func newCatalog() *staticCatalog {
	return &staticCatalog{
		cards:  func() []*engine.Card { return testCards(24) },
		groups: testGroups,
	}
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.WarnLevel)
	return zap.New(core), logs
}

func newSeatedGame(t *testing.T, src engine.CatalogSource, names ...string) *engine.Game {
	t.Helper()
	g, err := engine.NewGame(src, engine.DefaultConfig(), engine.WithRand(seeded()))
	require.NoError(t, err)
	_, err = g.AddPlayers(names...)
	require.NoError(t, err)
	return g
}

func newStartedGame(t *testing.T, src engine.CatalogSource, names ...string) *engine.Game {
	t.Helper()
	g := newSeatedGame(t, src, names...)
	require.NoError(t, g.Start())
	g.DrainEvents()
	return g
}

// setColumn replaces the cards of board column i.
func setColumn(g *engine.Game, i int, cards ...*engine.Card) {
	g.Round.Board[i] = engine.Column{Open: true, Cards: cards}
}

// givePennedSkill hands p a PersonalWork of skill s with a pen already on it.
func givePennedSkill(p *engine.Player, s engine.Skill) {
	p.Inventory.AddPersonalWork(&engine.PersonalWork{Skill: s, Bonus: engine.BonusNone, HasPen: true})
}
