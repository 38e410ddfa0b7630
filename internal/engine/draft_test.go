package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanagawa/internal/engine"
)

func TestDraftCompletesColumn(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")
	p := g.CurrentPlayer()
	first := newCard("MT90", engine.CategoryCS, engine.SkillMath, engine.SkillMath, engine.BonusCredit)
	second := newCard("IF90", engine.CategoryTM, engine.SkillInfo, engine.SkillInfo, engine.BonusNone)
	setColumn(g, 0, first, second)
	works := len(p.Inventory.PersonalWorks)
	credits := p.Inventory.Credits

	s, err := g.TakeColumn(0)
	require.NoError(t, err)
	assert.Equal(t, engine.PhaseDrafting, g.Phase)
	assert.Same(t, first, s.Current())

	res := s.Offer(engine.AssignToPersonalWorkUnpenned)
	require.Equal(t, engine.OutcomeContinue, res.Outcome)
	assert.Same(t, second, res.Next)
	assert.Equal(t, credits+1, p.Inventory.Credits)

	res = s.Offer(engine.AssignToPersonalWorkPenned)
	require.Equal(t, engine.OutcomeCompleted, res.Outcome)
	assert.False(t, res.GameOver)
	assert.True(t, s.Closed())
	assert.Nil(t, s.Current())

	assert.Equal(t, engine.PhaseTurn, g.Phase)
	assert.Nil(t, g.Draft())
	_, open := g.Round.Column(0)
	assert.False(t, open)
	assert.False(t, g.Round.IsActive(p))
	assert.Len(t, p.Inventory.PersonalWorks, works+2)
	assert.True(t, second.PersonalWork.HasPen)
	assert.Equal(t, 1, p.Inventory.PenCount)

	events := g.DrainEvents()
	require.NotEmpty(t, events)
	assert.Equal(t, engine.EventColumnTaken, events[len(events)-1].Type)
}

func TestDraftCancelRestoresState(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")
	p := g.CurrentPlayer()
	var other *engine.Player
	for _, q := range g.Players {
		if q != p {
			other = q
		}
	}
	// Move the professor away so the card below hands it back.
	p.Inventory.HasProfessor = false
	other.Inventory.HasProfessor = true

	prof := newCard("GE90", engine.CategoryTSS, engine.SkillManagement, engine.SkillManagement, engine.BonusProfessor)
	pen := newCard("GE91", engine.CategoryTSS, engine.SkillIndustry, engine.SkillIndustry, engine.BonusPen)
	last := newCard("GE92", engine.CategoryTSS, engine.SkillIndustry, engine.SkillIndustry, engine.BonusNone)
	setColumn(g, 1, prof, pen, last)

	inventory := *p.Inventory
	otherInventory := *other.Inventory
	board := g.Round.Board
	active := len(g.Round.Active)

	s, err := g.TakeColumn(1)
	require.NoError(t, err)
	require.Equal(t, engine.OutcomeContinue, s.Offer(engine.AssignToPersonalWorkPenned).Outcome)
	require.Equal(t, engine.OutcomeContinue, s.Offer(engine.AssignToPersonalWorkUnpenned).Outcome)
	assert.True(t, p.Inventory.HasProfessor)
	assert.False(t, other.Inventory.HasProfessor)

	res := s.Offer(engine.Cancel)
	require.Equal(t, engine.OutcomeCancelled, res.Outcome)

	assert.Equal(t, inventory, *p.Inventory)
	assert.Equal(t, otherInventory, *other.Inventory)
	assert.Equal(t, board, g.Round.Board)
	assert.False(t, prof.PersonalWork.HasPen)
	assert.Len(t, g.Round.Active, active)
	assert.True(t, g.Round.IsActive(p))
	assert.Equal(t, engine.PhaseTurn, g.Phase)
	assert.Nil(t, g.Draft())

	again := s.Offer(engine.AssignToPersonalWorkUnpenned)
	assert.Equal(t, engine.OutcomeRejected, again.Outcome)
	assert.ErrorIs(t, again.Err, engine.ErrSessionClosed)
}

func TestDraftUVNeedsPennedSkill(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")
	p := g.CurrentPlayer()
	c := newCard("EN90", engine.CategoryCS, engine.SkillEnergy, engine.SkillErgo, engine.BonusNone)
	setColumn(g, 0, c)
	p.Inventory.AddPersonalWork(&engine.PersonalWork{Skill: engine.SkillEnergy, Bonus: engine.BonusNone})
	uvs := len(p.Inventory.UVs)

	s, err := g.TakeColumn(0)
	require.NoError(t, err)

	res := s.Offer(engine.AssignToUV)
	assert.Equal(t, engine.OutcomeRejected, res.Outcome)
	assert.ErrorIs(t, res.Err, engine.ErrSkillUnavailable)
	assert.Same(t, c, res.Next)
	assert.Equal(t, []*engine.Card{c}, s.Remaining())
	assert.Len(t, p.Inventory.UVs, uvs)
	assert.Equal(t, engine.PhaseDrafting, g.Phase)

	givePennedSkill(p, engine.SkillEnergy)
	res = s.Offer(engine.AssignToUV)
	assert.Equal(t, engine.OutcomeCompleted, res.Outcome)
	assert.Len(t, p.Inventory.UVs, uvs+1)
}

func TestDraftPennedWithoutPenFallsBackToUnpenned(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")
	p := g.CurrentPlayer()
	p.Inventory.PenCount = 0
	c := newCard("ME90", engine.CategoryTM, engine.SkillMechanics, engine.SkillMechanics, engine.BonusNone)
	setColumn(g, 0, c)

	s, err := g.TakeColumn(0)
	require.NoError(t, err)
	res := s.Offer(engine.AssignToPersonalWorkPenned)

	assert.Equal(t, engine.OutcomeCompleted, res.Outcome)
	assert.False(t, c.PersonalWork.HasPen)
	assert.Zero(t, p.Inventory.PenCount)
	assert.Contains(t, p.Inventory.PersonalWorks, c.PersonalWork)
}

func TestDraftRejectsUnknownDecision(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")
	s, err := g.TakeColumn(0)
	require.NoError(t, err)

	res := s.Offer(engine.DecisionNone)
	assert.Equal(t, engine.OutcomeRejected, res.Outcome)
	assert.ErrorIs(t, res.Err, engine.ErrInvalidAction)
	assert.False(t, s.Closed())
}

func TestDraftEndsGameOnUVGoal(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")
	p := g.CurrentPlayer()
	for len(p.Inventory.UVs) < g.Config.UVGoal-1 {
		p.Inventory.AddUV(&engine.UV{Code: "XX00", Category: engine.CategoryEC, RequiredSkill: engine.SkillLanguage})
	}
	givePennedSkill(p, engine.SkillLanguage)
	goal := newCard("LA90", engine.CategoryEC, engine.SkillLanguage, engine.SkillLanguage, engine.BonusNone)
	extra := newCard("LA91", engine.CategoryEC, engine.SkillLanguage, engine.SkillLanguage, engine.BonusNone)
	setColumn(g, 0, goal, extra)

	s, err := g.TakeColumn(0)
	require.NoError(t, err)
	res := s.Offer(engine.AssignToUV)

	require.Equal(t, engine.OutcomeCompleted, res.Outcome)
	assert.True(t, res.GameOver)
	assert.True(t, g.CheckGameIsOver())
	assert.Equal(t, engine.PhaseGameOver, g.Phase)
	assert.Len(t, p.Inventory.UVs, g.Config.UVGoal)
	_, open := g.Round.Column(0)
	assert.False(t, open)

	_, err = g.TakeColumn(1)
	assert.ErrorIs(t, err, engine.ErrGameOver)
}

func TestTakeColumnErrors(t *testing.T) {
	g := newStartedGame(t, newCatalog(), "ann", "bob")

	_, err := g.TakeColumn(3)
	assert.ErrorIs(t, err, engine.ErrColumnClosed)
	_, err = g.TakeColumn(-1)
	assert.ErrorIs(t, err, engine.ErrColumnClosed)

	_, err = g.TakeColumn(0)
	require.NoError(t, err)
	_, err = g.TakeColumn(1)
	assert.ErrorIs(t, err, engine.ErrDraftInProgress)
}

func TestBonusesApplyOnPersonalWork(t *testing.T) {
	tests := []struct {
		bonus   engine.Bonus
		credits int
		pens    int
	}{
		{engine.BonusNone, 0, 2},
		{engine.BonusPen, 0, 3},
		{engine.BonusCredit, 1, 2},
		{engine.BonusDoubleCredit, 2, 2},
	}
	for _, tt := range tests {
		t.Run(string(tt.bonus), func(t *testing.T) {
			g := newSeatedGame(t, newCatalog(), "ann", "bob")
			p := g.Players[0]
			p.AddToPersonalWork(newCard("BO90", engine.CategoryCS, engine.SkillMath, engine.SkillMath, tt.bonus))
			assert.Equal(t, tt.credits, p.Inventory.Credits)
			assert.Equal(t, tt.pens, p.Inventory.PenCount)
		})
	}
}

func TestProfessorIsUnique(t *testing.T) {
	g := newSeatedGame(t, newCatalog(), "ann", "bob", "cid")
	g.Players[1].Inventory.HasProfessor = true

	g.Players[2].AddToPersonalWork(newCard("PR90", engine.CategoryCS, engine.SkillMath, engine.SkillMath, engine.BonusProfessor))

	holders := 0
	for _, p := range g.Players {
		if p.Inventory.HasProfessor {
			holders++
		}
	}
	assert.Equal(t, 1, holders)
	assert.True(t, g.Players[2].Inventory.HasProfessor)
}

func TestRemovePenAtZeroWarns(t *testing.T) {
	log, logs := observedLogger()
	g, err := engine.NewGame(newCatalog(), engine.DefaultConfig(), engine.WithLogger(log))
	require.NoError(t, err)
	players, err := g.AddPlayers("ann", "bob")
	require.NoError(t, err)
	p := players[0]

	p.RemovePen()
	p.RemovePen()
	p.RemovePen()

	assert.Zero(t, p.Inventory.PenCount)
	assert.False(t, p.HasPen())
	assert.Equal(t, 1, logs.FilterMessage("no pen left to remove").Len())
}
