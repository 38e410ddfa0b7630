package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kanagawa/internal/engine"
)

func linkedGroups(t *testing.T) []*engine.DiplomaGroup {
	t.Helper()
	groups := testGroups()
	require.NoError(t, engine.ValidateDiplomaGroups(groups))
	return groups
}

func TestAddDiplomaRemovesFromPoolAndExhaustsGroup(t *testing.T) {
	groups := linkedGroups(t)
	science := groups[0]
	d := science.Diplomas[0]

	inv := engine.NewInventory(2, nil)
	inv.AddDiploma(d)

	assert.Equal(t, 4, inv.Credits)
	assert.True(t, inv.OwnsDiploma(d))
	assert.True(t, inv.GroupExhausted(science))
	assert.False(t, science.Contains(d))
	assert.Len(t, science.Diplomas, 1)
}

func TestAddDiplomaTwiceIsNoOp(t *testing.T) {
	log, logs := observedLogger()
	d := linkedGroups(t)[1].Diplomas[0]

	inv := engine.NewInventory(2, log)
	inv.AddDiploma(d)
	inv.AddDiploma(d)

	assert.Equal(t, 4, inv.Credits)
	assert.Len(t, inv.Diplomas, 1)
	assert.Len(t, inv.ExhaustedGroups, 1)
	assert.Equal(t, 1, logs.FilterMessage("diploma already owned, ignoring").Len())
}

func TestAddRefusedDiplomaTwiceWarns(t *testing.T) {
	log, logs := observedLogger()
	d := linkedGroups(t)[0].Diplomas[1]

	inv := engine.NewInventory(2, log)
	inv.AddRefusedDiploma(d)
	inv.AddRefusedDiploma(d)

	assert.True(t, inv.RefusedDiploma(d))
	assert.Len(t, inv.RefusedDiplomas, 1)
	assert.Equal(t, 1, logs.FilterMessage("diploma already refused, ignoring").Len())
}

func TestCounts(t *testing.T) {
	inv := engine.NewInventory(0, nil)
	inv.AddUV(&engine.UV{Code: "MT01", Category: engine.CategoryCS, RequiredSkill: engine.SkillMath})
	inv.AddUV(&engine.UV{Code: "MT02", Category: engine.CategoryCS, RequiredSkill: engine.SkillMath})
	inv.AddUV(&engine.UV{Code: "LA01", Category: engine.CategoryEC, RequiredSkill: engine.SkillLanguage})
	inv.AddPersonalWork(&engine.PersonalWork{Skill: engine.SkillInfo, Bonus: engine.BonusNone})
	inv.AddPersonalWork(&engine.PersonalWork{Skill: engine.SkillInfo, Bonus: engine.BonusPen, HasPen: true})

	uvs, skills := inv.Counts()
	assert.Equal(t, [engine.UVCategoryCount]int{2, 0, 1, 0}, uvs)
	assert.Equal(t, 2, skills[engine.SkillInfo.Index()])
	assert.Equal(t, 2, inv.SkillCount(engine.SkillInfo))
	assert.Equal(t, 2, inv.CategoryCount(engine.CategoryCS))
	assert.Zero(t, inv.CategoryCount(engine.CategoryTSS))
}

func TestPlaceAndLiftPen(t *testing.T) {
	inv := engine.NewInventory(1, nil)
	inv.AddPersonalWork(&engine.PersonalWork{Skill: engine.SkillMath, Bonus: engine.BonusNone})
	inv.AddPersonalWork(&engine.PersonalWork{Skill: engine.SkillErgo, Bonus: engine.BonusNone})

	require.NoError(t, inv.PlacePen(0))
	assert.True(t, inv.PersonalWorks[0].HasPen)
	assert.Zero(t, inv.PenCount)

	assert.ErrorIs(t, inv.PlacePen(1), engine.ErrNoPenAvailable)
	assert.ErrorIs(t, inv.PlacePen(0), engine.ErrInvalidAction)
	assert.ErrorIs(t, inv.PlacePen(5), engine.ErrInvalidAction)
	assert.ErrorIs(t, inv.LiftPen(1), engine.ErrInvalidAction)

	require.NoError(t, inv.LiftPen(0))
	assert.False(t, inv.PersonalWorks[0].HasPen)
	assert.Equal(t, 1, inv.PenCount)
}

func TestDiplomaSatisfied(t *testing.T) {
	d := &engine.Diploma{
		RequiredUVs:    []int{1, 0, 0, 2},
		RequiredSkills: []int{0, 1, 0, 0, 0, 0, 0, 0},
		Credits:        3,
	}
	skills := [engine.SkillCount]int{}
	skills[engine.SkillInfo.Index()] = 1

	assert.True(t, d.Satisfied([engine.UVCategoryCount]int{1, 0, 0, 2}, skills))
	assert.True(t, d.Satisfied([engine.UVCategoryCount]int{3, 1, 1, 2}, skills))
	assert.False(t, d.Satisfied([engine.UVCategoryCount]int{1, 0, 0, 1}, skills))
	assert.False(t, d.Satisfied([engine.UVCategoryCount]int{1, 0, 0, 2}, [engine.SkillCount]int{}))
}
