package engine

import (
	"slices"

	"go.uber.org/zap"
)

// Inventory holds everything one player has accumulated.
type Inventory struct {
	Credits         int             `json:"credits"`
	PenCount        int             `json:"pen_count"`
	PersonalWorks   []*PersonalWork `json:"personal_works"`
	UVs             []*UV           `json:"uvs"`
	Diplomas        []*Diploma      `json:"diplomas"`
	RefusedDiplomas []*Diploma      `json:"refused_diplomas"`
	ExhaustedGroups []*DiplomaGroup `json:"exhausted_groups"`
	HasProfessor    bool            `json:"has_professor"`

	log *zap.Logger
}

// NewInventory returns an empty inventory holding startingPens pens.
func NewInventory(startingPens int, log *zap.Logger) *Inventory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Inventory{PenCount: startingPens, log: log}
}

func (inv *Inventory) AddPersonalWork(pw *PersonalWork) {
	inv.PersonalWorks = append(inv.PersonalWorks, pw)
}

func (inv *Inventory) AddUV(uv *UV) {
	inv.UVs = append(inv.UVs, uv)
}

// AddDiploma takes d: the diploma leaves its group's pool, the group is exhausted for
// this inventory and the credits are banked. Taking an owned diploma again is a no-op.
func (inv *Inventory) AddDiploma(d *Diploma) {
	if inv.OwnsDiploma(d) {
		inv.log.Warn("diploma already owned, ignoring", zap.String("group", groupName(d)))
		return
	}
	inv.Diplomas = append(inv.Diplomas, d)
	if d.Group != nil {
		if !inv.GroupExhausted(d.Group) {
			inv.ExhaustedGroups = append(inv.ExhaustedGroups, d.Group)
		}
		d.Group.remove(d)
	}
	inv.Credits += d.Credits
}

// AddRefusedDiploma records that the player declined d.
func (inv *Inventory) AddRefusedDiploma(d *Diploma) {
	if inv.RefusedDiploma(d) {
		inv.log.Warn("diploma already refused, ignoring", zap.String("group", groupName(d)))
		return
	}
	inv.RefusedDiplomas = append(inv.RefusedDiplomas, d)
}

func (inv *Inventory) OwnsDiploma(d *Diploma) bool {
	return slices.Contains(inv.Diplomas, d)
}

func (inv *Inventory) RefusedDiploma(d *Diploma) bool {
	return slices.Contains(inv.RefusedDiplomas, d)
}

func (inv *Inventory) GroupExhausted(g *DiplomaGroup) bool {
	return slices.Contains(inv.ExhaustedGroups, g)
}

// SkillCount counts owned PersonalWorks of the given skill, pen or not.
func (inv *Inventory) SkillCount(s Skill) int {
	n := 0
	for _, pw := range inv.PersonalWorks {
		if pw.Skill == s {
			n++
		}
	}
	return n
}

// CategoryCount counts owned UVs of the given category.
func (inv *Inventory) CategoryCount(c UVCategory) int {
	n := 0
	for _, uv := range inv.UVs {
		if uv.Category == c {
			n++
		}
	}
	return n
}

// Counts returns owned UVs per category and owned PersonalWorks per skill.
func (inv *Inventory) Counts() (uvs [UVCategoryCount]int, skills [SkillCount]int) {
	for _, uv := range inv.UVs {
		if i := uv.Category.Index(); i >= 0 {
			uvs[i]++
		}
	}
	for _, pw := range inv.PersonalWorks {
		if i := pw.Skill.Index(); i >= 0 {
			skills[i]++
		}
	}
	return uvs, skills
}

// PlacePen moves a pen token onto the i-th owned PersonalWork.
func (inv *Inventory) PlacePen(i int) error {
	if i < 0 || i >= len(inv.PersonalWorks) {
		return ErrInvalidAction
	}
	pw := inv.PersonalWorks[i]
	if pw.HasPen {
		return ErrInvalidAction
	}
	if inv.PenCount <= 0 {
		return ErrNoPenAvailable
	}
	inv.PenCount--
	pw.HasPen = true
	return nil
}

// LiftPen takes the pen back from the i-th owned PersonalWork.
func (inv *Inventory) LiftPen(i int) error {
	if i < 0 || i >= len(inv.PersonalWorks) {
		return ErrInvalidAction
	}
	pw := inv.PersonalWorks[i]
	if !pw.HasPen {
		return ErrInvalidAction
	}
	pw.HasPen = false
	inv.PenCount++
	return nil
}

// inventoryState is a shallow copy used to roll back a cancelled draft.
type inventoryState struct {
	credits       int
	penCount      int
	personalWorks []*PersonalWork
	uvs           []*UV
	hasProfessor  bool
}

func (inv *Inventory) save() inventoryState {
	return inventoryState{
		credits:       inv.Credits,
		penCount:      inv.PenCount,
		personalWorks: slices.Clone(inv.PersonalWorks),
		uvs:           slices.Clone(inv.UVs),
		hasProfessor:  inv.HasProfessor,
	}
}

func (inv *Inventory) restore(s inventoryState) {
	inv.Credits = s.credits
	inv.PenCount = s.penCount
	inv.PersonalWorks = s.personalWorks
	inv.UVs = s.uvs
	inv.HasProfessor = s.hasProfessor
}

func groupName(d *Diploma) string {
	if d == nil || d.Group == nil {
		return ""
	}
	return d.Group.Name
}
