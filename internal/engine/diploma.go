package engine

import "slices"

// MaxDiplomasPerGroup bounds the size of a DiplomaGroup.
const MaxDiplomasPerGroup = 3

// Diploma is awarded once a player holds enough UVs per category and skills per skill.
type Diploma struct {
	RequiredUVs    []int `json:"required_uvs"`    // indexed by UVCategory.Index()
	RequiredSkills []int `json:"required_skills"` // indexed by Skill.Index()
	Credits        int   `json:"credits"`

	// Group is linked during catalog validation.
	Group *DiplomaGroup `json:"-"`
}

// Satisfied reports whether the given possession counts meet every requirement.
func (d *Diploma) Satisfied(uvs [UVCategoryCount]int, skills [SkillCount]int) bool {
	for i, need := range d.RequiredUVs {
		if i >= len(uvs) || uvs[i] < need {
			return false
		}
	}
	for i, need := range d.RequiredSkills {
		if i >= len(skills) || skills[i] < need {
			return false
		}
	}
	return true
}

// DiplomaGroup is the live pool of diplomas of one family. A player may own at most
// one diploma per group, and a taken diploma leaves the pool for every player.
type DiplomaGroup struct {
	Name     string     `json:"name"`
	Diplomas []*Diploma `json:"diplomas"`
}

// Contains reports whether d is still in the pool.
func (g *DiplomaGroup) Contains(d *Diploma) bool {
	return slices.Contains(g.Diplomas, d)
}

// remove drops d from the pool; it reports whether d was present.
func (g *DiplomaGroup) remove(d *Diploma) bool {
	i := slices.Index(g.Diplomas, d)
	if i < 0 {
		return false
	}
	g.Diplomas = slices.Delete(g.Diplomas, i, i+1)
	return true
}
