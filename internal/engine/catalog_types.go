package engine

import "fmt"

// Skill identifies one of the 8 skills a PersonalWork trains.
type Skill int

const (
	SkillNone       Skill = 0
	SkillMath       Skill = 1
	SkillInfo       Skill = 2
	SkillEnergy     Skill = 3
	SkillErgo       Skill = 4
	SkillMechanics  Skill = 5
	SkillIndustry   Skill = 6
	SkillLanguage   Skill = 7
	SkillManagement Skill = 8
)

// SkillCount is the number of real skills; requirement vectors have this length.
const SkillCount = 8

var skillNames = map[Skill]string{
	SkillMath:       "MATH",
	SkillInfo:       "INFO",
	SkillEnergy:     "ENERGY",
	SkillErgo:       "ERGO",
	SkillMechanics:  "MECHANICS",
	SkillIndustry:   "INDUSTRY",
	SkillLanguage:   "LANGUAGE",
	SkillManagement: "MANAGEMENT",
}

func (s Skill) String() string {
	if n, ok := skillNames[s]; ok {
		return n
	}
	return "Unknown"
}

// Valid reports whether s is one of the 8 real skills.
func (s Skill) Valid() bool {
	return s >= SkillMath && s <= SkillManagement
}

// Index returns the dense 0..SkillCount-1 index of s, or -1 for an unset skill.
func (s Skill) Index() int {
	if !s.Valid() {
		return -1
	}
	return int(s) - 1
}

// AllSkills returns the skills in index order.
func AllSkills() []Skill {
	return []Skill{
		SkillMath, SkillInfo, SkillEnergy, SkillErgo,
		SkillMechanics, SkillIndustry, SkillLanguage, SkillManagement,
	}
}

// ParseSkill maps an upper-case skill name to its Skill.
func ParseSkill(name string) (Skill, error) {
	for s, n := range skillNames {
		if n == name {
			return s, nil
		}
	}
	return SkillNone, fmt.Errorf("unknown skill %q", name)
}

// UVCategory is the credit category a UV counts towards.
type UVCategory int

const (
	CategoryNone UVCategory = 0
	CategoryCS   UVCategory = 1 // scientific knowledge
	CategoryTM   UVCategory = 2 // techniques and methods
	CategoryEC   UVCategory = 3 // expression and communication
	CategoryTSS  UVCategory = 4 // technology and social sciences
)

// UVCategoryCount is the number of real categories.
const UVCategoryCount = 4

var categoryNames = map[UVCategory]string{
	CategoryCS:  "CS",
	CategoryTM:  "TM",
	CategoryEC:  "EC",
	CategoryTSS: "TSS",
}

func (c UVCategory) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "Unknown"
}

func (c UVCategory) Valid() bool {
	return c >= CategoryCS && c <= CategoryTSS
}

// Index returns the dense 0..UVCategoryCount-1 index of c, or -1 when unset.
func (c UVCategory) Index() int {
	if !c.Valid() {
		return -1
	}
	return int(c) - 1
}

// AllCategories returns the categories in index order.
func AllCategories() []UVCategory {
	return []UVCategory{CategoryCS, CategoryTM, CategoryEC, CategoryTSS}
}

func ParseCategory(name string) (UVCategory, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return CategoryNone, fmt.Errorf("unknown UV category %q", name)
}

// Bonus is the one-shot effect a PersonalWork grants when it joins an inventory.
type Bonus string

const (
	BonusUnset        Bonus = ""
	BonusPen          Bonus = "PEN"
	BonusProfessor    Bonus = "PROFESSOR"
	BonusCredit       Bonus = "CREDIT"
	BonusDoubleCredit Bonus = "DOUBLE_CREDIT"
	BonusNone         Bonus = "NONE"
)

func (b Bonus) Valid() bool {
	switch b {
	case BonusPen, BonusProfessor, BonusCredit, BonusDoubleCredit, BonusNone:
		return true
	}
	return false
}

func ParseBonus(name string) (Bonus, error) {
	b := Bonus(name)
	if !b.Valid() {
		return BonusUnset, fmt.Errorf("unknown bonus %q", name)
	}
	return b, nil
}
