package engine

import "fmt"

// UV is the academic-credit half of a card.
type UV struct {
	Code          string     `json:"code"`
	Category      UVCategory `json:"category"`
	RequiredSkill Skill      `json:"required_skill"`
}

func (u *UV) String() string {
	return fmt.Sprintf("%s (%s, needs %s)", u.Code, u.Category, u.RequiredSkill)
}

// PersonalWork is the skill-training half of a card. HasPen is its only mutable field.
type PersonalWork struct {
	Skill  Skill `json:"skill"`
	Bonus  Bonus `json:"bonus"`
	HasPen bool  `json:"has_pen"`
}

func (pw *PersonalWork) String() string {
	pen := ""
	if pw.HasPen {
		pen = " +pen"
	}
	return fmt.Sprintf("%s [%s]%s", pw.Skill, pw.Bonus, pen)
}

// Card is a drafting unit. Its two halves are assigned to an inventory independently.
type Card struct {
	PersonalWork *PersonalWork `json:"personal_work"`
	UV           *UV           `json:"uv"`
	StarterCard  bool          `json:"starter_card"`
}

func (c *Card) String() string {
	if c.UV == nil {
		return "?"
	}
	return c.UV.Code
}
