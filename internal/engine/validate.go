package engine

import "fmt"

// EntryKind names the kind of catalog entry that failed validation.
type EntryKind string

const (
	EntryCard         EntryKind = "card"
	EntryDiplomaGroup EntryKind = "diploma group"
	EntryDiploma      EntryKind = "diploma"
)

// InvalidCatalogEntry reports a malformed catalog entry by position. ParentIndex is
// the index of the enclosing diploma group for diplomas, and -1 otherwise.
type InvalidCatalogEntry struct {
	Kind        EntryKind
	Index       int
	ParentIndex int
	Reason      string
}

func (e *InvalidCatalogEntry) Error() string {
	if e.ParentIndex >= 0 {
		return fmt.Sprintf("invalid %s at index %d in %s %d: %s",
			e.Kind, e.Index, EntryDiplomaGroup, e.ParentIndex, e.Reason)
	}
	return fmt.Sprintf("invalid %s at index %d: %s", e.Kind, e.Index, e.Reason)
}

func invalidCard(i int, reason string) error {
	return &InvalidCatalogEntry{Kind: EntryCard, Index: i, ParentIndex: -1, Reason: reason}
}

// ValidateCards checks freshly decoded cards and reports the first bad one.
func ValidateCards(cards []*Card) error {
	for i, c := range cards {
		if c == nil || c.UV == nil || c.PersonalWork == nil {
			return invalidCard(i, "missing uv or personal work")
		}
		pw := c.PersonalWork
		if pw.HasPen {
			return invalidCard(i, "personal work already has a pen")
		}
		if !pw.Skill.Valid() {
			return invalidCard(i, "personal work has no skill")
		}
		if !pw.Bonus.Valid() {
			return invalidCard(i, "personal work has no bonus")
		}
		uv := c.UV
		if uv.Code == "" {
			return invalidCard(i, "uv has no code")
		}
		if !uv.Category.Valid() {
			return invalidCard(i, "uv has no category")
		}
		if !uv.RequiredSkill.Valid() {
			return invalidCard(i, "uv has no skill")
		}
	}
	return nil
}

// ValidateDiplomaGroups checks freshly decoded groups, reports the first bad entry and
// links every diploma to its group.
func ValidateDiplomaGroups(groups []*DiplomaGroup) error {
	for gi, g := range groups {
		if g == nil || g.Name == "" || g.Diplomas == nil {
			return &InvalidCatalogEntry{Kind: EntryDiplomaGroup, Index: gi, ParentIndex: -1,
				Reason: "missing name or diploma list"}
		}
		if len(g.Diplomas) > MaxDiplomasPerGroup {
			return &InvalidCatalogEntry{Kind: EntryDiplomaGroup, Index: gi, ParentIndex: -1,
				Reason: fmt.Sprintf("more than %d diplomas", MaxDiplomasPerGroup)}
		}
		for di, d := range g.Diplomas {
			if reason := checkDiploma(d); reason != "" {
				return &InvalidCatalogEntry{Kind: EntryDiploma, Index: di, ParentIndex: gi, Reason: reason}
			}
			d.Group = g
		}
	}
	return nil
}

func checkDiploma(d *Diploma) string {
	switch {
	case d == nil:
		return "empty entry"
	case len(d.RequiredUVs) != UVCategoryCount:
		return fmt.Sprintf("uv requirements must have %d entries", UVCategoryCount)
	case len(d.RequiredSkills) != SkillCount:
		return fmt.Sprintf("skill requirements must have %d entries", SkillCount)
	case d.Credits == 0:
		return "no credits"
	}
	return ""
}
