// Package catalog decodes the static card and diploma data from YAML.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"kanagawa/internal/engine"
)

const (
	CardsFile    = "cards.yaml"
	DiplomasFile = "diplomas.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type cardsDoc struct {
	Cards []*cardDTO `yaml:"cards"`
}

type cardDTO struct {
	UV           *uvDTO           `yaml:"uv"`
	PersonalWork *personalWorkDTO `yaml:"personal_work"`
	Starter      bool             `yaml:"starter"`
}

type uvDTO struct {
	Code     string `yaml:"code"`
	Category string `yaml:"category"`
	Skill    string `yaml:"skill"`
}

type personalWorkDTO struct {
	Skill  string `yaml:"skill"`
	Bonus  string `yaml:"bonus"`
	HasPen bool   `yaml:"has_pen"`
}

type diplomasDoc struct {
	Groups []*groupDTO `yaml:"groups"`
}

type groupDTO struct {
	Name     string        `yaml:"name"`
	Diplomas []*diplomaDTO `yaml:"diplomas"`
}

type diplomaDTO struct {
	UVs     []int `yaml:"uvs"`
	Skills  []int `yaml:"skills"`
	Credits int   `yaml:"credits"`
}

// Source reads cards.yaml and diplomas.yaml from a file system. It implements
// engine.CatalogSource and decodes a fresh object graph on every call.
type Source struct {
	fsys fs.FS
}

// New returns a Source reading from the root of fsys.
func New(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Embedded returns a Source over the catalog compiled into the binary.
func Embedded() *Source {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return New(sub)
}

// Dir returns a Source reading from a directory on disk.
func Dir(path string) *Source {
	return New(os.DirFS(path))
}

// LoadCards decodes every card. Unknown enum names decode to the unset value and are
// reported by engine validation with the card's position.
func (s *Source) LoadCards() ([]*engine.Card, error) {
	var doc cardsDoc
	if err := s.decode(CardsFile, &doc); err != nil {
		return nil, err
	}
	cards := make([]*engine.Card, len(doc.Cards))
	for i, dto := range doc.Cards {
		cards[i] = dto.toCard()
	}
	return cards, nil
}

// LoadDiplomaGroups decodes every diploma group in file order.
func (s *Source) LoadDiplomaGroups() ([]*engine.DiplomaGroup, error) {
	var doc diplomasDoc
	if err := s.decode(DiplomasFile, &doc); err != nil {
		return nil, err
	}
	groups := make([]*engine.DiplomaGroup, len(doc.Groups))
	for i, dto := range doc.Groups {
		groups[i] = dto.toGroup()
	}
	return groups, nil
}

func (s *Source) decode(name string, v interface{}) error {
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (dto *cardDTO) toCard() *engine.Card {
	if dto == nil {
		return nil
	}
	c := &engine.Card{StarterCard: dto.Starter}
	if dto.UV != nil {
		category, _ := engine.ParseCategory(dto.UV.Category)
		skill, _ := engine.ParseSkill(dto.UV.Skill)
		c.UV = &engine.UV{Code: dto.UV.Code, Category: category, RequiredSkill: skill}
	}
	if dto.PersonalWork != nil {
		skill, _ := engine.ParseSkill(dto.PersonalWork.Skill)
		bonus, _ := engine.ParseBonus(dto.PersonalWork.Bonus)
		c.PersonalWork = &engine.PersonalWork{Skill: skill, Bonus: bonus, HasPen: dto.PersonalWork.HasPen}
	}
	return c
}

func (dto *groupDTO) toGroup() *engine.DiplomaGroup {
	if dto == nil {
		return nil
	}
	g := &engine.DiplomaGroup{Name: dto.Name}
	if dto.Diplomas != nil {
		g.Diplomas = make([]*engine.Diploma, len(dto.Diplomas))
		for i, d := range dto.Diplomas {
			if d != nil {
				g.Diplomas[i] = &engine.Diploma{RequiredUVs: d.UVs, RequiredSkills: d.Skills, Credits: d.Credits}
			}
		}
	}
	return g
}
