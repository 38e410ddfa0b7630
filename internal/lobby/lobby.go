// Package lobby seats players around the table before a game starts.
package lobby

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"kanagawa/internal/engine"
)

var (
	ErrStarted       = errors.New("game already started")
	ErrFull          = errors.New("table is full")
	ErrEmptyName     = errors.New("name is empty")
	ErrDuplicateName = errors.New("name already taken")
	ErrNotEnough     = errors.New("not enough players")
)

// Lobby is the seating roster of a hot-seat game.
type Lobby struct {
	Names      []string
	MinPlayers int
	MaxPlayers int
	Started    bool
}

// NewLobby creates an empty roster sized for cfg.
func NewLobby(cfg engine.GameConfig) *Lobby {
	return &Lobby{
		MinPlayers: cfg.MinPlayers,
		MaxPlayers: cfg.MaxPlayers,
	}
}

// Join seats a player. Names are trimmed and must be unique, ignoring case.
func (l *Lobby) Join(name string) error {
	if l.Started {
		return ErrStarted
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(l.Names) >= l.MaxPlayers {
		return ErrFull
	}
	if slices.ContainsFunc(l.Names, func(n string) bool { return strings.EqualFold(n, name) }) {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	l.Names = append(l.Names, name)
	return nil
}

// Leave removes a seated player.
func (l *Lobby) Leave(name string) {
	if i := slices.Index(l.Names, name); i >= 0 {
		l.Names = slices.Delete(l.Names, i, i+1)
	}
}

// CanStart reports whether enough players are seated.
func (l *Lobby) CanStart() bool {
	return !l.Started && len(l.Names) >= l.MinPlayers
}

// Start seats the roster in g and deals the opening position.
func (l *Lobby) Start(g *engine.Game) ([]*engine.Player, error) {
	if l.Started {
		return nil, ErrStarted
	}
	if len(l.Names) < l.MinPlayers {
		return nil, fmt.Errorf("%w: %d seated, need %d", ErrNotEnough, len(l.Names), l.MinPlayers)
	}
	players, err := g.AddPlayers(l.Names...)
	if err != nil {
		return nil, err
	}
	if err := g.Start(); err != nil {
		return nil, err
	}
	l.Started = true
	return players, nil
}

// GetPlayers returns a copy of the seated names.
func (l *Lobby) GetPlayers() []string {
	return slices.Clone(l.Names)
}
