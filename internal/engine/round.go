package engine

import (
	"slices"

	"go.uber.org/zap"
)

// BoardColumns is the number of columns on the shared board.
const BoardColumns = 4

// Column is one stack of cards on the board. A closed column holds no cards and is
// never dealt into again during the round.
type Column struct {
	Open  bool    `json:"open"`
	Cards []*Card `json:"cards"`
}

// RoundState is the lifecycle of a Round.
type RoundState int

const (
	RoundActive    RoundState = iota // open columns and eligible players remain
	RoundExhausted                   // every column taken or every player done
)

func (s RoundState) String() string {
	if s == RoundExhausted {
		return "Exhausted"
	}
	return "Active"
}

// Round owns the board and the turn order for one pass over the board.
type Round struct {
	Board   [BoardColumns]Column `json:"board"`
	Players []*Player            `json:"-"` // turn order for this round, never shrinks
	Active  []*Player            `json:"-"` // players who have not taken a column yet
	Current *Player              `json:"-"`

	log *zap.Logger
}

// NewRound creates a round over players with every column open.
func NewRound(players []*Player, log *zap.Logger) *Round {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Round{log: log}
	for i := range r.Board {
		r.Board[i].Open = true
	}
	r.SetRemainingPlayers(players)
	return r
}

// SetRemainingPlayers resets both the turn order and the eligible set.
func (r *Round) SetRemainingPlayers(players []*Player) {
	r.Players = slices.Clone(players)
	r.Active = slices.Clone(players)
}

// InitBoardWithPlayersCount keeps one open column per player and closes the rest.
func (r *Round) InitBoardWithPlayersCount() {
	for i := range r.Board {
		if i < len(r.Players) {
			r.Board[i] = Column{Open: true}
		} else {
			r.Board[i] = Column{}
		}
	}
}

// RemainingColumns counts open columns.
func (r *Round) RemainingColumns() int {
	n := 0
	for _, c := range r.Board {
		if c.Open {
			n++
		}
	}
	return n
}

// AddCards deals cards one-for-one into the open columns in ascending order.
func (r *Round) AddCards(cards []*Card) {
	if len(cards) != r.RemainingColumns() {
		r.log.Warn("card count does not match open columns, ignoring deal",
			zap.Int("cards", len(cards)),
			zap.Int("open_columns", r.RemainingColumns()),
		)
		return
	}
	next := 0
	for i := range r.Board {
		if !r.Board[i].Open {
			continue
		}
		r.Board[i].Cards = append(r.Board[i].Cards, cards[next])
		next++
	}
}

// Column returns the cards of column i and whether it is open.
func (r *Round) Column(i int) ([]*Card, bool) {
	if i < 0 || i >= BoardColumns || !r.Board[i].Open {
		return nil, false
	}
	return r.Board[i].Cards, true
}

// RemoveColumn closes column i and returns its cards.
func (r *Round) RemoveColumn(i int) ([]*Card, bool) {
	if i < 0 || i >= BoardColumns || !r.Board[i].Open {
		r.log.Warn("invalid column index, ignoring removal", zap.Int("column", i))
		return nil, false
	}
	cards := r.Board[i].Cards
	r.Board[i] = Column{}
	return cards, true
}

// SetCurrentPlayer hands the turn to p.
func (r *Round) SetCurrentPlayer(p *Player) {
	r.Current = p
}

// NextPlayer moves the turn cursor to the next player of the original round order,
// wrapping around. Players who already took a column are not skipped here.
func (r *Round) NextPlayer() {
	if len(r.Players) == 0 {
		return
	}
	if r.Current != nil {
		r.Current.Acting = false
	}
	i := slices.Index(r.Players, r.Current)
	r.Current = r.Players[(i+1)%len(r.Players)]
	r.Current.Acting = true
}

// IsActive reports whether p may still take a column this round.
func (r *Round) IsActive(p *Player) bool {
	return slices.Contains(r.Active, p)
}

// RemoveActive marks p as done for the round.
func (r *Round) RemoveActive(p *Player) {
	if i := slices.Index(r.Active, p); i >= 0 {
		r.Active = slices.Delete(r.Active, i, i+1)
	}
}

func (r *Round) State() RoundState {
	if r.RemainingColumns() == 0 || len(r.Active) == 0 {
		return RoundExhausted
	}
	return RoundActive
}
