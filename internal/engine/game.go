package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"go.uber.org/zap"
)

var (
	ErrNotYourTurn           = errors.New("not your turn")
	ErrInvalidAction         = errors.New("invalid action")
	ErrPlayerNotFound        = errors.New("player not found")
	ErrWrongPhase            = errors.New("wrong phase for this action")
	ErrPlayerCount           = errors.New("wrong number of players")
	ErrNotEnoughStarterCards = errors.New("not enough starter cards for every player")
	ErrEmptyCatalog          = errors.New("catalog has no cards")
	ErrColumnClosed          = errors.New("column is closed")
	ErrAlreadyDrafted        = errors.New("already took a column this round")
	ErrDraftInProgress       = errors.New("a column is being drafted")
	ErrSessionClosed         = errors.New("draft session is closed")
	ErrSkillUnavailable      = errors.New("required skill has no pen on it")
	ErrNoPenAvailable        = errors.New("no pen available")
	ErrDiplomaPending        = errors.New("an available diploma must be accepted or refused first")
	ErrMustTakeColumn        = errors.New("no deal left this round, a column must be taken")
	ErrGameOver              = errors.New("game is over")
)

// CatalogSource produces a fresh copy of the static card and diploma data on every
// call. Cards are reloaded whenever the draw pile runs out.
type CatalogSource interface {
	LoadCards() ([]*Card, error)
	LoadDiplomaGroups() ([]*DiplomaGroup, error)
}

// Option customises a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for invariant warnings and lifecycle traces.
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithRand sets the random source used for shuffles and draws.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// Game holds the entire game state. It is created once by the caller and passed to
// whatever drives it.
type Game struct {
	Players       []*Player       `json:"players"`
	Deck          *Deck           `json:"-"`
	DiplomaGroups []*DiplomaGroup `json:"diploma_groups"`
	Round         *Round          `json:"round"`
	RoundCount    int             `json:"round_count"`
	Phase         GamePhase       `json:"phase"`
	Config        GameConfig      `json:"-"`

	source CatalogSource
	rng    *rand.Rand
	log    *zap.Logger

	draft      *DraftSession
	passes     int // passes since the last deal this round
	extraDeals int // deals made this round after the opening one
	events     []Event
}

// NewGame loads and validates the catalog from src. A validation failure is returned
// as an *InvalidCatalogEntry and leaves no game behind.
func NewGame(src CatalogSource, cfg GameConfig, opts ...Option) (*Game, error) {
	g := &Game{
		Config:     cfg,
		RoundCount: 1,
		Phase:      PhaseSetup,
		source:     src,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	cards, err := g.loadCards()
	if err != nil {
		return nil, err
	}
	groups, err := src.LoadDiplomaGroups()
	if err != nil {
		return nil, fmt.Errorf("load diplomas: %w", err)
	}
	if err := ValidateDiplomaGroups(groups); err != nil {
		return nil, fmt.Errorf("load diplomas: %w", err)
	}

	g.Deck = NewDeck(cards, g.rng)
	g.DiplomaGroups = groups
	g.Round = NewRound(nil, g.log)
	return g, nil
}

func (g *Game) loadCards() ([]*Card, error) {
	cards, err := g.source.LoadCards()
	if err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	if err := ValidateCards(cards); err != nil {
		return nil, fmt.Errorf("load cards: %w", err)
	}
	return cards, nil
}

// AddPlayers seats every player of the game at once.
func (g *Game) AddPlayers(names ...string) ([]*Player, error) {
	if g.Phase != PhaseSetup || len(g.Players) > 0 {
		return nil, ErrWrongPhase
	}
	if len(names) < g.Config.MinPlayers || len(names) > g.Config.MaxPlayers {
		return nil, fmt.Errorf("%w: got %d, want %d to %d",
			ErrPlayerCount, len(names), g.Config.MinPlayers, g.Config.MaxPlayers)
	}
	for _, name := range names {
		g.Players = append(g.Players, NewPlayer(g, name))
	}
	g.Round.SetRemainingPlayers(g.Players)
	return g.Players, nil
}

// ChooseRandomFirstPlayer hands the first turn and the professor to a random player.
func (g *Game) ChooseRandomFirstPlayer() {
	if len(g.Players) == 0 {
		g.log.Warn("no players seated, cannot choose a first player")
		return
	}
	p := g.Players[g.rng.IntN(len(g.Players))]
	p.Acting = true
	p.FirstPlayer = true
	p.Inventory.HasProfessor = true
	g.Round.SetCurrentPlayer(p)
}

// RandomFirstCardForPlayers gives every player a distinct starter card, split at once
// into their personal work and UVs.
func (g *Game) RandomFirstCardForPlayers() error {
	starters := g.Deck.StarterCards()
	if len(starters) < len(g.Players) {
		return fmt.Errorf("%w: %d starter cards for %d players",
			ErrNotEnoughStarterCards, len(starters), len(g.Players))
	}
	for _, p := range g.Players {
		i := g.rng.IntN(len(starters))
		card := starters[i]
		starters = slices.Delete(starters, i, i+1)
		g.Deck.Remove(card)

		p.AddToPersonalWork(card)
		p.AddToUV(card)
	}
	return nil
}

func (g *Game) ShuffleCards() {
	g.Deck.Shuffle()
}

// DistributeCards deals one card to every open column. An empty draw pile is refilled
// from a fresh copy of the catalog mid-deal.
func (g *Game) DistributeCards() error {
	n := g.Round.RemainingColumns()
	cards := make([]*Card, 0, n)
	for range n {
		if g.Deck.Len() == 0 {
			if err := g.reloadDeck(); err != nil {
				return err
			}
		}
		cards = append(cards, g.Deck.Draw())
	}
	g.Round.AddCards(cards)
	g.emit(Event{Type: EventCardsDealt, Data: map[string]interface{}{"cards": n}})
	return nil
}

func (g *Game) reloadDeck() error {
	cards, err := g.loadCards()
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		return ErrEmptyCatalog
	}
	g.Deck.Replace(cards)
	g.Deck.Shuffle()
	g.log.Info("draw pile empty, catalog reloaded", zap.Int("cards", len(cards)))
	g.emit(Event{Type: EventDeckReloaded, Data: map[string]interface{}{"cards": len(cards)}})
	return nil
}

// NextRound replaces the exhausted round. The professor holder starts the new one.
func (g *Game) NextRound() {
	g.Round = NewRound(g.Players, g.log)
	g.RoundCount++
	g.passes = 0
	g.extraDeals = 0

	for _, p := range g.Players {
		p.FirstPlayer = false
		p.Acting = false
		if p.Inventory.HasProfessor {
			g.Round.SetCurrentPlayer(p)
		}
	}
	cur := g.Round.Current
	if cur == nil {
		if len(g.Players) == 0 {
			g.log.Warn("no players seated, round has no current player")
			return
		}
		g.log.Warn("nobody holds the professor, first seat starts the round")
		cur = g.Players[0]
		g.Round.SetCurrentPlayer(cur)
	}
	cur.FirstPlayer = true
	cur.Acting = true

	g.log.Debug("round started", zap.Int("round", g.RoundCount), zap.String("first", cur.Name))
	g.emit(Event{Type: EventRoundStarted, Player: cur.Name, Data: map[string]interface{}{
		"round": g.RoundCount,
	}})
}

// CheckGameIsOver reports whether the round limit or the UV goal has been reached.
func (g *Game) CheckGameIsOver() bool {
	if g.RoundCount >= g.Config.MaxRounds {
		return true
	}
	for _, p := range g.Players {
		if len(p.Inventory.UVs) >= g.Config.UVGoal {
			return true
		}
	}
	return false
}

// checkOver moves the game to PhaseGameOver once an end condition holds.
func (g *Game) checkOver() bool {
	if g.Phase == PhaseGameOver {
		return true
	}
	if !g.CheckGameIsOver() {
		return false
	}
	g.Phase = PhaseGameOver
	for _, p := range g.Players {
		p.Acting = false
	}
	g.log.Info("game over", zap.Int("round", g.RoundCount))
	g.emit(Event{Type: EventGameOver, Data: map[string]interface{}{"standings": g.Standings()}})
	return true
}

// FindAvailableDiplomas returns, in group then declaration order, every diploma p may
// take now, or nil when there is none.
func (g *Game) FindAvailableDiplomas(p *Player) []*Diploma {
	inv := p.Inventory
	uvs, skills := inv.Counts()

	var out []*Diploma
	for _, group := range g.DiplomaGroups {
		if inv.GroupExhausted(group) {
			continue
		}
		for _, d := range group.Diplomas {
			if inv.RefusedDiploma(d) || inv.OwnsDiploma(d) {
				continue
			}
			if d.Satisfied(uvs, skills) {
				out = append(out, d)
			}
		}
	}
	return out
}

// Start deals the opening position: first player, starter cards, board and first deal.
func (g *Game) Start() error {
	if g.Phase != PhaseSetup {
		return ErrWrongPhase
	}
	if len(g.Players) < g.Config.MinPlayers {
		return fmt.Errorf("%w: got %d, want at least %d", ErrPlayerCount, len(g.Players), g.Config.MinPlayers)
	}
	if g.Round.Current == nil {
		g.ChooseRandomFirstPlayer()
	}
	g.ShuffleCards()
	if err := g.RandomFirstCardForPlayers(); err != nil {
		return err
	}
	g.Round.SetRemainingPlayers(g.Players)
	g.Round.InitBoardWithPlayersCount()
	if err := g.DistributeCards(); err != nil {
		return err
	}
	g.Phase = PhaseTurn
	g.emit(Event{Type: EventGameStarted, Player: g.Round.Current.Name, Data: map[string]interface{}{
		"players": len(g.Players),
	}})
	return nil
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *Player {
	return g.Round.Current
}

// Draft returns the column-take sequence in progress, if any.
func (g *Game) Draft() *DraftSession {
	return g.draft
}

// TakeColumn starts drafting column i for the current player.
func (g *Game) TakeColumn(i int) (*DraftSession, error) {
	if err := g.requireTurn(); err != nil {
		return nil, err
	}
	p := g.Round.Current
	if !g.Round.IsActive(p) {
		return nil, ErrAlreadyDrafted
	}
	cards, ok := g.Round.Column(i)
	if !ok {
		return nil, ErrColumnClosed
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: column %d is empty", ErrInvalidAction, i)
	}

	g.draft = newDraftSession(g, p, i, cards)
	g.Phase = PhaseDrafting
	g.emit(Event{Type: EventDraftStarted, Player: p.Name, Data: map[string]interface{}{
		"column": i, "cards": len(cards),
	}})
	return g.draft, nil
}

// AcceptDiploma gives d to the current player. d must be one of their available
// diplomas.
func (g *Game) AcceptDiploma(d *Diploma) error {
	if err := g.requireTurn(); err != nil {
		return err
	}
	p := g.Round.Current
	if !slices.Contains(g.FindAvailableDiplomas(p), d) {
		return fmt.Errorf("%w: diploma not available", ErrInvalidAction)
	}
	p.Inventory.AddDiploma(d)
	g.emit(Event{Type: EventDiplomaTaken, Player: p.Name, Data: map[string]interface{}{
		"group": d.Group.Name, "credits": d.Credits,
	}})
	g.checkOver()
	return nil
}

// RefuseDiploma records that the current player declines d.
func (g *Game) RefuseDiploma(d *Diploma) error {
	if err := g.requireTurn(); err != nil {
		return err
	}
	p := g.Round.Current
	if !slices.Contains(g.FindAvailableDiplomas(p), d) {
		return fmt.Errorf("%w: diploma not available", ErrInvalidAction)
	}
	p.Inventory.AddRefusedDiploma(d)
	g.emit(Event{Type: EventDiplomaRefused, Player: p.Name, Data: map[string]interface{}{
		"group": d.Group.Name,
	}})
	return nil
}

// MovePen places (place=true) or lifts a pen on the current player's i-th
// personal work.
func (g *Game) MovePen(i int, place bool) error {
	if err := g.requireTurn(); err != nil {
		return err
	}
	p := g.Round.Current
	var err error
	if place {
		err = p.PlacePen(i)
	} else {
		err = p.LiftPen(i)
	}
	if err != nil {
		return err
	}
	g.emit(Event{Type: EventPenMoved, Player: p.Name, Data: map[string]interface{}{
		"index": i, "placed": place, "pens": p.Inventory.PenCount,
	}})
	return nil
}

// EndTurn finishes the current player's turn. A player who has not taken a column
// yet passes; once every active player has passed another card is dealt into each
// open column, up to Config.MaxExtraDeals times per round. When nobody is left to
// act the next round starts.
func (g *Game) EndTurn() error {
	if err := g.requireTurn(); err != nil {
		return err
	}
	cur := g.Round.Current
	if g.FindAvailableDiplomas(cur) != nil {
		return ErrDiplomaPending
	}

	if g.Round.IsActive(cur) {
		if g.passes+1 >= len(g.Round.Active) && g.extraDeals >= g.Config.MaxExtraDeals {
			return ErrMustTakeColumn
		}
		g.passes++
		g.emit(Event{Type: EventTurnPassed, Player: cur.Name})
	}
	if n := len(g.Round.Active); n > 0 && g.passes >= n && g.extraDeals < g.Config.MaxExtraDeals {
		if err := g.DistributeCards(); err != nil {
			return err
		}
		g.extraDeals++
		g.passes = 0
	}

	if len(g.Round.Active) == 0 {
		g.NextRound()
		g.Round.InitBoardWithPlayersCount()
		if err := g.DistributeCards(); err != nil {
			return err
		}
		g.checkOver()
		return nil
	}

	for range g.Round.Players {
		g.Round.NextPlayer()
		if g.Round.IsActive(g.Round.Current) {
			break
		}
	}
	g.emit(Event{Type: EventTurnStarted, Player: g.Round.Current.Name})
	return nil
}

func (g *Game) requireTurn() error {
	switch g.Phase {
	case PhaseTurn:
		return nil
	case PhaseGameOver:
		return ErrGameOver
	case PhaseDrafting:
		return ErrDraftInProgress
	default:
		return ErrWrongPhase
	}
}

// GetPlayer finds a player by ID.
func (g *Game) GetPlayer(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns and clears the events recorded since the last drain.
func (g *Game) DrainEvents() []Event {
	out := g.events
	g.events = nil
	return out
}
