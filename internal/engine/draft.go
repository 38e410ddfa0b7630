package engine

import "slices"

// Decision is what the drafting player does with the card on offer.
type Decision int

const (
	DecisionNone                 Decision = iota
	AssignToPersonalWorkUnpenned          // keep the skill half, no pen
	AssignToPersonalWorkPenned            // keep the skill half and spend a pen on it if one is left
	AssignToUV                            // keep the credit half; needs a penned skill
	Cancel                                // undo the whole column
)

var decisionNames = map[Decision]string{
	DecisionNone:                 "None",
	AssignToPersonalWorkUnpenned: "PersonalWork",
	AssignToPersonalWorkPenned:   "PersonalWorkWithPen",
	AssignToUV:                   "UV",
	Cancel:                       "Cancel",
}

func (d Decision) String() string {
	if s, ok := decisionNames[d]; ok {
		return s
	}
	return "Unknown"
}

// Outcome is the result kind of one DraftSession step.
type Outcome int

const (
	OutcomeContinue  Outcome = iota // card resolved, StepResult.Next is on offer
	OutcomeCompleted                // column taken, session closed
	OutcomeRejected                 // decision refused, the same card is on offer again
	OutcomeCancelled                // everything rolled back, session closed
)

var outcomeNames = map[Outcome]string{
	OutcomeContinue:  "Continue",
	OutcomeCompleted: "Completed",
	OutcomeRejected:  "Rejected",
	OutcomeCancelled: "Cancelled",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "Unknown"
}

// StepResult reports what a decision did.
type StepResult struct {
	Outcome  Outcome
	Next     *Card      // card awaiting a decision, for Continue and Rejected
	Err      error      // rejection reason
	Diplomas []*Diploma // diplomas available to the player after this step
	GameOver bool
}

// DraftSession walks one player through a column, front card first. Cards stay on the
// board until the whole column is resolved, so a cancel only has to undo the player's
// side.
type DraftSession struct {
	game   *Game
	player *Player
	column int
	cards  []*Card
	pos    int
	closed bool

	before     inventoryState
	professors []bool
	pens       []bool
}

func newDraftSession(g *Game, p *Player, column int, cards []*Card) *DraftSession {
	s := &DraftSession{
		game:   g,
		player: p,
		column: column,
		cards:  slices.Clone(cards),
		before: p.Inventory.save(),
	}
	for _, other := range g.Players {
		s.professors = append(s.professors, other.Inventory.HasProfessor)
	}
	for _, c := range s.cards {
		s.pens = append(s.pens, c.PersonalWork.HasPen)
	}
	return s
}

func (s *DraftSession) Player() *Player { return s.player }
func (s *DraftSession) Column() int     { return s.column }

// Cards returns the whole column in its original order.
func (s *DraftSession) Cards() []*Card { return slices.Clone(s.cards) }

// Current returns the card awaiting a decision, or nil once the session is closed.
func (s *DraftSession) Current() *Card {
	if s.closed {
		return nil
	}
	return s.cards[s.pos]
}

// Remaining returns the cards not resolved yet, the current one first.
func (s *DraftSession) Remaining() []*Card {
	if s.closed {
		return nil
	}
	return slices.Clone(s.cards[s.pos:])
}

// Closed reports whether the session was completed or cancelled.
func (s *DraftSession) Closed() bool { return s.closed }

// Offer applies the player's decision to the current card.
func (s *DraftSession) Offer(d Decision) StepResult {
	if s.closed {
		return StepResult{Outcome: OutcomeRejected, Err: ErrSessionClosed}
	}
	g := s.game
	p := s.player
	card := s.cards[s.pos]

	switch d {
	case AssignToPersonalWorkUnpenned:
		p.AddToPersonalWork(card)
	case AssignToPersonalWorkPenned:
		if p.HasPen() {
			p.RemovePen()
			card.PersonalWork.HasPen = true
		}
		p.AddToPersonalWork(card)
	case AssignToUV:
		if !p.HasSkillAvailable(card.UV.RequiredSkill) {
			return StepResult{
				Outcome:  OutcomeRejected,
				Next:     card,
				Err:      ErrSkillUnavailable,
				Diplomas: g.FindAvailableDiplomas(p),
			}
		}
		p.AddToUV(card)
	case Cancel:
		s.rollback()
		return StepResult{Outcome: OutcomeCancelled, Diplomas: g.FindAvailableDiplomas(p)}
	default:
		return StepResult{Outcome: OutcomeRejected, Next: card, Err: ErrInvalidAction}
	}

	s.pos++
	g.emit(Event{Type: EventCardAssigned, Player: p.Name, Data: map[string]interface{}{
		"card": card.String(), "decision": d.String(),
	}})

	if s.pos == len(s.cards) || g.CheckGameIsOver() {
		s.commit()
		return StepResult{
			Outcome:  OutcomeCompleted,
			Diplomas: g.FindAvailableDiplomas(p),
			GameOver: g.Phase == PhaseGameOver,
		}
	}
	return StepResult{
		Outcome:  OutcomeContinue,
		Next:     s.cards[s.pos],
		Diplomas: g.FindAvailableDiplomas(p),
	}
}

// commit closes the column and ends the player's part in the round.
func (s *DraftSession) commit() {
	g := s.game
	s.closed = true
	g.Round.RemoveColumn(s.column)
	g.Round.RemoveActive(s.player)
	g.draft = nil
	g.Phase = PhaseTurn
	g.emit(Event{Type: EventColumnTaken, Player: s.player.Name, Data: map[string]interface{}{
		"column": s.column, "cards": len(s.cards),
	}})
	g.checkOver()
}

// rollback restores the player, the professor and every pen flag to their state
// before the session started.
func (s *DraftSession) rollback() {
	g := s.game
	s.closed = true
	s.player.Inventory.restore(s.before)
	for i, other := range g.Players {
		other.Inventory.HasProfessor = s.professors[i]
	}
	for i, c := range s.cards {
		c.PersonalWork.HasPen = s.pens[i]
	}
	g.draft = nil
	g.Phase = PhaseTurn
	g.emit(Event{Type: EventDraftCancelled, Player: s.player.Name, Data: map[string]interface{}{
		"column": s.column,
	}})
}
