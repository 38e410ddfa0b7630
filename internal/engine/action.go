package engine

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	ActionTakeColumn    ActionType = "take_column"
	ActionDecide        ActionType = "decide"
	ActionEndTurn       ActionType = "end_turn"
	ActionAcceptDiploma ActionType = "accept_diploma"
	ActionRefuseDiploma ActionType = "refuse_diploma"
	ActionPlacePen      ActionType = "place_pen"
	ActionLiftPen       ActionType = "lift_pen"
)

// Action is a player's action input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// take_column: Column
	// decide: Decision
	// accept_diploma, refuse_diploma: Index into the player's available diplomas
	// place_pen, lift_pen: Index into the player's personal works
	Column   int      `json:"column,omitempty"`
	Decision Decision `json:"decision,omitempty"`
	Index    int      `json:"index,omitempty"`
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventGameStarted    EventType = "game_started"
	EventCardsDealt     EventType = "cards_dealt"
	EventDeckReloaded   EventType = "deck_reloaded"
	EventDraftStarted   EventType = "draft_started"
	EventCardAssigned   EventType = "card_assigned"
	EventDraftCancelled EventType = "draft_cancelled"
	EventColumnTaken    EventType = "column_taken"
	EventDiplomaTaken   EventType = "diploma_taken"
	EventDiplomaRefused EventType = "diploma_refused"
	EventPenMoved       EventType = "pen_moved"
	EventTurnPassed     EventType = "turn_passed"
	EventTurnStarted    EventType = "turn_started"
	EventRoundStarted   EventType = "round_started"
	EventGameOver       EventType = "game_over"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType   `json:"type"`
	Player string      `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Apply is the single entry point for player actions. It returns the events the
// action produced.
func (g *Game) Apply(playerID string, action Action) ([]Event, error) {
	g.events = nil
	if g.Phase == PhaseGameOver {
		return nil, ErrGameOver
	}
	cur := g.Round.Current
	if cur == nil || cur.ID != playerID {
		if g.GetPlayer(playerID) == nil {
			return nil, ErrPlayerNotFound
		}
		return nil, ErrNotYourTurn
	}

	var err error
	switch action.Type {
	case ActionTakeColumn:
		_, err = g.TakeColumn(action.Column)
	case ActionDecide:
		err = g.applyDecision(action.Decision)
	case ActionEndTurn:
		err = g.EndTurn()
	case ActionAcceptDiploma:
		var d *Diploma
		if d, err = g.availableDiploma(cur, action.Index); err == nil {
			err = g.AcceptDiploma(d)
		}
	case ActionRefuseDiploma:
		var d *Diploma
		if d, err = g.availableDiploma(cur, action.Index); err == nil {
			err = g.RefuseDiploma(d)
		}
	case ActionPlacePen:
		err = g.MovePen(action.Index, true)
	case ActionLiftPen:
		err = g.MovePen(action.Index, false)
	default:
		err = ErrInvalidAction
	}
	if err != nil {
		g.events = nil
		return nil, err
	}
	return g.DrainEvents(), nil
}

func (g *Game) applyDecision(d Decision) error {
	if g.draft == nil {
		return ErrWrongPhase
	}
	res := g.draft.Offer(d)
	if res.Outcome == OutcomeRejected {
		return res.Err
	}
	return nil
}

func (g *Game) availableDiploma(p *Player, i int) (*Diploma, error) {
	available := g.FindAvailableDiplomas(p)
	if i < 0 || i >= len(available) {
		return nil, ErrInvalidAction
	}
	return available[i], nil
}
