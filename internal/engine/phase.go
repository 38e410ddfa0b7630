package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhaseSetup    GamePhase = iota // seating players, nothing dealt yet
	PhaseTurn                      // current player may take a column, move pens or pass
	PhaseDrafting                  // a column-take sequence is in progress
	PhaseGameOver                  // end condition reached
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:    "Setup",
	PhaseTurn:     "Turn",
	PhaseDrafting: "Drafting",
	PhaseGameOver: "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
