package engine

// GameConfig holds the rule constants of a game.
type GameConfig struct {
	MaxRounds     int // the game ends once this many rounds have been reached
	UVGoal        int // the game ends once a player owns this many UVs
	StartingPens  int // pens in every new inventory
	MaxExtraDeals int // extra deals per round after every active player passed
	MinPlayers    int
	MaxPlayers    int
}

func DefaultConfig() GameConfig {
	return GameConfig{
		MaxRounds:     15,
		UVGoal:        11,
		StartingPens:  2,
		MaxExtraDeals: 2,
		MinPlayers:    2,
		MaxPlayers:    BoardColumns,
	}
}
