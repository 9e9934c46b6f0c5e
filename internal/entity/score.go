package entity

// Score is the running tally of one play session.
type Score struct {
	SessionID string         `json:"session_id"`
	Wins      map[Symbol]int `json:"wins"`
	Draws     int            `json:"draws"`
}

func NewScore(sessionID string) *Score {
	return &Score{
		SessionID: sessionID,
		Wins:      make(map[Symbol]int),
	}
}

// WinsOf - number of rounds won by the symbol, zero when it never won.
func (that *Score) WinsOf(symbol Symbol) int {
	return that.Wins[symbol]
}

// Rounds - total number of recorded rounds.
func (that *Score) Rounds() int {
	total := that.Draws
	for _, wins := range that.Wins {
		total += wins
	}

	return total
}
