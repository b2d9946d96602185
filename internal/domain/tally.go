package domain

// Tally is the result of a series of games from one side's point of view.
type Tally struct {
	Wins   int
	Draws  int
	Losses int
}

func (t Tally) Games() int {
	return t.Wins + t.Draws + t.Losses
}

// Mirror returns the same tally from the opponent's point of view.
func (t Tally) Mirror() Tally {
	return Tally{
		Wins:   t.Losses,
		Draws:  t.Draws,
		Losses: t.Wins,
	}
}
