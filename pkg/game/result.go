package game

// Score represents the result of a single game.
type Score int

const (
	WhiteWins Score = +1
	Draw      Score = 0
	BlackWins Score = -1
)

// GameWonAgainst maps the side which got checkmated to the game's Score.
var GameWonAgainst = [SideN]Score{
	White: BlackWins,
	Black: WhiteWins,
}

// String returns a string representation of the given Score.
func (score Score) String() string {
	switch score {
	case WhiteWins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case BlackWins:
		return "0-1"
	default:
		return "?-?"
	}
}
