package game

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// An Oracle knows the rules of the game. It owns the current position
// and is the single authority on move legality and game termination.
type Oracle interface {
	Reset(fen string)
	LegalMoves() []string
	IsLegal(mov string) bool
	MakeMove(mov string) error
	SkipTurn()
	SideToMove() Side
	IsTerminal() bool
	TerminalReason() Reason
	FEN() string
}

type Side uint8

const (
	White Side = iota
	Black
	SideN
)

func (side Side) Other() Side {
	return side ^ 1
}

func (side Side) String() string {
	if side == White {
		return "white"
	}

	return "black"
}

// Reason describes why a position is terminal, if it is.
type Reason uint8

const (
	Ongoing Reason = iota
	Checkmate
	Stalemate
	InsufficientMaterial
	ClaimableDraw
)

func (reason Reason) String() string {
	switch reason {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	case InsufficientMaterial:
		return "Insufficient Material"
	case ClaimableDraw:
		return "Claimable Draw"
	default:
		return "Ongoing"
	}
}
