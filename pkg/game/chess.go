package game

import (
	"errors"
	"strings"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/move"
	"laptudirm.com/x/mess/pkg/formats/fen"
)

// ChessOracle implements Oracle on top of the mess move generator.
type ChessOracle struct {
	board *board.Board
	moves []move.Move
}

func NewChessOracle(fenstr string) *ChessOracle {
	var oracle ChessOracle
	oracle.Reset(fenstr)
	return &oracle
}

func (oracle *ChessOracle) Reset(fenstr string) {
	oracle.board = board.New(board.FEN(fen.FromString(fenstr)))
	oracle.moves = oracle.board.GenerateMoves(false)
}

func (oracle *ChessOracle) LegalMoves() []string {
	list := make([]string, len(oracle.moves))
	for i, mov := range oracle.moves {
		list[i] = mov.String()
	}

	return list
}

func (oracle *ChessOracle) IsLegal(mov_str string) bool {
	for _, mov := range oracle.moves {
		if strings.EqualFold(mov.String(), mov_str) {
			return true
		}
	}

	return false
}

func (oracle *ChessOracle) MakeMove(mov_str string) error {
	found, index := false, 0
	for i, mov := range oracle.moves {
		if strings.EqualFold(mov.String(), mov_str) {
			found = true
			index = i
			break
		}
	}

	if !found {
		return errors.New("illegal move")
	}

	oracle.board.MakeMove(oracle.moves[index])
	oracle.moves = oracle.board.GenerateMoves(false)
	return nil
}

// SkipTurn hands the move over to the opponent without a ply being
// played. The en passant square does not survive the possession flip.
func (oracle *ChessOracle) SkipTurn() {
	fen := [6]string(oracle.board.FEN())

	if fen[1] == "w" {
		fen[1] = "b"
	} else {
		fen[1] = "w"
	}
	fen[3] = "-"

	oracle.Reset(strings.Join(fen[:], " "))
}

func (oracle *ChessOracle) SideToMove() Side {
	return Side(oracle.board.SideToMove)
}

func (oracle *ChessOracle) FEN() string {
	fen := [6]string(oracle.board.FEN())
	return strings.Join(fen[:], " ")
}

func (oracle *ChessOracle) IsTerminal() bool {
	return oracle.TerminalReason() != Ongoing
}

func (oracle *ChessOracle) TerminalReason() Reason {
	switch {
	case len(oracle.moves) == 0:
		if oracle.board.IsInCheck(oracle.board.SideToMove) {
			return Checkmate
		}

		return Stalemate

	case oracle.board.DrawClock >= 100,
		oracle.board.IsThreefoldRepetition():
		return ClaimableDraw

	case oracle.board.IsInsufficientMaterial():
		return InsufficientMaterial
	}

	return Ongoing
}
