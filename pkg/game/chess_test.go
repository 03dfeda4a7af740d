package game

import "testing"

func TestStartPosition(t *testing.T) {
	oracle := NewChessOracle(StartFEN)

	if n := len(oracle.LegalMoves()); n != 20 {
		t.Errorf("expected 20 legal moves in the start position, got %d", n)
	}

	if !oracle.IsLegal("e2e4") {
		t.Error("expected e2e4 to be legal")
	}

	if oracle.IsLegal("e2e5") {
		t.Error("expected e2e5 to be illegal")
	}

	if oracle.SideToMove() != White {
		t.Errorf("expected white to move, got %v", oracle.SideToMove())
	}

	if oracle.IsTerminal() {
		t.Error("the start position is not terminal")
	}

	if fen := oracle.FEN(); fen != StartFEN {
		t.Errorf("expected start fen, got %q", fen)
	}
}

func TestMakeMove(t *testing.T) {
	oracle := NewChessOracle(StartFEN)

	if err := oracle.MakeMove("e2e4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if oracle.SideToMove() != Black {
		t.Errorf("expected black to move, got %v", oracle.SideToMove())
	}

	// e2e4 is now black's move, and an illegal one.
	if err := oracle.MakeMove("e2e4"); err == nil {
		t.Error("expected an error for an illegal move")
	}
}

func TestSkipTurn(t *testing.T) {
	oracle := NewChessOracle(StartFEN)
	oracle.SkipTurn()

	if oracle.SideToMove() != Black {
		t.Errorf("expected black to move after a skip, got %v", oracle.SideToMove())
	}

	if n := len(oracle.LegalMoves()); n != 20 {
		t.Errorf("expected 20 legal moves for black, got %d", n)
	}

	if !oracle.IsLegal("e7e5") {
		t.Error("expected e7e5 to be legal after the skip")
	}
}

func TestCheckmate(t *testing.T) {
	oracle := NewChessOracle(StartFEN)

	// Fool's mate.
	for _, mov := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if err := oracle.MakeMove(mov); err != nil {
			t.Fatalf("%s: unexpected error: %v", mov, err)
		}
	}

	if !oracle.IsTerminal() {
		t.Fatal("expected a terminal position")
	}

	if reason := oracle.TerminalReason(); reason != Checkmate {
		t.Errorf("expected Checkmate, got %v", reason)
	}

	// The checkmated side is the one to move.
	if oracle.SideToMove() != White {
		t.Errorf("expected white to be checkmated, got %v", oracle.SideToMove())
	}
}

func TestStalemate(t *testing.T) {
	oracle := NewChessOracle("7k/5K2/6Q1/8/8/8/8/8 b - - 0 1")

	if reason := oracle.TerminalReason(); reason != Stalemate {
		t.Errorf("expected Stalemate, got %v", reason)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	oracle := NewChessOracle("8/8/8/8/8/4k3/8/4K3 w - - 0 1")

	if reason := oracle.TerminalReason(); reason != InsufficientMaterial {
		t.Errorf("expected Insufficient Material, got %v", reason)
	}
}

func TestClaimableDraw(t *testing.T) {
	oracle := NewChessOracle("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 100 60")

	if reason := oracle.TerminalReason(); reason != ClaimableDraw {
		t.Errorf("expected Claimable Draw, got %v", reason)
	}
}
