package arena

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"laptudirm.com/x/gambit/pkg/agent"
	"laptudirm.com/x/gambit/pkg/game"
)

// fakeOracle is a scripted rules adapter. Tests drive termination via
// the afterApply and afterSkip hooks.
type fakeOracle struct {
	side    game.Side
	legal   []string
	reason  game.Reason
	applied []string
	skips   int

	afterApply func(oracle *fakeOracle)
	afterSkip  func(oracle *fakeOracle)
}

func (oracle *fakeOracle) Reset(fen string) {}

func (oracle *fakeOracle) LegalMoves() []string {
	return oracle.legal
}

func (oracle *fakeOracle) IsLegal(mov string) bool {
	for _, legal := range oracle.legal {
		if legal == mov {
			return true
		}
	}

	return false
}

func (oracle *fakeOracle) MakeMove(mov string) error {
	if !oracle.IsLegal(mov) {
		return errors.New("illegal move")
	}

	oracle.applied = append(oracle.applied, mov)
	oracle.side = oracle.side.Other()

	if oracle.afterApply != nil {
		oracle.afterApply(oracle)
	}

	return nil
}

func (oracle *fakeOracle) SkipTurn() {
	oracle.skips++
	oracle.side = oracle.side.Other()

	if oracle.afterSkip != nil {
		oracle.afterSkip(oracle)
	}
}

func (oracle *fakeOracle) SideToMove() game.Side {
	return oracle.side
}

func (oracle *fakeOracle) IsTerminal() bool {
	return oracle.reason != game.Ongoing
}

func (oracle *fakeOracle) TerminalReason() game.Reason {
	return oracle.reason
}

func (oracle *fakeOracle) FEN() string {
	return game.StartFEN
}

// fixedMover always produces the same move or error.
type fixedMover struct {
	name  string
	move  string
	err   error
	calls int
}

func (mover *fixedMover) Name() string {
	return mover.name
}

func (mover *fixedMover) RequestMove(ctx context.Context, oracle game.Oracle, history []string) (string, error) {
	mover.calls++
	return mover.move, mover.err
}

type scriptedIntake struct {
	inputs []string
	calls  int
}

func (intake *scriptedIntake) ReadMove() (string, error) {
	input := intake.inputs[intake.calls]
	intake.calls++
	return input, nil
}

func fastConfig(mode Mode) Config {
	return Config{
		Mode:        mode,
		MoveTimeout: time.Second,
		MaxRetries:  2,
		Pacing:      time.Millisecond,
	}
}

func TestAutonomousAppliesMove(t *testing.T) {
	oracle := &fakeOracle{
		legal: []string{"e2e4"},
		afterApply: func(oracle *fakeOracle) {
			oracle.reason = game.Stalemate
		},
	}

	session := &Session{
		Config: fastConfig(Autonomous),
		Oracle: oracle,
		Movers: [2]agent.Mover{
			&fixedMover{name: "white-agent", move: "e2e4"},
			&fixedMover{name: "black-agent", err: agent.ErrMalformedOutput},
		},
		Tally: NewTally(),
	}

	outcome, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.History()) != 1 || session.History()[0] != "e2e4" {
		t.Errorf("expected history [e2e4], got %v", session.History())
	}

	if oracle.side != game.Black {
		t.Errorf("expected black to move after the ply, got %v", oracle.side)
	}

	if outcome.Score != game.Draw {
		t.Errorf("expected a drawn outcome, got %v", outcome.Score)
	}

	if session.Running() {
		t.Error("expected the session to have stopped")
	}
}

func TestAutonomousTallyOnCheckmate(t *testing.T) {
	oracle := &fakeOracle{
		legal: []string{"e2e4"},
		afterApply: func(oracle *fakeOracle) {
			// Black, now to move, is checkmated.
			oracle.reason = game.Checkmate
		},
	}

	tally := NewTally()
	session := &Session{
		Config: fastConfig(Autonomous),
		Oracle: oracle,
		Movers: [2]agent.Mover{
			&fixedMover{name: "white-agent", move: "e2e4"},
			&fixedMover{name: "black-agent"},
		},
		Tally: tally,
	}

	outcome, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outcome.Score != game.WhiteWins {
		t.Errorf("expected 1-0, got %v", outcome.Score)
	}

	if wins := tally.Wins("white-agent"); wins != 1 {
		t.Errorf("expected 1 win for white-agent, got %d", wins)
	}

	if wins := tally.Wins("black-agent"); wins != 0 {
		t.Errorf("expected 0 wins for black-agent, got %d", wins)
	}
}

func TestAutonomousSkipsTurnOnExhaustion(t *testing.T) {
	oracle := &fakeOracle{
		legal: []string{"e2e4"},
		afterSkip: func(oracle *fakeOracle) {
			oracle.reason = game.Stalemate
		},
	}

	white := &fixedMover{name: "white-agent", err: agent.ErrMalformedOutput}
	session := &Session{
		Config: fastConfig(Autonomous),
		Oracle: oracle,
		Movers: [2]agent.Mover{
			white,
			&fixedMover{name: "black-agent", err: agent.ErrMalformedOutput},
		},
		Tally: NewTally(),
	}

	outcome, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Possession flipped without a ply being recorded.
	if oracle.skips != 1 {
		t.Errorf("expected 1 skipped turn, got %d", oracle.skips)
	}

	if len(session.History()) != 0 {
		t.Errorf("expected an empty history, got %v", session.History())
	}

	if oracle.side != game.Black {
		t.Errorf("expected possession to flip to black, got %v", oracle.side)
	}

	if white.calls != 2 {
		t.Errorf("expected the full budget of 2 attempts, got %d", white.calls)
	}

	if outcome.Score != game.Draw {
		t.Errorf("expected a drawn outcome, got %v", outcome.Score)
	}
}

func TestAutonomousAbortsOnFatalError(t *testing.T) {
	fatal := errors.New("agent white-agent: executable not found")

	session := &Session{
		Config: fastConfig(Autonomous),
		Oracle: &fakeOracle{legal: []string{"e2e4"}},
		Movers: [2]agent.Mover{
			&fixedMover{name: "white-agent", err: fatal},
			&fixedMover{name: "black-agent"},
		},
		Tally: NewTally(),
	}

	_, err := session.Run(context.Background())
	if !errors.Is(err, fatal) {
		t.Fatalf("expected the fatal error to surface, got %v", err)
	}

	if session.Running() {
		t.Error("expected the session to have stopped")
	}
}

func TestCooperativeAgentMove(t *testing.T) {
	oracle := &fakeOracle{
		side:  game.Black,
		legal: []string{"e7e5"},
		afterApply: func(oracle *fakeOracle) {
			oracle.reason = game.Stalemate
		},
	}

	first := &fixedMover{name: "agent-1", move: "e7e5"}
	second := &fixedMover{name: "agent-2", err: agent.ErrMalformedOutput}

	session := &Session{
		Config: fastConfig(Cooperative),
		Oracle: oracle,
		Movers: [2]agent.Mover{first, second},
		Intake: &scriptedIntake{},
	}

	_, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.History()) != 1 || session.History()[0] != "e7e5" {
		t.Errorf("expected history [e7e5], got %v", session.History())
	}

	// Ties in the ledger favor the first-listed agent.
	if first.calls == 0 || second.calls != 0 {
		t.Errorf("expected only agent-1 to act, got %d/%d calls", first.calls, second.calls)
	}
}

func TestCooperativeBudgetExhaustion(t *testing.T) {
	oracle := &fakeOracle{side: game.Black, legal: []string{"e7e5"}}

	first := &fixedMover{name: "agent-1", err: agent.ErrMalformedOutput}
	second := &fixedMover{name: "agent-2", err: agent.ErrMalformedOutput}

	config := fastConfig(Cooperative)
	config.FailCap = 10

	session := &Session{
		Config: config,
		Oracle: oracle,
		Movers: [2]agent.Mover{first, second},

		// Once the turn comes back, asking for help ends the game.
		Intake: &scriptedIntake{inputs: []string{"help"}},
	}

	outcome, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Each agent led one resolution worth 5 penalty points, reaching
	// the combined cap of 10 with no move applied.
	if first.calls != 2 || second.calls != 2 {
		t.Errorf("expected both agents to spend one budget each, got %d/%d calls", first.calls, second.calls)
	}

	if len(session.History()) != 0 {
		t.Errorf("expected no move to be applied, got %v", session.History())
	}

	// Possession came back to the human.
	if oracle.skips != 1 {
		t.Errorf("expected possession to be handed back once, got %d", oracle.skips)
	}

	if session.Running() {
		t.Error("expected the session to have stopped after the help request")
	}

	if outcome.Reason != "the game ended" {
		t.Errorf("unexpected outcome reason %q", outcome.Reason)
	}
}

func TestHumanMoveApplied(t *testing.T) {
	oracle := &fakeOracle{
		legal: []string{"e2e4"},
		afterApply: func(oracle *fakeOracle) {
			oracle.reason = game.Stalemate
		},
	}

	session := &Session{
		Config: fastConfig(Cooperative),
		Oracle: oracle,
		Movers: [2]agent.Mover{
			&fixedMover{name: "agent-1"},
			&fixedMover{name: "agent-2"},
		},
		Intake: &scriptedIntake{inputs: []string{"e2e4"}},
	}

	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(session.History()) != 1 || session.History()[0] != "e2e4" {
		t.Errorf("expected history [e2e4], got %v", session.History())
	}
}

func TestHumanInputRejectionEndsGame(t *testing.T) {
	for _, input := range []string{"", "not-a-move", "e2e5"} {
		oracle := &fakeOracle{legal: []string{"e2e4"}}

		session := &Session{
			Config: fastConfig(Cooperative),
			Oracle: oracle,
			Movers: [2]agent.Mover{
				&fixedMover{name: "agent-1"},
				&fixedMover{name: "agent-2"},
			},
			Intake: &scriptedIntake{inputs: []string{input}},
		}

		_, err := session.Run(context.Background())
		if err != nil {
			t.Fatalf("%q: rejection is not an operator error: %v", input, err)
		}

		if session.Running() {
			t.Errorf("%q: expected the session to end", input)
		}

		if len(session.History()) != 0 {
			t.Errorf("%q: expected no move to be applied", input)
		}
	}
}

func TestWaitCeilingExceedsWorkerBudget(t *testing.T) {
	session := &Session{
		Config: Config{
			MoveTimeout: 30 * time.Second,
			MaxRetries:  5,
			Pacing:      time.Second,
		},
	}
	session.coordinator = agent.NewCoordinator(5, time.Second)

	worker := 5*(30*time.Second) + 4*time.Second
	if ceiling := session.waitCeiling(); ceiling <= worker {
		t.Errorf("ceiling %v must exceed the worker's maximum %v", ceiling, worker)
	}
}

func TestTally(t *testing.T) {
	tally := NewTally()
	tally.RecordWin("alpha")
	tally.RecordWin("alpha")
	tally.RecordWin("beta")
	tally.RecordDraw()

	if wins := tally.Wins("alpha"); wins != 2 {
		t.Errorf("expected 2 wins, got %d", wins)
	}

	if tally.Draws() != 1 || tally.Games() != 4 {
		t.Errorf("expected 1 draw in 4 games, got %d in %d", tally.Draws(), tally.Games())
	}

	summary := tally.Summary("alpha", "beta")
	for _, want := range []string{"alpha: 2 wins", "beta: 1 wins", "draws: 1", "elo"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary is missing %q:\n%s", want, summary)
		}
	}
}
