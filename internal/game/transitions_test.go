package game

import (
	"testing"
)

func mustNewGame(t *testing.T, questions ...string) Game {
	t.Helper()
	g, err := NewGame("g1", questions)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// startedGame returns an in_progress game with both players bound.
func startedGame(t *testing.T, questions ...string) Game {
	t.Helper()
	g := mustNewGame(t, questions...)
	g, _, _ = Join(g, "alice")
	g, _, _ = Join(g, "bob")
	g, err := Start(g, RoleP1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := mustNewGame(t, "Q1", "Q2", "Q3")

	if g.Status != StatusWaiting {
		t.Errorf("status = %q, want waiting", g.Status)
	}
	if g.CurrentQuestionIndex != 0 {
		t.Errorf("index = %d, want 0", g.CurrentQuestionIndex)
	}
	if g.Admin != RoleP1 {
		t.Errorf("admin = %q, want p1", g.Admin)
	}
	if len(g.Answers) != 3 {
		t.Fatalf("answers = %d records, want 3", len(g.Answers))
	}
	for i, q := range g.Answers {
		if q.QuestionIndex != i {
			t.Errorf("record %d has index %d", i, q.QuestionIndex)
		}
		if q.QuestionText != g.Questions[i] {
			t.Errorf("record %d text = %q, want %q", i, q.QuestionText, g.Questions[i])
		}
		if q.P1.Ready || q.P2.Ready || q.P1.Answered() || q.P2.Answered() {
			t.Errorf("record %d is not empty", i)
		}
	}
}

func TestNewGameNoQuestions(t *testing.T) {
	_, err := NewGame("g1", nil)
	if CodeOf(err) != CodeInvalidArgument {
		t.Errorf("error code = %q, want invalid_argument", CodeOf(err))
	}
}

func TestJoin(t *testing.T) {
	g := mustNewGame(t, "Q1")

	g, role, err := Join(g, "alice")
	if err != nil {
		t.Fatalf("first join: %v", err)
	}
	if role != RoleP1 {
		t.Errorf("first join role = %q, want p1", role)
	}
	if !g.Players.P1.Online || g.Players.P1.ID != "alice" {
		t.Errorf("p1 slot = %+v, want alice online", g.Players.P1)
	}

	g, role, err = Join(g, "bob")
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if role != RoleP2 {
		t.Errorf("second join role = %q, want p2", role)
	}

	if _, _, err := Join(g, "carol"); CodeOf(err) != CodeRoomFull {
		t.Errorf("third join error = %v, want room_full", err)
	}

	// Rejoin keeps the original binding.
	g2, role, err := Join(g, "alice")
	if err != nil {
		t.Fatalf("rejoin: %v", err)
	}
	if role != RoleP1 {
		t.Errorf("rejoin role = %q, want p1", role)
	}
	if g2.Players.P1.ID != "alice" || g2.Players.P2.ID != "bob" {
		t.Errorf("rejoin changed bindings: %+v", g2.Players)
	}
}

func TestStart(t *testing.T) {
	g := mustNewGame(t, "Q1")
	g, _, _ = Join(g, "alice")

	if _, err := Start(g, RoleP1); CodeOf(err) != CodeNotReady {
		t.Errorf("start with one player = %v, want not_ready", err)
	}

	g, _, _ = Join(g, "bob")

	if _, err := Start(g, RoleP2); CodeOf(err) != CodeForbidden {
		t.Errorf("start by p2 = %v, want forbidden", err)
	}

	started, err := Start(g, RoleP1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Status != StatusInProgress || started.CurrentQuestionIndex != 0 {
		t.Errorf("started game = %q index %d", started.Status, started.CurrentQuestionIndex)
	}

	if _, err := Start(started, RoleP1); CodeOf(err) != CodeInvalidState {
		t.Errorf("second start = %v, want invalid_state", err)
	}
}

func TestChooseAnswerRevealOnce(t *testing.T) {
	g := startedGame(t, "Q1")

	g, err := ChooseAnswer(g, RoleP1, 0, AnswerGreen)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	first := g.Answers[0].RevealedAt
	if first == nil {
		t.Fatal("revealedAt not set on first answer")
	}
	if g.Answers[0].P1.AnsweredAt == nil {
		t.Fatal("answeredAt not set")
	}

	g, err = ChooseAnswer(g, RoleP1, 0, AnswerRed)
	if err != nil {
		t.Fatalf("re-choose: %v", err)
	}
	if g.Answers[0].RevealedAt != first {
		t.Error("revealedAt changed on answer change")
	}
	if g.Answers[0].P1.Answer != AnswerRed {
		t.Errorf("answer = %q, want red", g.Answers[0].P1.Answer)
	}
}

func TestChooseAnswerDropsReady(t *testing.T) {
	g := startedGame(t, "Q1", "Q2")
	g, _ = ChooseAnswer(g, RoleP1, 0, AnswerGreen)
	g, _ = SetReady(g, RoleP1, 0, true)
	if !g.Answers[0].P1.Ready {
		t.Fatal("p1 not ready after SetReady")
	}

	g, err := ChooseAnswer(g, RoleP1, 0, AnswerYellow)
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if g.Answers[0].P1.Ready {
		t.Error("ready survived a new answer")
	}
}

func TestSubmitCommentDropsOwnReadyOnly(t *testing.T) {
	g := startedGame(t, "Q1", "Q2")
	g, _ = ChooseAnswer(g, RoleP1, 0, AnswerGreen)
	g, _ = ChooseAnswer(g, RoleP2, 0, AnswerRed)
	g, _ = SetReady(g, RoleP1, 0, true)

	g, err := SubmitComment(g, RoleP1, 0, "let's talk about this one")
	if err != nil {
		t.Fatalf("comment: %v", err)
	}
	if g.Answers[0].P1.Ready {
		t.Error("author's ready survived the comment edit")
	}
	if g.Answers[0].P1.Comment != "let's talk about this one" {
		t.Errorf("comment = %q", g.Answers[0].P1.Comment)
	}

	// The other role's ready flag is untouched.
	g, _ = SetReady(g, RoleP2, 0, true)
	g, _ = SubmitComment(g, RoleP1, 0, "edited")
	if !g.Answers[0].P2.Ready {
		t.Error("p2 ready dropped by p1's comment")
	}
}

func TestSetReadyRequiresAnswer(t *testing.T) {
	g := startedGame(t, "Q1")
	if _, err := SetReady(g, RoleP1, 0, true); CodeOf(err) != CodeInvalidState {
		t.Errorf("ready without answer = %v, want invalid_state", err)
	}
	// Un-readying without an answer is allowed.
	if _, err := SetReady(g, RoleP1, 0, false); err != nil {
		t.Errorf("unready without answer: %v", err)
	}
}

func TestAdvancement(t *testing.T) {
	g := startedGame(t, "Q1", "Q2")

	g, _ = ChooseAnswer(g, RoleP1, 0, AnswerGreen)
	g, _ = ChooseAnswer(g, RoleP2, 0, AnswerRed)
	g, _ = SetReady(g, RoleP1, 0, true)
	if g.CurrentQuestionIndex != 0 {
		t.Fatal("advanced with only one player ready")
	}

	g, err := SetReady(g, RoleP2, 0, true)
	if err != nil {
		t.Fatalf("ready: %v", err)
	}
	if g.CurrentQuestionIndex != 1 {
		t.Errorf("index = %d, want 1", g.CurrentQuestionIndex)
	}
	if g.Status != StatusInProgress {
		t.Errorf("status = %q, want in_progress", g.Status)
	}

	// Last question completes without moving the index.
	g, _ = ChooseAnswer(g, RoleP1, 1, AnswerYellow)
	g, _ = SetReady(g, RoleP1, 1, true)
	g, _ = ChooseAnswer(g, RoleP2, 1, AnswerGreen)
	g, err = SetReady(g, RoleP2, 1, true)
	if err != nil {
		t.Fatalf("final ready: %v", err)
	}
	if g.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", g.Status)
	}
	if g.CurrentQuestionIndex != 1 {
		t.Errorf("completed index = %d, want 1", g.CurrentQuestionIndex)
	}
}

func TestGuards(t *testing.T) {
	waiting := mustNewGame(t, "Q1", "Q2")
	started := startedGame(t, "Q1", "Q2")

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"choose in waiting", errOf2(ChooseAnswer(waiting, RoleP1, 0, AnswerRed)), CodeInvalidState},
		{"comment in waiting", errOf2(SubmitComment(waiting, RoleP1, 0, "hi")), CodeInvalidState},
		{"ready in waiting", errOf2(SetReady(waiting, RoleP1, 0, true)), CodeInvalidState},
		{"choose stale index", errOf2(ChooseAnswer(started, RoleP1, 1, AnswerRed)), CodeInvalidIndex},
		{"comment future index", errOf2(SubmitComment(started, RoleP1, 1, "hi")), CodeInvalidIndex},
		{"ready negative index", errOf2(SetReady(started, RoleP1, -1, true)), CodeInvalidIndex},
		{"choose bad color", errOf2(ChooseAnswer(started, RoleP1, 0, "purple")), CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CodeOf(tt.err) != tt.want {
				t.Errorf("error = %v, want code %q", tt.err, tt.want)
			}
		})
	}
}

func errOf2(_ Game, err error) error { return err }

// TestChaoticToggles verifies that only the final answer/ready pair at the
// moment both players are ready-with-answer decides advancement.
func TestChaoticToggles(t *testing.T) {
	g := startedGame(t, "Q1", "Q2")

	g, _ = ChooseAnswer(g, RoleP1, 0, AnswerRed)
	g, _ = SetReady(g, RoleP1, 0, true)
	g, _ = SetReady(g, RoleP1, 0, false)
	g, _ = ChooseAnswer(g, RoleP1, 0, AnswerYellow)
	g, _ = SetReady(g, RoleP1, 0, true)

	g, _ = ChooseAnswer(g, RoleP2, 0, AnswerGreen)
	g, _ = SetReady(g, RoleP2, 0, true)
	g, _ = ChooseAnswer(g, RoleP2, 0, AnswerRed) // drops p2 ready, no advance yet
	if g.CurrentQuestionIndex != 0 {
		t.Fatal("advanced while p2 was re-answering")
	}

	g, err := SetReady(g, RoleP2, 0, true)
	if err != nil {
		t.Fatalf("final ready: %v", err)
	}
	if g.CurrentQuestionIndex != 1 {
		t.Errorf("index = %d, want 1", g.CurrentQuestionIndex)
	}
	if g.Answers[0].P1.Answer != AnswerYellow || g.Answers[0].P2.Answer != AnswerRed {
		t.Errorf("recorded answers = %q/%q, want yellow/red",
			g.Answers[0].P1.Answer, g.Answers[0].P2.Answer)
	}
}

// Transitions must never mutate their input.
func TestTransitionsLeaveInputUntouched(t *testing.T) {
	g := startedGame(t, "Q1")

	before := g.Answers[0]
	if _, err := ChooseAnswer(g, RoleP1, 0, AnswerGreen); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if g.Answers[0] != before {
		t.Error("ChooseAnswer mutated the input game")
	}

	players := g.Players
	if _, _, err := Join(g, "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}
	if g.Players != players {
		t.Error("Join mutated the input game")
	}
}
