package game

import "time"

// Transitions are pure: each validates the command against the current state
// and, if valid, constructs and returns the next state. A failed command
// returns the zero Game and a *Error; the input is never partially updated.

func NewGame(id string, questions []string) (Game, error) {
	if len(questions) < 1 {
		return Game{}, NewError(CodeInvalidArgument, "at least 1 question required")
	}
	answers := make([]QuestionRecord, len(questions))
	for i, q := range questions {
		answers[i] = QuestionRecord{QuestionIndex: i, QuestionText: q}
	}
	return Game{
		ID:        id,
		Status:    StatusWaiting,
		Questions: append([]string(nil), questions...),
		Answers:   answers,
		Admin:     RoleP1,
	}, nil
}

// Join binds playerID to the first free slot (p1 before p2) and marks it
// online. A player already bound to a slot gets that same slot back, so
// rejoin after a refresh is idempotent.
func Join(g Game, playerID string) (Game, Role, error) {
	next := g.clone()

	if next.Players.P1.ID == playerID {
		next.Players.P1.Online = true
		return next, RoleP1, nil
	}
	if next.Players.P2.ID == playerID {
		next.Players.P2.Online = true
		return next, RoleP2, nil
	}

	if next.Players.P1.ID == "" {
		next.Players.P1 = PlayerSlot{ID: playerID, Online: true}
		return next, RoleP1, nil
	}
	if next.Players.P2.ID == "" {
		next.Players.P2 = PlayerSlot{ID: playerID, Online: true}
		return next, RoleP2, nil
	}
	return Game{}, "", NewError(CodeRoomFull, "both slots are taken")
}

func Start(g Game, by Role) (Game, error) {
	if g.Status != StatusWaiting {
		return Game{}, NewError(CodeInvalidState, "game already started or completed")
	}
	if by != g.Admin {
		return Game{}, NewError(CodeForbidden, "only admin can start the game")
	}
	if g.Players.P1.ID == "" || g.Players.P2.ID == "" {
		return Game{}, NewError(CodeNotReady, "both players must be connected")
	}
	next := g.clone()
	next.Status = StatusInProgress
	next.CurrentQuestionIndex = 0
	return next, nil
}

func requireCurrent(g Game, questionIndex int) error {
	if g.Status != StatusInProgress {
		return NewError(CodeInvalidState, "game not in progress")
	}
	if questionIndex != g.CurrentQuestionIndex {
		return NewError(CodeInvalidIndex, "invalid question index")
	}
	if questionIndex < 0 || questionIndex >= len(g.Questions) {
		return NewError(CodeInvalidIndex, "question index out of bounds")
	}
	return nil
}

// ChooseAnswer records a role's answer for the live question. Any new answer
// drops that role's ready flag; the question's RevealedAt is stamped on the
// first answer only.
func ChooseAnswer(g Game, by Role, questionIndex int, answer AnswerColor) (Game, error) {
	if !answer.Valid() {
		return Game{}, NewError(CodeInvalidArgument, "unknown answer color")
	}
	if err := requireCurrent(g, questionIndex); err != nil {
		return Game{}, err
	}

	now := time.Now()
	next := g.clone()
	q := next.Answers[questionIndex]
	entry := q.Entry(by)
	entry.Answer = answer
	entry.AnsweredAt = &now
	entry.Ready = false
	q = q.withEntry(by, entry)
	if q.RevealedAt == nil {
		q.RevealedAt = &now
	}
	next.Answers[questionIndex] = q
	return next, nil
}

// SubmitComment sets a role's comment for the live question. Editing a
// comment also drops that role's ready flag so the other side always reviews
// the final text before the pair advances.
func SubmitComment(g Game, by Role, questionIndex int, comment string) (Game, error) {
	if err := requireCurrent(g, questionIndex); err != nil {
		return Game{}, err
	}

	next := g.clone()
	q := next.Answers[questionIndex]
	entry := q.Entry(by)
	entry.Comment = comment
	entry.Ready = false
	next.Answers[questionIndex] = q.withEntry(by, entry)
	return next, nil
}

// SetReady flips a role's ready flag and then re-checks the advancement
// condition on the updated record: both ready and both answered moves the
// game to the next question, or completes it on the last one.
func SetReady(g Game, by Role, questionIndex int, ready bool) (Game, error) {
	if err := requireCurrent(g, questionIndex); err != nil {
		return Game{}, err
	}

	if ready && !g.Answers[questionIndex].Entry(by).Answered() {
		return Game{}, NewError(CodeInvalidState, "cannot be ready without an answer")
	}

	next := g.clone()
	q := next.Answers[questionIndex]
	entry := q.Entry(by)
	entry.Ready = ready
	q = q.withEntry(by, entry)
	next.Answers[questionIndex] = q

	bothReady := q.P1.Ready && q.P2.Ready && q.P1.Answered() && q.P2.Answered()
	if bothReady {
		if next.LastIndex(questionIndex) {
			next.Status = StatusCompleted
		} else {
			next.CurrentQuestionIndex = g.CurrentQuestionIndex + 1
		}
	}
	return next, nil
}
