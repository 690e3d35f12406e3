package game

import "time"

type Status string

const (
	StatusWaiting    Status = "waiting"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

type Role string

const (
	RoleP1 Role = "p1"
	RoleP2 Role = "p2"
)

type AnswerColor string

const (
	AnswerRed    AnswerColor = "red"
	AnswerYellow AnswerColor = "yellow"
	AnswerGreen  AnswerColor = "green"
)

func (a AnswerColor) Valid() bool {
	return a == AnswerRed || a == AnswerYellow || a == AnswerGreen
}

// PlayerSlot binds a role to a participant identifier. ID stays empty until a
// participant joins; a bound slot never rebinds to a different identifier.
type PlayerSlot struct {
	ID     string
	Online bool
}

type Players struct {
	P1 PlayerSlot
	P2 PlayerSlot
}

// AnswerEntry is one role's progress on a single question.
type AnswerEntry struct {
	Answer     AnswerColor
	Comment    string
	Ready      bool
	AnsweredAt *time.Time
}

func (e AnswerEntry) Answered() bool {
	return e.Answer != ""
}

// QuestionRecord is the per-question sub-state, one per question index.
// RevealedAt is stamped once, when either role answers first, and never reset.
type QuestionRecord struct {
	QuestionIndex int
	QuestionText  string
	P1            AnswerEntry
	P2            AnswerEntry
	RevealedAt    *time.Time
}

func (q QuestionRecord) Entry(role Role) AnswerEntry {
	if role == RoleP1 {
		return q.P1
	}
	return q.P2
}

func (q QuestionRecord) withEntry(role Role, e AnswerEntry) QuestionRecord {
	if role == RoleP1 {
		q.P1 = e
	} else {
		q.P2 = e
	}
	return q
}

// Game is the full persisted state of one session. Transitions treat it as a
// value: they return a fresh copy and never mutate the input in place.
type Game struct {
	ID                   string
	Status               Status
	Questions            []string
	CurrentQuestionIndex int
	Players              Players
	Answers              []QuestionRecord
	Admin                Role
}

func (g Game) clone() Game {
	out := g
	out.Questions = append([]string(nil), g.Questions...)
	out.Answers = append([]QuestionRecord(nil), g.Answers...)
	return out
}

// LastIndex reports whether idx is the final question.
func (g Game) LastIndex(idx int) bool {
	return idx >= len(g.Questions)-1
}
