package game

// Snapshot is the externally visible view of a game. Raw timestamps stay
// internal; online flags are merged in by the caller from the presence
// tracker, never read from persisted state.
type Snapshot struct {
	Game    SnapshotGame     `json:"game"`
	Players SnapshotPlayers  `json:"players"`
	Answers []SnapshotAnswer `json:"answers"`
}

type SnapshotGame struct {
	ID                   string `json:"id"`
	Status               Status `json:"status"`
	CurrentQuestionIndex int    `json:"current_question_index"`
	Total                int    `json:"total"`
}

type SnapshotPlayers struct {
	P1 SnapshotPlayer `json:"p1"`
	P2 SnapshotPlayer `json:"p2"`
}

type SnapshotPlayer struct {
	Online bool `json:"online"`
}

type SnapshotAnswer struct {
	QuestionIndex int           `json:"question_index"`
	QuestionText  string        `json:"question_text"`
	Player1       SnapshotEntry `json:"player1"`
	Player2       SnapshotEntry `json:"player2"`
}

type SnapshotEntry struct {
	Answer  AnswerColor `json:"answer,omitempty"`
	Comment string      `json:"comment,omitempty"`
	Ready   bool        `json:"ready"`
}

func ToSnapshot(g Game) Snapshot {
	answers := make([]SnapshotAnswer, len(g.Answers))
	for i, a := range g.Answers {
		answers[i] = SnapshotAnswer{
			QuestionIndex: a.QuestionIndex,
			QuestionText:  a.QuestionText,
			Player1:       SnapshotEntry{Answer: a.P1.Answer, Comment: a.P1.Comment, Ready: a.P1.Ready},
			Player2:       SnapshotEntry{Answer: a.P2.Answer, Comment: a.P2.Comment, Ready: a.P2.Ready},
		}
	}
	return Snapshot{
		Game: SnapshotGame{
			ID:                   g.ID,
			Status:               g.Status,
			CurrentQuestionIndex: g.CurrentQuestionIndex,
			Total:                len(g.Questions),
		},
		Players: SnapshotPlayers{
			P1: SnapshotPlayer{Online: g.Players.P1.Online},
			P2: SnapshotPlayer{Online: g.Players.P2.Online},
		},
		Answers: answers,
	}
}
