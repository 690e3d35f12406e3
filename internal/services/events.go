package services

import "github.com/dionisvl/my.traffic-lights/internal/game"

// Scope says who receives an event inside the game's room.
type Scope int

const (
	// ScopeAll targets every connection in the room, originator included.
	ScopeAll Scope = iota
	// ScopeOthers targets everyone except the command's originator.
	ScopeOthers
	// ScopeSender targets the originator only.
	ScopeSender
)

// Event is one outbound notification decided by the broadcast policy. The
// transport layer fans it out; the policy itself does no I/O.
type Event struct {
	Scope Scope
	Type  string
	Data  any
}

type RolePayload struct {
	Role game.Role `json:"role"`
}

type PlayerStatusPayload struct {
	Player game.Role `json:"player"`
	Online bool      `json:"online"`
}

type PlayerPayload struct {
	Player game.Role `json:"player"`
}

type QuestionPayload struct {
	QuestionIndex int `json:"question_index"`
}

type CommentPayload struct {
	QuestionIndex int       `json:"question_index"`
	Player        game.Role `json:"player"`
}

type ReadyPayload struct {
	QuestionIndex int       `json:"question_index"`
	Player        game.Role `json:"player"`
	Ready         bool      `json:"ready"`
}

func joinEvents(role game.Role) []Event {
	return []Event{
		{Scope: ScopeSender, Type: "joined", Data: RolePayload{Role: role}},
		{Scope: ScopeAll, Type: "player_status", Data: PlayerStatusPayload{Player: role, Online: true}},
		{Scope: ScopeAll, Type: "player_joined", Data: PlayerPayload{Player: role}},
	}
}

func startEvents() []Event {
	return []Event{
		{Scope: ScopeAll, Type: "game_started", Data: struct{}{}},
		{Scope: ScopeAll, Type: "question_show", Data: QuestionPayload{QuestionIndex: 0}},
	}
}

func answerEvents(questionIndex int) []Event {
	// The originator already has the result locally.
	return []Event{
		{Scope: ScopeOthers, Type: "answer_updated", Data: QuestionPayload{QuestionIndex: questionIndex}},
	}
}

func commentEvents(questionIndex int, role game.Role) []Event {
	// Comment text must reach both views, author included.
	return []Event{
		{Scope: ScopeAll, Type: "comment_received", Data: CommentPayload{QuestionIndex: questionIndex, Player: role}},
	}
}

// readyEvents announces the readiness change, then checks the post-state for
// a real transition: completion beats advancement, and no extra event fires
// when the index did not move.
func readyEvents(post game.Game, questionIndex int, role game.Role, ready bool) []Event {
	events := []Event{
		{Scope: ScopeAll, Type: "ready_updated", Data: ReadyPayload{QuestionIndex: questionIndex, Player: role, Ready: ready}},
	}
	switch {
	case post.Status == game.StatusCompleted:
		events = append(events, Event{Scope: ScopeAll, Type: "game_completed", Data: struct{}{}})
	case post.CurrentQuestionIndex > questionIndex:
		events = append(events, Event{Scope: ScopeAll, Type: "next_question", Data: QuestionPayload{QuestionIndex: post.CurrentQuestionIndex}})
	}
	return events
}

func disconnectEvents(role game.Role) []Event {
	return []Event{
		{Scope: ScopeAll, Type: "player_status", Data: PlayerStatusPayload{Player: role, Online: false}},
	}
}
