package models

import "time"

// GameAnswer is one question's row, holding both players' sub-state. Rows are
// created with the game, one per question index, and only ever updated.
type GameAnswer struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	GameID            string     `gorm:"size:36;not null;uniqueIndex:idx_game_question" json:"game_id"`
	QuestionIndex     int        `gorm:"not null;uniqueIndex:idx_game_question" json:"question_index"`
	QuestionText      string     `gorm:"type:text;not null" json:"question_text"`
	Player1Answer     *string    `gorm:"size:10" json:"player1_answer,omitempty"`
	Player1Comment    *string    `gorm:"type:text" json:"player1_comment,omitempty"`
	Player2Answer     *string    `gorm:"size:10" json:"player2_answer,omitempty"`
	Player2Comment    *string    `gorm:"type:text" json:"player2_comment,omitempty"`
	Player1Ready      bool       `gorm:"not null;default:false" json:"player1_ready"`
	Player2Ready      bool       `gorm:"not null;default:false" json:"player2_ready"`
	Player1AnsweredAt *time.Time `json:"player1_answered_at,omitempty"`
	Player2AnsweredAt *time.Time `json:"player2_answered_at,omitempty"`
	RevealedAt        *time.Time `json:"revealed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
