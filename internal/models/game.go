package models

import "time"

type Game struct {
	ID                   string       `gorm:"primaryKey;size:36" json:"id"`
	Status               string       `gorm:"size:20;not null;default:'waiting'" json:"status"`
	CurrentQuestionIndex int          `gorm:"not null;default:0" json:"current_question_index"`
	Player1ID            *string      `gorm:"size:100" json:"player1_id,omitempty"`
	Player2ID            *string      `gorm:"size:100" json:"player2_id,omitempty"`
	Answers              []GameAnswer `gorm:"foreignKey:GameID" json:"answers,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}
