package store

import (
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dionisvl/my.traffic-lights/internal/game"
	"github.com/dionisvl/my.traffic-lights/internal/models"
)

// PostgresStore persists games in the normalized games/game_answers tables.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Get(id string) (game.Game, error) {
	var rec models.Game
	err := s.db.Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_index ASC")
	}).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return game.Game{}, errNotFound()
	}
	if err != nil {
		return game.Game{}, err
	}
	return fromRecord(rec), nil
}

func (s *PostgresStore) Put(g game.Game) error {
	rec, answers := toRecord(g)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rec).Error; err != nil {
			return err
		}
		for _, a := range answers {
			var existing models.GameAnswer
			err := tx.Where("game_id = ? AND question_index = ?", a.GameID, a.QuestionIndex).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(&a).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			a.ID = existing.ID
			a.CreatedAt = existing.CreatedAt
			if err := tx.Save(&a).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *PostgresStore) Create(questions []string) (game.Game, error) {
	g, err := game.NewGame(uuid.NewString(), questions)
	if err != nil {
		return game.Game{}, err
	}
	if err := s.Put(g); err != nil {
		return game.Game{}, err
	}
	return g, nil
}

func toRecord(g game.Game) (models.Game, []models.GameAnswer) {
	rec := models.Game{
		ID:                   g.ID,
		Status:               string(g.Status),
		CurrentQuestionIndex: g.CurrentQuestionIndex,
	}
	if g.Players.P1.ID != "" {
		id := g.Players.P1.ID
		rec.Player1ID = &id
	}
	if g.Players.P2.ID != "" {
		id := g.Players.P2.ID
		rec.Player2ID = &id
	}

	answers := make([]models.GameAnswer, len(g.Answers))
	for i, q := range g.Answers {
		answers[i] = models.GameAnswer{
			GameID:            g.ID,
			QuestionIndex:     q.QuestionIndex,
			QuestionText:      q.QuestionText,
			Player1Answer:     colorPtr(q.P1.Answer),
			Player1Comment:    strPtr(q.P1.Comment),
			Player2Answer:     colorPtr(q.P2.Answer),
			Player2Comment:    strPtr(q.P2.Comment),
			Player1Ready:      q.P1.Ready,
			Player2Ready:      q.P2.Ready,
			Player1AnsweredAt: q.P1.AnsweredAt,
			Player2AnsweredAt: q.P2.AnsweredAt,
			RevealedAt:        q.RevealedAt,
		}
	}
	return rec, answers
}

func fromRecord(rec models.Game) game.Game {
	rows := append([]models.GameAnswer(nil), rec.Answers...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].QuestionIndex < rows[j].QuestionIndex })

	questions := make([]string, len(rows))
	answers := make([]game.QuestionRecord, len(rows))
	for i, row := range rows {
		questions[i] = row.QuestionText
		answers[i] = game.QuestionRecord{
			QuestionIndex: row.QuestionIndex,
			QuestionText:  row.QuestionText,
			P1: game.AnswerEntry{
				Answer:     colorVal(row.Player1Answer),
				Comment:    strVal(row.Player1Comment),
				Ready:      row.Player1Ready,
				AnsweredAt: row.Player1AnsweredAt,
			},
			P2: game.AnswerEntry{
				Answer:     colorVal(row.Player2Answer),
				Comment:    strVal(row.Player2Comment),
				Ready:      row.Player2Ready,
				AnsweredAt: row.Player2AnsweredAt,
			},
			RevealedAt: row.RevealedAt,
		}
	}

	g := game.Game{
		ID:                   rec.ID,
		Status:               game.Status(rec.Status),
		Questions:            questions,
		CurrentQuestionIndex: rec.CurrentQuestionIndex,
		Answers:              answers,
		Admin:                game.RoleP1,
	}
	// Online flags live in the presence tracker, never in the database.
	if rec.Player1ID != nil {
		g.Players.P1.ID = *rec.Player1ID
	}
	if rec.Player2ID != nil {
		g.Players.P2.ID = *rec.Player2ID
	}
	return g
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func colorPtr(c game.AnswerColor) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

func colorVal(p *string) game.AnswerColor {
	if p == nil {
		return ""
	}
	return game.AnswerColor(*p)
}
