package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatTurn struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        string         `gorm:"index;not null"`
	ChatId        string         `gorm:"index;not null"`
	Question      string         `gorm:"type:text"`
	Answer        string         `gorm:"type:text"`
	SimilarChunks datatypes.JSON `gorm:"type:jsonb"`
	Timestamp     time.Time      `gorm:"index;not null"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
