package materials

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GeneratedMaterial is one audience-tailored teaching handout produced by the
// model for a week's lesson. Cached: a repeat request for the same
// (week, audience, title) serves the stored content.
type GeneratedMaterial struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	WeekRange      string `gorm:"column:week_range;not null;index:idx_material_lookup,priority:1" json:"week_range"`
	TargetAudience string `gorm:"column:target_audience;not null;index:idx_material_lookup,priority:2" json:"target_audience"`
	LessonTitle    string `gorm:"column:lesson_title;type:text;not null" json:"lesson_title"`
	Content        string `gorm:"column:content;type:text;not null" json:"content"`

	// WeekSnapshot keeps the week record as resolved at generation time, so
	// the material stays interpretable after a year refresh.
	WeekSnapshot datatypes.JSON `gorm:"column:week_snapshot" json:"week_snapshot,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (GeneratedMaterial) TableName() string { return "generated_material" }

// ChatExchange is one grounded Q&A turn against a generated material.
type ChatExchange struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	WeekRange      string `gorm:"column:week_range;not null;index:idx_chat_lookup,priority:1" json:"week_range"`
	TargetAudience string `gorm:"column:target_audience;not null;index:idx_chat_lookup,priority:2" json:"target_audience"`
	Question       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer         string `gorm:"column:answer;type:text;not null" json:"answer"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ChatExchange) TableName() string { return "chat_exchange" }
