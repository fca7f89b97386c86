package model

// SectionModel mirrors the 'sections' table. IDs are assigned by the seed and define traversal order.
type SectionModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement:false"`
	Name string `gorm:"type:varchar(255);not null"`

	Questions []QuestionModel `gorm:"foreignKey:SectionID"`
}

// TableName explicitly sets the table name for GORM.
func (SectionModel) TableName() string {
	return "sections"
}

// QuestionModel mirrors the 'questions' table. (section_id, id) is the canonical traversal order.
type QuestionModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false;index:idx_questions_order,priority:2"`
	SectionID int64  `gorm:"not null;index:idx_questions_order,priority:1"`
	Prompt    string `gorm:"type:text;not null"`

	Options []OptionModel `gorm:"foreignKey:QuestionID"`
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}

// OptionModel mirrors the 'options' table.
type OptionModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement:false"`
	QuestionID int64  `gorm:"not null;index"`
	Text       string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OptionModel) TableName() string {
	return "options"
}
