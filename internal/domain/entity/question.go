package entity

// Границы сложности вопроса (включительно)
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"not null;check:difficulty >= 1 AND difficulty <= 5" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsValidDifficulty проверяет, что сложность лежит в диапазоне 1..5
func IsValidDifficulty(difficulty int) bool {
	return difficulty >= MinDifficulty && difficulty <= MaxDifficulty
}
