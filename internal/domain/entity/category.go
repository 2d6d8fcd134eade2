package entity

// Category представляет категорию вопросов (Science, Art, ...)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:255;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// DefaultCategories - набор категорий, которым заполняется пустая база
var DefaultCategories = []Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// CategoryMap преобразует список категорий в отображение id -> type
func CategoryMap(categories []Category) map[uint]string {
	result := make(map[uint]string, len(categories))
	for _, c := range categories {
		result[c.ID] = c.Type
	}
	return result
}
