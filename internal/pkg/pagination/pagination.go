package pagination

import "strconv"

// PageSize - количество вопросов на странице
const PageSize = 10

// ParsePage разбирает номер страницы из query-параметра.
// Отсутствующее или нечисловое значение дает первую страницу.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Offset возвращает смещение первой записи страницы.
// Вызывать только для страниц, прошедших InRange: иначе (page-1)*PageSize может переполниться.
func Offset(page int) int {
	return (page - 1) * PageSize
}

// InRange сообщает, может ли страница содержать записи при total элементах.
// Сравнение идет с числом страниц, без умножения, поэтому огромные page не переполняют int.
func InRange(page int, total int64) bool {
	return page >= 1 && int64(page) <= PageCount(total)
}

// PageCount возвращает количество непустых страниц для total элементов: ⌈total/PageSize⌉
func PageCount(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return (total-1)/PageSize + 1
}
