// Package postgres содержит GORM-репозитории вопросов и категорий.
//
// Несмотря на имя пакета, запросы не привязаны к одному драйверу: те же
// репозитории работают поверх Postgres (production) и SQLite (разработка, тесты).
// Различия диалектов (поиск без учета регистра, коды ошибок ограничений)
// обрабатываются внутри пакета.
package postgres
