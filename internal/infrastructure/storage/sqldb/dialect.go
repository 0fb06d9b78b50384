package sqldb

import (
	"strconv"
)

// Dialect описывает различия SQL-диалектов, которые важны репозиторию.
type Dialect struct {
	Name string
	// Placeholder возвращает параметр с порядковым номером n (с единицы).
	Placeholder func(n int) string
}

var (
	SQLite = Dialect{
		Name:        "sqlite3",
		Placeholder: func(int) string { return "?" },
	}
	Postgres = Dialect{
		Name:        "postgres",
		Placeholder: func(n int) string { return "$" + strconv.Itoa(n) },
	}
)
