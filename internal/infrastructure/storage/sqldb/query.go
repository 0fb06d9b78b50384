package sqldb

import (
	"strings"

	"marketstore/internal/domain/market"
)

var columnList = strings.Join(market.Columns, ", ")

// params накапливает аргументы запроса и выдает плейсхолдеры диалекта.
type params struct {
	dialect Dialect
	args    []any
}

func (p *params) add(v any) string {
	p.args = append(p.args, v)
	return p.dialect.Placeholder(len(p.args))
}

// buildSelect строит SELECT по предикату. Значения всегда передаются
// параметрами. Результат упорядочен по Id.
func buildSelect(d Dialect, pred market.Predicate) (string, []any) {
	p := &params{dialect: d}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(columnList)
	b.WriteString(" FROM ")
	b.WriteString(market.Table)
	if len(pred) > 0 {
		b.WriteString(" WHERE ")
		for i, c := range pred {
			if i > 0 {
				b.WriteString(" AND ")
			}
			b.WriteString(c.Column)
			b.WriteString(" = ")
			b.WriteString(p.add(c.Value))
		}
	}
	b.WriteString(" ORDER BY ")
	b.WriteString(market.ColumnID)
	b.WriteString(" ASC")

	return b.String(), p.args
}

func buildInsert(d Dialect, t market.Template) (string, []any) {
	p := &params{dialect: d}
	values := []string{
		p.add(t.Name),
		p.add(t.Address),
		p.add(t.City),
		p.add(t.County),
		p.add(t.State),
		p.add(t.Zip),
		p.add(t.Lat),
		p.add(t.Long),
	}

	query := "INSERT INTO " + market.Table +
		" (" + strings.Join(market.Columns[1:], ", ") + ")" +
		" VALUES (" + strings.Join(values, ", ") + ")" +
		" RETURNING " + market.ColumnID
	return query, p.args
}

// buildUpdate перезаписывает все колонки записи, кроме Id.
func buildUpdate(d Dialect, rec market.Record) (string, []any) {
	p := &params{dialect: d}
	values := []any{rec.Name, rec.Address, rec.City, rec.County, rec.State, rec.Zip, rec.Lat, rec.Long}

	sets := make([]string, len(values))
	for i, v := range values {
		sets[i] = market.Columns[i+1] + " = " + p.add(v)
	}

	query := "UPDATE " + market.Table +
		" SET " + strings.Join(sets, ", ") +
		" WHERE " + market.ColumnID + " = " + p.add(rec.ID)
	return query, p.args
}

func buildDelete(d Dialect, ids []int64) (string, []any) {
	p := &params{dialect: d}
	holders := make([]string, len(ids))
	for i, id := range ids {
		holders[i] = p.add(id)
	}

	query := "DELETE FROM " + market.Table +
		" WHERE " + market.ColumnID + " IN (" + strings.Join(holders, ", ") + ")"
	return query, p.args
}
