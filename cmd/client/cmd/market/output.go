package market

import (
	"encoding/json"
	"fmt"
	"io"

	"marketstore/internal/domain/market"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var title = cases.Title(language.English)

func printRecord(w io.Writer, format string, rec market.Record) error {
	switch format {
	case formatJSON:
		return writeJSON(w, rec)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(rec)
	default:
		writeText(w, rec)
		return nil
	}
}

func printRecords(w io.Writer, format string, records []market.Record) error {
	switch format {
	case formatJSON:
		return writeJSON(w, records)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "Рынки не найдены")
		return nil
	}
	fmt.Fprintf(w, "Найдено рынков: %d\n", len(records))
	for _, rec := range records {
		fmt.Fprintln(w)
		writeText(w, rec)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeText печатает по строке на заданное поле.
func writeText(w io.Writer, rec market.Record) {
	line := func(field string, value any) {
		fmt.Fprintf(w, "%-8s %v\n", title.String(field)+":", value)
	}

	line("id", rec.ID)
	line("name", rec.Name)
	optionalLine(line, "address", rec.Address)
	optionalLine(line, "city", rec.City)
	optionalLine(line, "county", rec.County)
	optionalLine(line, "state", rec.State)
	optionalLine(line, "zip", rec.Zip)
	optionalLine(line, "lat", rec.Lat)
	optionalLine(line, "long", rec.Long)
}

func optionalLine[T comparable](line func(string, any), field string, v market.Optional[T]) {
	if value, ok := v.Get(); ok {
		line(field, value)
	}
}
