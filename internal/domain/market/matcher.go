package market

// Condition - условие равенства одной колонки значению.
type Condition struct {
	Column string
	Value  any
}

// Predicate - конъюнкция условий. Пустой предикат истинен для любой записи.
type Predicate []Condition

// Columns возвращает имена колонок, участвующих в предикате.
func (p Predicate) Columns() []string {
	cols := make([]string, len(p))
	for i, c := range p {
		cols[i] = c.Column
	}
	return cols
}

// Matches сообщает, удовлетворяет ли запись шаблону: каждое заданное в
// шаблоне поле должно присутствовать в записи и совпадать точно.
func Matches(t Template, r Record) bool {
	return matchField(t.ID, Some(r.ID)) &&
		matchField(t.Name, Some(r.Name)) &&
		matchField(t.Address, r.Address) &&
		matchField(t.City, r.City) &&
		matchField(t.County, r.County) &&
		matchField(t.State, r.State) &&
		matchField(t.Zip, r.Zip) &&
		matchField(t.Lat, r.Lat) &&
		matchField(t.Long, r.Long)
}

func matchField[T comparable](want, have Optional[T]) bool {
	w, ok := want.Get()
	if !ok {
		return true
	}
	h, ok := have.Get()
	return ok && h == w
}

// Compile переводит шаблон в предикат для хранилищ, вычисляющих его сами (SQL).
// Порядок условий совпадает с порядком Columns.
func Compile(t Template) Predicate {
	var p Predicate
	p = appendCondition(p, ColumnID, t.ID)
	p = appendCondition(p, ColumnName, t.Name)
	p = appendCondition(p, ColumnAddress, t.Address)
	p = appendCondition(p, ColumnCity, t.City)
	p = appendCondition(p, ColumnCounty, t.County)
	p = appendCondition(p, ColumnState, t.State)
	p = appendCondition(p, ColumnZip, t.Zip)
	p = appendCondition(p, ColumnLat, t.Lat)
	p = appendCondition(p, ColumnLong, t.Long)
	return p
}

func appendCondition[T comparable](p Predicate, column string, field Optional[T]) Predicate {
	if v, ok := field.Get(); ok {
		return append(p, Condition{Column: column, Value: v})
	}
	return p
}

// Merge накладывает overrides на base. Заданное поле заменяет значение,
// незаданное сохраняет текущее. Id всегда берется из base.
// Очистить поле через Merge нельзя.
func Merge(base Record, overrides Template) Record {
	return Record{
		ID:      base.ID,
		Name:    overrides.Name.ValueOr(base.Name),
		Address: overrides.Address.Or(base.Address),
		City:    overrides.City.Or(base.City),
		County:  overrides.County.Or(base.County),
		State:   overrides.State.Or(base.State),
		Zip:     overrides.Zip.Or(base.Zip),
		Lat:     overrides.Lat.Or(base.Lat),
		Long:    overrides.Long.Or(base.Long),
	}
}

// NewRecord строит запись из шаблона создания. Id назначает хранилище.
func NewRecord(id int64, t Template) Record {
	return Merge(Record{ID: id}, t)
}
