package market

// Колонки таблицы Markets. Набор фиксирован и общий для всех хранилищ.
const (
	Table = "Markets"

	ColumnID      = "Id"
	ColumnName    = "Name"
	ColumnAddress = "Address"
	ColumnCity    = "City"
	ColumnCounty  = "County"
	ColumnState   = "State"
	ColumnZip     = "Zip"
	ColumnLat     = "Lat"
	ColumnLong    = "Long"
)

// Columns в порядке, в котором они читаются и записываются.
var Columns = []string{
	ColumnID, ColumnName, ColumnAddress, ColumnCity, ColumnCounty,
	ColumnState, ColumnZip, ColumnLat, ColumnLong,
}

// Record - сохраненный фермерский рынок
type Record struct {
	ID      int64             `json:"id" yaml:"id"`
	Name    string            `json:"name" yaml:"name"`
	Address Optional[string]  `json:"address,omitzero" yaml:"address,omitempty"`
	City    Optional[string]  `json:"city,omitzero" yaml:"city,omitempty"`
	County  Optional[string]  `json:"county,omitzero" yaml:"county,omitempty"`
	State   Optional[string]  `json:"state,omitzero" yaml:"state,omitempty"`
	Zip     Optional[string]  `json:"zip,omitzero" yaml:"zip,omitempty"`
	Lat     Optional[float64] `json:"lat,omitzero" yaml:"lat,omitempty"`
	Long    Optional[float64] `json:"long,omitzero" yaml:"long,omitempty"`
}

// Template - частично заполненная запись. Заданное поле работает как фильтр
// на точное совпадение (или как новое значение при обновлении), незаданное
// поле игнорируется.
type Template struct {
	ID      Optional[int64]   `json:"id,omitzero" yaml:"id,omitempty"`
	Name    Optional[string]  `json:"name,omitzero" yaml:"name,omitempty"`
	Address Optional[string]  `json:"address,omitzero" yaml:"address,omitempty"`
	City    Optional[string]  `json:"city,omitzero" yaml:"city,omitempty"`
	County  Optional[string]  `json:"county,omitzero" yaml:"county,omitempty"`
	State   Optional[string]  `json:"state,omitzero" yaml:"state,omitempty"`
	Zip     Optional[string]  `json:"zip,omitzero" yaml:"zip,omitempty"`
	Lat     Optional[float64] `json:"lat,omitzero" yaml:"lat,omitempty"`
	Long    Optional[float64] `json:"long,omitzero" yaml:"long,omitempty"`
}

// Template возвращает шаблон, совпадающий с записью по всем заданным полям.
// Id в шаблон не попадает, поэтому результат годится и для Create.
func (r Record) Template() Template {
	return Template{
		Name:    Some(r.Name),
		Address: r.Address,
		City:    r.City,
		County:  r.County,
		State:   r.State,
		Zip:     r.Zip,
		Lat:     r.Lat,
		Long:    r.Long,
	}
}

// ByID - шаблон, выбирающий одну запись по первичному ключу.
func ByID(id int64) Template {
	return Template{ID: Some(id)}
}

// IsEmpty сообщает, что в шаблоне не задано ни одного поля.
func (t Template) IsEmpty() bool {
	return t == Template{}
}
