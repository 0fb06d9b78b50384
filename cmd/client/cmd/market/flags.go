package market

import (
	"marketstore/internal/domain/market"

	"github.com/spf13/pflag"
)

// fieldFlags - набор флагов для полей рынка. prefix отличает условия
// обновления (--where-city) от новых значений (--city).
type fieldFlags struct {
	prefix string

	id      int64
	name    string
	address string
	city    string
	county  string
	state   string
	zip     string
	lat     float64
	long    float64
}

func (f *fieldFlags) register(fs *pflag.FlagSet, what string) {
	fs.Int64Var(&f.id, f.prefix+"id", 0, "id "+what)
	fs.StringVar(&f.name, f.prefix+"name", "", "название "+what)
	fs.StringVar(&f.address, f.prefix+"address", "", "адрес "+what)
	fs.StringVar(&f.city, f.prefix+"city", "", "город "+what)
	fs.StringVar(&f.county, f.prefix+"county", "", "округ "+what)
	fs.StringVar(&f.state, f.prefix+"state", "", "штат "+what)
	fs.StringVar(&f.zip, f.prefix+"zip", "", "почтовый индекс "+what)
	fs.Float64Var(&f.lat, f.prefix+"lat", 0, "широта "+what)
	fs.Float64Var(&f.long, f.prefix+"long", 0, "долгота "+what)
}

// template собирает шаблон только из явно заданных флагов.
func (f *fieldFlags) template(fs *pflag.FlagSet) market.Template {
	var t market.Template
	if fs.Changed(f.prefix + "id") {
		t.ID = market.Some(f.id)
	}
	t.Name = optionalFlag(fs, f.prefix+"name", f.name)
	t.Address = optionalFlag(fs, f.prefix+"address", f.address)
	t.City = optionalFlag(fs, f.prefix+"city", f.city)
	t.County = optionalFlag(fs, f.prefix+"county", f.county)
	t.State = optionalFlag(fs, f.prefix+"state", f.state)
	t.Zip = optionalFlag(fs, f.prefix+"zip", f.zip)
	t.Lat = optionalFlag(fs, f.prefix+"lat", f.lat)
	t.Long = optionalFlag(fs, f.prefix+"long", f.long)
	return t
}

func optionalFlag[T comparable](fs *pflag.FlagSet, name string, v T) market.Optional[T] {
	if fs.Changed(name) {
		return market.Some(v)
	}
	return market.None[T]()
}
