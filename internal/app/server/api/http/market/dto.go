package market

import (
	"marketstore/internal/domain/market"
)

// Market - рынок в теле ответа. Отсутствующие поля не сериализуются.
type Market struct {
	ID      int64    `json:"id" example:"1" doc:"Server-assigned id"`
	Name    string   `json:"name" example:"Ferry Plaza Farmers Market"`
	Address *string  `json:"address,omitempty" example:"1 Ferry Building"`
	City    *string  `json:"city,omitempty" example:"San Francisco"`
	County  *string  `json:"county,omitempty" example:"San Francisco"`
	State   *string  `json:"state,omitempty" example:"California"`
	Zip     *string  `json:"zip,omitempty" example:"94111"`
	Lat     *float64 `json:"lat,omitempty" example:"37.7955"`
	Long    *float64 `json:"long,omitempty" example:"-122.3937"`
}

// Template - шаблон в теле запроса. Заданное поле - фильтр на точное
// совпадение или новое значение, незаданное (или null) - игнорируется.
type Template struct {
	ID      *int64   `json:"id,omitempty" nullable:"true" doc:"Market id, only valid as a filter"`
	Name    *string  `json:"name,omitempty" nullable:"true"`
	Address *string  `json:"address,omitempty" nullable:"true"`
	City    *string  `json:"city,omitempty" nullable:"true"`
	County  *string  `json:"county,omitempty" nullable:"true"`
	State   *string  `json:"state,omitempty" nullable:"true"`
	Zip     *string  `json:"zip,omitempty" nullable:"true"`
	Lat     *float64 `json:"lat,omitempty" nullable:"true"`
	Long    *float64 `json:"long,omitempty" nullable:"true"`
}

type echoInput struct {
	Body Market
}

type echoOutput struct {
	Body Market
}

type templateInput struct {
	Body Template
}

type createOutput struct {
	Body Market
}

type updateInput struct {
	Body updateRequest
}

type updateRequest struct {
	Market     Template `json:"market" doc:"New values; unset fields keep their current value"`
	Conditions Template `json:"conditions" doc:"Markets to update"`
}

type listOutput struct {
	Body listResponse
}

type listResponse struct {
	Markets []Market `json:"markets"`
}

func (t Template) toDomain() market.Template {
	return market.Template{
		ID:      market.FromPtr(t.ID),
		Name:    market.FromPtr(t.Name),
		Address: market.FromPtr(t.Address),
		City:    market.FromPtr(t.City),
		County:  market.FromPtr(t.County),
		State:   market.FromPtr(t.State),
		Zip:     market.FromPtr(t.Zip),
		Lat:     market.FromPtr(t.Lat),
		Long:    market.FromPtr(t.Long),
	}
}

func (m Market) toDomain() market.Record {
	return market.Record{
		ID:      m.ID,
		Name:    m.Name,
		Address: market.FromPtr(m.Address),
		City:    market.FromPtr(m.City),
		County:  market.FromPtr(m.County),
		State:   market.FromPtr(m.State),
		Zip:     market.FromPtr(m.Zip),
		Lat:     market.FromPtr(m.Lat),
		Long:    market.FromPtr(m.Long),
	}
}

func fromDomain(r market.Record) Market {
	return Market{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address.Ptr(),
		City:    r.City.Ptr(),
		County:  r.County.Ptr(),
		State:   r.State.Ptr(),
		Zip:     r.Zip.Ptr(),
		Lat:     r.Lat.Ptr(),
		Long:    r.Long.Ptr(),
	}
}

func fromDomainList(records []market.Record) listResponse {
	markets := make([]Market, len(records))
	for i, r := range records {
		markets[i] = fromDomain(r)
	}
	return listResponse{Markets: markets}
}
