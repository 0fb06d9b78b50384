package market

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Optional хранит значение поля вместе с признаком его наличия.
// Отсутствующее поле (None) отличается от поля с нулевым значением (Some("")).
type Optional[T comparable] struct {
	value T
	set   bool
}

// Some возвращает заполненное значение
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None возвращает отсутствующее значение
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsZero используется encoding/json (omitzero) и yaml.v3 (omitempty).
func (o Optional[T]) IsZero() bool {
	return !o.set
}

func (o Optional[T]) ValueOr(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}

// Or возвращает o, если значение задано, иначе fallback.
func (o Optional[T]) Or(fallback Optional[T]) Optional[T] {
	if o.set {
		return o
	}
	return fallback
}

// Ptr возвращает указатель на копию значения или nil.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// FromPtr - обратное преобразование к Ptr.
func FromPtr[T comparable](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Optional[T]) String() string {
	if !o.set {
		return "<unset>"
	}
	return fmt.Sprint(o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.set {
		return nil, nil
	}
	return o.value, nil
}

// Scan реализует sql.Scanner: NULL превращается в None.
func (o *Optional[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	o.value, o.set = n.V, n.Valid
	return nil
}

// Value реализует driver.Valuer: None записывается как NULL.
func (o Optional[T]) Value() (driver.Value, error) {
	return sql.Null[T]{V: o.value, Valid: o.set}.Value()
}
