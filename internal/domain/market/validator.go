package market

// ValidateCreate проверяет шаблон создания: id назначает сервер, name обязателен.
func ValidateCreate(t Template) error {
	if t.ID.IsSet() {
		return invalidArgument("id must not be specified")
	}
	if !t.Name.IsSet() {
		return invalidArgument("name must be specified")
	}
	return nil
}

// ValidateUpdate проверяет новые значения обновления: id неизменяем.
func ValidateUpdate(values Template) error {
	if values.ID.IsSet() {
		return invalidArgument("id must not be specified")
	}
	return nil
}
