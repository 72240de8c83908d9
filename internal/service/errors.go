package service

// ValidationError — отказ проверки входных данных. Возникает до любого
// обращения к хранилищу; Field называет первое непрошедшее поле.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
