package customer

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrPhoneAlreadyExists возвращается, когда клиент с таким номером телефона
	// уже существует (конкурентное первое бронирование с одного номера);
	// вызывающий код должен повторить lookup вместо возврата внутренней ошибки
	ErrPhoneAlreadyExists = errors.New("customer.repository: phone number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("customer.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("customer.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("customer.repository: failed to scan row")
)
