package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee ID or email already exists")
	ErrEmailExists           = errors.New("email already registered")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
)
