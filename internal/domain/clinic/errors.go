package clinic

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
)

// Nombres de entidad tal como aparecen en los mensajes "<Entity> not found".
const (
	EntityOwner     = "Owner"
	EntityPet       = "Pet"
	EntityPetType   = "Pet type"
	EntityVet       = "Vet"
	EntitySpecialty = "Specialty"
	EntityVisit     = "Visit"
)

// NotFoundError identifica qué entidad faltó. errors.Is(err, ErrNotFound) sigue funcionando.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError es el primer campo inválido de un payload (fail-fast).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newRequiredError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("%s is required", field)}
}

// notFound traduce el ErrNotFound del repo al NotFoundError de la entidad.
func notFound(entity string, id int64, err error) error {
	if errors.Is(err, ErrNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
