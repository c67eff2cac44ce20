package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyName     = errors.New("name is required")
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidID     = errors.New("invalid id")

	ErrProfessorAssignmentRequired = errors.New("professor requires class and course")
	ErrEmptyProfessor              = errors.New("professor is required")
	ErrEmptyDescription            = errors.New("description is required")
	ErrInvalidClassID              = errors.New("invalid class id")
)
