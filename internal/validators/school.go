package validators

import (
	"context"
	"strings"

	"github.com/lyra-school/lyra-client/models"
)

const (
	FieldID              = "id"
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldRole            = "role"
	FieldAssignment      = "assignment"
	FieldProfessor       = "professor"
	FieldClassID         = "class_id"
	FieldDescription     = "description"
	FieldNewUserPassword = "password for new user"
)

// SchoolValidator checks the login form and the management forms.
type SchoolValidator struct {
}

func NewSchoolValidator() Validator {
	return &SchoolValidator{}
}

func (v *SchoolValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.UserInput:
		return v.validateUserInput(ctx, value, fields...)
	case *models.UserInput:
		return v.validateUserInput(ctx, *value, fields...)

	case models.ClassInput:
		return v.validateClassInput(ctx, value, fields...)
	case *models.ClassInput:
		return v.validateClassInput(ctx, *value, fields...)

	case models.ActivityInput:
		return v.validateActivityInput(ctx, value, fields...)
	case *models.ActivityInput:
		return v.validateActivityInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// looksLikeEmail is intentionally loose: one '@' with something on both sides.
func looksLikeEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.IndexByte(s, '@')
	return at > 0 && at == strings.LastIndexByte(s, '@') && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}

func (v *SchoolValidator) validateCredentials(ctx context.Context, c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(c.Email) {
				return ErrEmptyEmail
			}
		case FieldPassword:
			// passwords are compared verbatim, so whitespace counts
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SchoolValidator) validateUserInput(ctx context.Context, in models.UserInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldEmail, FieldRole, FieldNewUserPassword, FieldAssignment}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if in.ID < 0 {
				return ErrInvalidID
			}
		case FieldName:
			if isBlank(in.Name) {
				return ErrEmptyName
			}
		case FieldEmail:
			if isBlank(in.Email) {
				return ErrEmptyEmail
			}
			if !looksLikeEmail(in.Email) {
				return ErrInvalidEmail
			}
		case FieldRole:
			if isBlank(string(in.Role)) {
				return ErrInvalidRole
			}
		case FieldPassword:
			if in.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNewUserPassword:
			if in.IsNew() && in.Password == "" {
				return ErrEmptyPassword
			}
		case FieldAssignment:
			if models.ParseRole(string(in.Role)) == models.RoleProfessor &&
				(isBlank(in.AssignedClassName) || isBlank(in.AssignedCourseName)) {
				return ErrProfessorAssignmentRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SchoolValidator) validateClassInput(ctx context.Context, in models.ClassInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if in.ID < 0 {
				return ErrInvalidID
			}
		case FieldName:
			if isBlank(in.Name) {
				return ErrEmptyName
			}
		case FieldProfessor:
			if isBlank(in.Professor) {
				return ErrEmptyProfessor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SchoolValidator) validateActivityInput(ctx context.Context, in models.ActivityInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldClassID, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if in.ID < 0 {
				return ErrInvalidID
			}
		case FieldClassID:
			if in.ClassID <= 0 {
				return ErrInvalidClassID
			}
		case FieldDescription:
			if isBlank(in.Description) {
				return ErrEmptyDescription
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
