package models

// Activity is a record of the "atividades" table. ClassID points at a
// Class id (or at a student's id for the synthetic class); the store does
// not enforce the reference.
type Activity struct {
	ID          int64
	ClassID     int64
	Description string
}

// TableName returns the name of the credential store table
// associated with the Activity model.
func (a Activity) TableName() string {
	return "atividades"
}

// ActivityInput is the payload of the activity form. ID == 0 creates a new record.
type ActivityInput struct {
	ID          int64
	ClassID     int64
	Description string
}

// IsNew reports whether the input creates a record.
func (in ActivityInput) IsNew() bool {
	return in.ID == 0
}
