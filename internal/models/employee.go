package models

// Employee is one row of the credential list used to gate submissions.
type Employee struct {
	Name string `json:"name"`
	PIN  string `json:"-"`
}
