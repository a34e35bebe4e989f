package entities

// Employee is a workshop employee able to quote, perform and redirect
// maintenance. Emails are unique case-insensitively.

type Employee struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}
