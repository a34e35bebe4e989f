package request

// CategoryRequest is the payload for category create/rename.
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// EmployeeRequest is the payload for employee create/update.
type EmployeeRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Specialization string `json:"specialization" binding:"required"`
}
