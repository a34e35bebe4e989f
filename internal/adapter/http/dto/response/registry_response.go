package response

import "gestor_manutencao/internal/domain/entities"

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func FromCategories(cs []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}

type EmployeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		Phone:          e.Phone,
		Specialization: e.Specialization,
	}
}

func FromEmployees(es []entities.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEmployee(e))
	}
	return out
}
