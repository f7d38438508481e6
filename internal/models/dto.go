package models

type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	Phone       string `json:"phone" validate:"required,student_phone"`
	Institution string `json:"institution" validate:"max=200"`
	PlanType    string `json:"plan_type" validate:"max=50"`
	Category    string `json:"category" validate:"max=100"`
}

type LoginRequest struct {
	Phone string `json:"phone" validate:"required,student_phone"`
}

type UserUpdateRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Phone       *string `json:"phone" validate:"omitempty,student_phone"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Institution *string `json:"institution" validate:"omitempty,max=200"`
	PlanType    *string `json:"plan_type" validate:"omitempty,max=50"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
}

type CourseLinkCreateRequest struct {
	PlanType         string `json:"plan_type" validate:"required,max=50"`
	Category         string `json:"category" validate:"required,max=100"`
	MaterialsLink    string `json:"materials_link" validate:"omitempty,url,max=500"`
	LiveSessionsLink string `json:"live_sessions_link" validate:"omitempty,url,max=500"`
}

type CourseLinkUpdateRequest struct {
	MaterialsLink    *string `json:"materials_link" validate:"omitempty,url,max=500"`
	LiveSessionsLink *string `json:"live_sessions_link" validate:"omitempty,url,max=500"`
}

// PlanInfo is a single entry of the plan catalog as served to clients.
type PlanInfo struct {
	PlanType   PlanType `json:"plan_type"`
	Categories []string `json:"categories"`
}

// APIResponse is the uniform JSON envelope for every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}
