package validator

// LoginRequest carries credentials for /auth/login. No email format
// rule here: a malformed address can never match a stored user, so it
// fails like any other bad pair instead of leaking a different status.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest creates a new ESTUDIANTE account.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=3,max=72"`
}

// LineCreateRequest is the body of POST /lineas.
type LineCreateRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"required,max=2000"`
	LeaderID    string `json:"leaderId" validate:"required"`
}

// ProjectCreateRequest is the body of POST /proyectos.
type ProjectCreateRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"required,max=2000"`
	LineID      string   `json:"lineId" validate:"required"`
	LeaderID    string   `json:"leaderId" validate:"required"`
	Year        int      `json:"year" validate:"required,min=1900,max=2200"`
	State       string   `json:"state" validate:"required,project_state"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}

// CourseModuleRequest is a module submitted inline with a course.
type CourseModuleRequest struct {
	Title     string                  `json:"title" validate:"required,max=200"`
	Content   string                  `json:"content" validate:"required,max=5000"`
	Resources []ModuleResourceRequest `json:"resources" validate:"omitempty,dive"`
}

type ModuleResourceRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	URL   string `json:"url" validate:"required,url"`
}

// CourseCreateRequest is the body of POST /cursos.
type CourseCreateRequest struct {
	Title              string                `json:"title" validate:"required,min=2,max=200"`
	Description        string                `json:"description" validate:"required,max=2000"`
	DocenteID          string                `json:"docenteId" validate:"required"`
	Level              string                `json:"level" validate:"required,course_level"`
	LineID             *string               `json:"lineId" validate:"omitempty"`
	ProjectID          *string               `json:"projectId" validate:"omitempty"`
	Modules            []CourseModuleRequest `json:"modules" validate:"omitempty,dive"`
	EnrolledStudentIDs []string              `json:"enrolledStudentIds" validate:"omitempty,dive,required"`
	IsPublic           bool                  `json:"isPublic"`
}

// SyllabusRequest asks the generation collaborator for a course
// outline suggestion.
type SyllabusRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Level string `json:"level" validate:"required,course_level"`
	Line  string `json:"line" validate:"required,max=200"`
}

// AbstractRequest asks the generation collaborator for a project
// abstract suggestion.
type AbstractRequest struct {
	Title string   `json:"title" validate:"required,max=200"`
	Tags  []string `json:"tags" validate:"omitempty,max=20,dive,max=50"`
}
