package models

import (
	"time"

	"gorm.io/datatypes"
)

type CourseLevel string

const (
	LevelBasico     CourseLevel = "Básico"
	LevelIntermedio CourseLevel = "Intermedio"
	LevelAvanzado   CourseLevel = "Avanzado"
)

// Valid reports whether the level is one of the three known variants.
func (l CourseLevel) Valid() bool {
	switch l {
	case LevelBasico, LevelIntermedio, LevelAvanzado:
		return true
	}
	return false
}

// ModuleResource is a titled link inside a course module.
type ModuleResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseModule is a content unit owned exclusively by its course.
// Modules live inside the course row as a JSON column; they have no
// lifecycle of their own.
type CourseModule struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Content   string           `json:"content"`
	Resources []ModuleResource `json:"resources"`
}

// Course is teaching material owned by a DOCENTE, optionally tied to a
// research line and/or a project.
type Course struct {
	ID          string      `json:"id" gorm:"primaryKey;size:64"`
	Title       string      `json:"title" gorm:"not null;size:200"`
	Description string      `json:"description" gorm:"not null;size:2000"`
	DocenteID   string      `json:"docenteId" gorm:"not null;size:64"`
	LineID      *string     `json:"lineId,omitempty" gorm:"size:64;index"`
	ProjectID   *string     `json:"projectId,omitempty" gorm:"size:64;index"`
	Level       CourseLevel `json:"level" gorm:"not null;size:16"`

	Modules            datatypes.JSONSlice[CourseModule] `json:"modules"`
	EnrolledStudentIDs datatypes.JSONSlice[string]       `json:"enrolledStudentIds"`
	IsPublic           bool                              `json:"isPublic"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
