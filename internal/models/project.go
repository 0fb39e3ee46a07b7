package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectState is a plain value enum. The platform never enforces a
// transition order between states; any state may be set at creation.
type ProjectState string

const (
	StateFormulation ProjectState = "En Formulación"
	StateInProgress  ProjectState = "En Curso"
	StateFinished    ProjectState = "Finalizado"
	StatePublished   ProjectState = "Publicado"
)

// Valid reports whether the state is one of the four known variants.
func (s ProjectState) Valid() bool {
	switch s {
	case StateFormulation, StateInProgress, StateFinished, StatePublished:
		return true
	}
	return false
}

// Project is a research effort attached to a line.
type Project struct {
	ID          string                      `json:"id" gorm:"primaryKey;size:64"`
	Title       string                      `json:"title" gorm:"not null;size:200"`
	Description string                      `json:"description" gorm:"not null;size:2000"`
	LineID      string                      `json:"lineId" gorm:"not null;size:64;index"`
	LeaderID    string                      `json:"leaderId" gorm:"not null;size:64"`
	Year        int                         `json:"year" gorm:"not null"`
	State       ProjectState                `json:"state" gorm:"not null;size:32;index"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
