package models

import "time"

// ResearchLine is a thematic research area led by one user.
type ResearchLine struct {
	ID          string `json:"id" gorm:"primaryKey;size:64"`
	Name        string `json:"name" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"not null;size:2000"`
	LeaderID    string `json:"leaderId" gorm:"not null;size:64"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ResearchLine) TableName() string {
	return "research_lines"
}
