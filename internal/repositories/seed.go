package repositories

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/aplicatto/showcase-service/internal/auth"
	"github.com/aplicatto/showcase-service/internal/models"
)

// Seed loads the demo catalog into an empty store. A store that
// already holds users is left untouched, so restarts against a
// database are idempotent.
func Seed(ctx context.Context, repo Repository) error {
	count, err := repo.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf("checking seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	docenteBio := "Experto en IA."
	docenteSpecialty := "Data Science"
	estudianteBio := "Estudiante de ingeniería."

	users := []*models.User{
		{
			ID:    "1",
			Name:  "Admin User",
			Email: "admin@aplicatto.edu",
			Role:  models.RoleAdmin,
		},
		{
			ID:        "2",
			Name:      "Prof. Jhon Doe",
			Email:     "prof@aplicatto.edu",
			Role:      models.RoleDocente,
			Specialty: &docenteSpecialty,
			Bio:       &docenteBio,
			Interests: datatypes.NewJSONSlice([]string{"ML", "Python"}),
		},
		{
			ID:        "3",
			Name:      "Estudiante Ana",
			Email:     "ana@est.edu",
			Role:      models.RoleEstudiante,
			Bio:       &estudianteBio,
			Interests: datatypes.NewJSONSlice([]string{"IoT"}),
		},
	}

	for _, u := range users {
		hash, err := auth.HashPassword("123")
		if err != nil {
			return fmt.Errorf("hashing seed password: %w", err)
		}
		u.PasswordHash = hash
		if err := repo.Users().Create(ctx, u); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
	}

	lines := []*models.ResearchLine{
		{
			ID:          "l1",
			Name:        "Inteligencia Artificial",
			Description: "Aplicación de modelos de ML y DL en contextos sociales.",
			LeaderID:    "2",
		},
		{
			ID:          "l2",
			Name:        "IoT y Ciudades",
			Description: "Sensores y conectividad para mejorar la vida urbana.",
			LeaderID:    "2",
		},
	}
	for _, l := range lines {
		if err := repo.Lines().Create(ctx, l); err != nil {
			return fmt.Errorf("seeding line %s: %w", l.ID, err)
		}
	}

	projects := []*models.Project{
		{
			ID:          "p1",
			Title:       "Predicción de calidad del aire",
			Description: "Uso de redes neuronales para predecir PM2.5 en Medellín.",
			LineID:      "l1",
			LeaderID:    "2",
			Year:        2024,
			State:       models.StateInProgress,
			Tags:        datatypes.NewJSONSlice([]string{"AI", "Python", "Ambiental"}),
		},
		{
			ID:          "p2",
			Title:       "Sensores de ruido low-cost",
			Description: "Dispositivos IoT para medir contaminación auditiva.",
			LineID:      "l2",
			LeaderID:    "2",
			Year:        2023,
			State:       models.StatePublished,
			Tags:        datatypes.NewJSONSlice([]string{"IoT", "Arduino", "Hardware"}),
		},
	}
	for _, p := range projects {
		if err := repo.Projects().Create(ctx, p); err != nil {
			return fmt.Errorf("seeding project %s: %w", p.ID, err)
		}
	}

	l1 := "l1"
	courses := []*models.Course{
		{
			ID:                 "c1",
			Title:              "Fundamentos de Python",
			Description:        "Curso introductorio para investigación.",
			DocenteID:          "2",
			LineID:             &l1,
			Level:              models.LevelBasico,
			Modules:            datatypes.NewJSONSlice([]models.CourseModule{}),
			EnrolledStudentIDs: datatypes.NewJSONSlice([]string{"3"}),
			IsPublic:           true,
		},
		{
			ID:                 "c2",
			Title:              "Machine Learning I",
			Description:        "Modelos supervisados y no supervisados.",
			DocenteID:          "2",
			LineID:             &l1,
			Level:              models.LevelIntermedio,
			Modules:            datatypes.NewJSONSlice([]models.CourseModule{}),
			EnrolledStudentIDs: datatypes.NewJSONSlice([]string{}),
			IsPublic:           true,
		},
	}
	for _, c := range courses {
		if err := repo.Courses().Create(ctx, c); err != nil {
			return fmt.Errorf("seeding course %s: %w", c.ID, err)
		}
	}

	return nil
}
