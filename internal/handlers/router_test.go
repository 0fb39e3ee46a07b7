package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplicatto/showcase-service/internal/auth"
	"github.com/aplicatto/showcase-service/internal/events"
	"github.com/aplicatto/showcase-service/internal/gemini"
	"github.com/aplicatto/showcase-service/internal/models"
	"github.com/aplicatto/showcase-service/internal/repositories"
	"github.com/aplicatto/showcase-service/internal/repositories/memory"
	"github.com/aplicatto/showcase-service/internal/services"
	"github.com/aplicatto/showcase-service/internal/utils"
	"github.com/aplicatto/showcase-service/internal/validator"
)

// newTestRouter builds the full HTTP surface over the in-memory store
// with the demo seed, exactly as main wires it.
func newTestRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	slogLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	logger := utils.NewSlogLogger(slogLogger)

	repo := memory.NewMemoryRepository()
	require.NoError(t, repositories.Seed(context.Background(), repo))

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	serviceManager := services.NewServiceManager(services.Dependencies{
		Repo:      repo,
		Tokens:    tokens,
		Publisher: events.NewMockEventPublisher(slogLogger),
		Gemini:    gemini.NewClient(gemini.Config{}),
		Logger:    slogLogger,
		Validator: validator.New(),
	})

	router := gin.New()
	NewHandlerManager(serviceManager, tokens, logger).SetupRoutes(router)
	return router, tokens
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func issueToken(t *testing.T, tokens *auth.TokenManager, userID string, role models.UserRole) string {
	t.Helper()
	token, err := tokens.Issue(userID, role)
	require.NoError(t, err)
	return token
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "admin@aplicatto.edu",
			"password": "123",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Token string `json:"token"`
			User  struct {
				Name string `json:"name"`
				Role string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Admin User", resp.User.Name)
		assert.Equal(t, "ADMIN", resp.User.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
			"email":    "admin@aplicatto.edu",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthenticated")
	})
}

func TestPublicCatalogReads(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("lines", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/lineas", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var lines []models.ResearchLine
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
		assert.Len(t, lines, 2)
	})

	t.Run("line by id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/lineas/l1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Inteligencia Artificial")

		w = doJSON(t, router, http.MethodGet, "/api/v1/lineas/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("projects with filters", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/proyectos?estado=En%20Curso", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var projects []models.Project
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
		require.Len(t, projects, 1)
		assert.Equal(t, "p1", projects[0].ID)
	})

	t.Run("courses by line", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/cursos?lineId=l1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var courses []models.Course
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &courses))
		assert.Len(t, courses, 2)
	})
}

func TestCreateLine_Authorization(t *testing.T) {
	router, tokens := newTestRouter(t)

	body := gin.H{
		"name":        "Robótica",
		"description": "Automatización.",
		"leaderId":    "2",
	}

	t.Run("no token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/lineas", "", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/lineas", "garbage", body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("docente is forbidden", func(t *testing.T) {
		token := issueToken(t, tokens, "2", models.RoleDocente)
		w := doJSON(t, router, http.MethodPost, "/api/v1/lineas", token, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "forbidden")
	})

	t.Run("estudiante is forbidden", func(t *testing.T) {
		token := issueToken(t, tokens, "3", models.RoleEstudiante)
		w := doJSON(t, router, http.MethodPost, "/api/v1/lineas", token, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin creates with a fresh id", func(t *testing.T) {
		token := issueToken(t, tokens, "1", models.RoleAdmin)
		w := doJSON(t, router, http.MethodPost, "/api/v1/lineas", token, body)
		require.Equal(t, http.StatusCreated, w.Code)

		var line models.ResearchLine
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))
		assert.NotEmpty(t, line.ID)
		assert.NotContains(t, []string{"l1", "l2"}, line.ID)
	})

	t.Run("rejected attempts did not mutate the collection", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/lineas", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var lines []models.ResearchLine
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
		assert.Len(t, lines, 3, "two seeded plus the one admin create")
	})
}

func TestCreateCourse_DocenteOnly(t *testing.T) {
	router, tokens := newTestRouter(t)

	body := gin.H{
		"title":       "Estadística aplicada",
		"description": "Inferencia.",
		"docenteId":   "2",
		"level":       "Intermedio",
	}

	t.Run("admin is not in the allowed set", func(t *testing.T) {
		token := issueToken(t, tokens, "1", models.RoleAdmin)
		w := doJSON(t, router, http.MethodPost, "/api/v1/cursos", token, body)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("docente creates", func(t *testing.T) {
		token := issueToken(t, tokens, "2", models.RoleDocente)
		w := doJSON(t, router, http.MethodPost, "/api/v1/cursos", token, body)
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestCreateProject_Validation(t *testing.T) {
	router, tokens := newTestRouter(t)
	token := issueToken(t, tokens, "2", models.RoleDocente)

	t.Run("invalid state value", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/proyectos", token, gin.H{
			"title":       "Proyecto",
			"description": "d",
			"lineId":      "l1",
			"leaderId":    "2",
			"year":        2025,
			"state":       "Cancelado",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
		require.NotEmpty(t, resp.Fields)
		assert.Equal(t, "state", resp.Fields[0].Field)
	})

	t.Run("valid project", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/proyectos", token, gin.H{
			"title":       "Detección de sesgos",
			"description": "d",
			"lineId":      "l1",
			"leaderId":    "2",
			"year":        2025,
			"state":       "En Formulación",
			"tags":        []string{"AI"},
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body := gin.H{
		"name":     "Nuevo Estudiante",
		"email":    "nuevo@est.edu",
		"password": "secret",
	}

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, models.RoleEstudiante, user.Role)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	t.Run("duplicate email", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "duplicate_email")
	})
}

func TestMeEndpoint(t *testing.T) {
	router, tokens := newTestRouter(t)

	t.Run("authenticated", func(t *testing.T) {
		token := issueToken(t, tokens, "3", models.RoleEstudiante)
		w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Estudiante Ana")
	})

	t.Run("no token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestDashboardStats_AnyAuthenticatedRole(t *testing.T) {
	router, tokens := newTestRouter(t)

	t.Run("estudiante can read stats", func(t *testing.T) {
		token := issueToken(t, tokens, "3", models.RoleEstudiante)
		w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var stats services.DashboardStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, int64(3), stats.Users)
		assert.Equal(t, int64(2), stats.Projects)
	})

	t.Run("anonymous cannot", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/dashboard/stats", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestExportProjects(t *testing.T) {
	router, tokens := newTestRouter(t)

	t.Run("estudiante is forbidden", func(t *testing.T) {
		token := issueToken(t, tokens, "3", models.RoleEstudiante)
		w := doJSON(t, router, http.MethodGet, "/api/v1/proyectos/export", token, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin downloads the workbook", func(t *testing.T) {
		token := issueToken(t, tokens, "1", models.RoleAdmin)
		w := doJSON(t, router, http.MethodGet, "/api/v1/proyectos/export", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "proyectos-")
		assert.NotEmpty(t, w.Body.Bytes())
	})
}

func TestGenerateEndpoints_RequireRole(t *testing.T) {
	router, tokens := newTestRouter(t)

	token := issueToken(t, tokens, "3", models.RoleEstudiante)
	w := doJSON(t, router, http.MethodPost, "/api/v1/gemini/abstract", token, gin.H{
		"title": "Proyecto",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
