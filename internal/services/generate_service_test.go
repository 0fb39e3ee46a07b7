package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aplicatto/showcase-service/internal/gemini"
	"github.com/aplicatto/showcase-service/internal/validator"
)

func newGenerateService(t *testing.T, upstream http.HandlerFunc) (GenerateService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client := gemini.NewClient(gemini.Config{
		APIKey:   "test-key",
		Endpoint: server.URL,
		Model:    "gemini-2.5-flash",
	})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGenerateService(client, logger, validator.New()), server
}

func TestGenerateService_CourseSyllabus(t *testing.T) {
	var gotPrompt string
	svc, _ := newGenerateService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		gotPrompt = req.Contents[0].Parts[0].Text

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Descripción: curso de prueba"}},
				}},
			},
		})
	})

	out, err := svc.CourseSyllabus(context.Background(), &SyllabusRequest{
		Title: "Visión por Computador",
		Level: "Avanzado",
		Line:  "Inteligencia Artificial",
	})
	require.NoError(t, err)
	assert.Equal(t, "Descripción: curso de prueba", out.Text)

	// The fixed template carries the request fields into the prompt.
	assert.Contains(t, gotPrompt, `"Visión por Computador"`)
	assert.Contains(t, gotPrompt, "El nivel es Avanzado")
	assert.Contains(t, gotPrompt, `"Inteligencia Artificial"`)
}

func TestGenerateService_ProjectAbstract(t *testing.T) {
	var gotBody string
	svc, _ := newGenerateService(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "Abstract generado."}},
				}},
			},
		})
	})

	out, err := svc.ProjectAbstract(context.Background(), &AbstractRequest{
		Title: "Sensores de ruido",
		Tags:  []string{"IoT", "Arduino"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Abstract generado.", out.Text)
	assert.True(t, strings.Contains(gotBody, "IoT, Arduino"))
}

func TestGenerateService_UpstreamFailure(t *testing.T) {
	svc, _ := newGenerateService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.CourseSyllabus(context.Background(), &SyllabusRequest{
		Title: "Curso",
		Level: "Básico",
		Line:  "IoT",
	})
	assert.True(t, IsUpstreamError(err))
}

func TestGenerateService_NotConfigured(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewGenerateService(gemini.NewClient(gemini.Config{}), logger, validator.New())

	_, err := svc.ProjectAbstract(context.Background(), &AbstractRequest{Title: "X"})
	require.True(t, IsUpstreamError(err))
	assert.ErrorIs(t, err, gemini.ErrNotConfigured)
}

func TestGenerateService_ValidatesInput(t *testing.T) {
	svc, _ := newGenerateService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("upstream must not be called for invalid input")
	})

	_, err := svc.CourseSyllabus(context.Background(), &SyllabusRequest{Title: "Curso"})
	assert.True(t, validator.IsValidationErrors(err))
}
