package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aplicatto/showcase-service/internal/gemini"
	"github.com/aplicatto/showcase-service/internal/validator"
)

// Prompt templates are fixed; the collaborator is otherwise opaque.
const (
	syllabusPromptTemplate = `Actúa como un docente experto investigador. Crea una descripción breve y un temario sugerido de 3 módulos para un curso de investigación titulado "%s".
El nivel es %s y pertenece a la línea de investigación "%s".
Formato deseado:
Descripción: [Texto corto]
Módulo 1: [Nombre] - [Breve descripción]
Módulo 2: [Nombre] - [Breve descripción]
Módulo 3: [Nombre] - [Breve descripción]`

	abstractPromptTemplate = `Genera un resumen ejecutivo académico (abstract) de 1 párrafo para un proyecto de investigación titulado "%s".
Palabras clave: %s.
El tono debe ser formal y académico.`
)

type generateService struct {
	client    *gemini.Client
	logger    *slog.Logger
	validator *validator.Validator
}

func NewGenerateService(client *gemini.Client, logger *slog.Logger, validator *validator.Validator) GenerateService {
	return &generateService{client: client, logger: logger, validator: validator}
}

func (s *generateService) CourseSyllabus(ctx context.Context, req *SyllabusRequest) (*GeneratedText, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	prompt := fmt.Sprintf(syllabusPromptTemplate, req.Title, req.Level, req.Line)
	return s.generate(ctx, "syllabus", prompt)
}

func (s *generateService) ProjectAbstract(ctx context.Context, req *AbstractRequest) (*GeneratedText, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	prompt := fmt.Sprintf(abstractPromptTemplate, req.Title, strings.Join(req.Tags, ", "))
	return s.generate(ctx, "abstract", prompt)
}

func (s *generateService) generate(ctx context.Context, op, prompt string) (*GeneratedText, error) {
	text, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("generation upstream failed", "op", op, "error", err)
		return nil, &UpstreamError{Op: op, Err: err}
	}
	return &GeneratedText{Text: text}, nil
}
