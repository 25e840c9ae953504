package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tunequiz/tunequiz/internal/config"
)

// Generation failures. Handlers map all of them to a 500 with an error body;
// the only recovery path is a caller-initiated regeneration.
var (
	ErrEmptyResponse   = errors.New("empty response from generator")
	ErrMalformedJSON   = errors.New("malformed JSON in generator response")
	ErrUnexpectedShape = errors.New("generator response has unexpected shape")
	ErrInvalidQuestion = errors.New("generated question failed validation")
)

type Service interface {
	Generate(ctx context.Context, artists []string, nbrQuestions int) (*QuizDocument, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) Generate(ctx context.Context, artists []string, nbrQuestions int) (*QuizDocument, error) {
	log := config.WithContext(ctx)

	if nbrQuestions <= 0 {
		nbrQuestions = defaultQuestionCount
	}

	prompt := BuildPrompt(artists, nbrQuestions)
	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyResponse
	}

	doc, err := ParseDocument(raw)
	if err != nil {
		log.WithError(err).Errorf("Rejected generator output:\n%s", raw)
		return nil, err
	}

	log.Infof("Generated quiz with %d questions for %d artists", len(doc.Questions), len(artists))
	return doc, nil
}

// ParseDocument turns raw generator text into a validated QuizDocument.
// One fallback strip of Markdown code fences is attempted before giving up.
func ParseDocument(raw string) (*QuizDocument, error) {
	text := strings.TrimSpace(raw)
	if !json.Valid([]byte(text)) {
		text = stripCodeFences(text)
		if !json.Valid([]byte(text)) {
			return nil, ErrMalformedJSON
		}
	}

	// Pointer fields distinguish "absent" from "zero value" for the shape check.
	var shape struct {
		Questions *[]Question `json:"questions"`
		Summary   *string     `json:"summary"`
	}
	if err := json.Unmarshal([]byte(text), &shape); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedShape, err)
	}
	if shape.Questions == nil || shape.Summary == nil {
		return nil, ErrUnexpectedShape
	}

	doc := &QuizDocument{
		Questions: *shape.Questions,
		Summary:   *shape.Summary,
	}
	for i, q := range doc.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return doc, nil
}

func stripCodeFences(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")
	return strings.TrimSpace(clean)
}

var optionLabels = [...]string{"A) ", "B) ", "C) ", "D) "}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.QuestionText) == "" {
		return fmt.Errorf("%w: empty question text", ErrInvalidQuestion)
	}
	if len(q.Options) != len(optionLabels) {
		return fmt.Errorf("%w: expected %d options, got %d", ErrInvalidQuestion, len(optionLabels), len(q.Options))
	}
	for i, opt := range q.Options {
		if !strings.HasPrefix(opt, optionLabels[i]) {
			return fmt.Errorf("%w: option %d is not labeled %q", ErrInvalidQuestion, i+1, strings.TrimSpace(optionLabels[i]))
		}
	}
	switch q.CorrectOption {
	case "A", "B", "C", "D":
		return nil
	default:
		return fmt.Errorf("%w: correct option %q is not one of A-D", ErrInvalidQuestion, q.CorrectOption)
	}
}
