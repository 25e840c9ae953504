package quizgen

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

const validQuizJSON = `{
  "questions": [
    {
      "questionText": "Which album did Adele release in 2015?",
      "options": ["A) 19", "B) 21", "C) 25", "D) 30"],
      "correctOption": "C",
      "artist": "Adele"
    }
  ],
  "summary": "Q1: C"
}`

type fakeProvider struct {
	response string
	err      error
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return p.response, p.err
}

func TestGenerate(t *testing.T) {
	t.Run("ValidResponse", func(t *testing.T) {
		svc := NewService(&fakeProvider{response: validQuizJSON})

		doc, err := svc.Generate(context.Background(), []string{"Adele"}, 1)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(doc.Questions) != 1 {
			t.Fatalf("expected 1 question, got %d", len(doc.Questions))
		}
		if doc.Questions[0].CorrectOption != "C" {
			t.Errorf("wrong correct option: %s", doc.Questions[0].CorrectOption)
		}
		if doc.Questions[0].Artist != "Adele" {
			t.Errorf("wrong artist: %s", doc.Questions[0].Artist)
		}
	})

	t.Run("ProviderError", func(t *testing.T) {
		wantErr := errors.New("backend unreachable")
		svc := NewService(&fakeProvider{err: wantErr})

		if _, err := svc.Generate(context.Background(), []string{"Adele"}, 1); !errors.Is(err, wantErr) {
			t.Errorf("expected provider error, got %v", err)
		}
	})

	t.Run("EmptyResponse", func(t *testing.T) {
		svc := NewService(&fakeProvider{response: "   \n"})

		if _, err := svc.Generate(context.Background(), []string{"Adele"}, 1); !errors.Is(err, ErrEmptyResponse) {
			t.Errorf("expected ErrEmptyResponse, got %v", err)
		}
	})

	t.Run("NotJSON", func(t *testing.T) {
		svc := NewService(&fakeProvider{response: "not json"})

		if _, err := svc.Generate(context.Background(), []string{"Adele"}, 1); !errors.Is(err, ErrMalformedJSON) {
			t.Errorf("expected ErrMalformedJSON, got %v", err)
		}
	})
}

func TestParseDocument(t *testing.T) {
	t.Run("FencedEqualsUnfenced", func(t *testing.T) {
		plain, err := ParseDocument(validQuizJSON)
		if err != nil {
			t.Fatalf("parse of plain JSON failed: %v", err)
		}

		fenced, err := ParseDocument("```json\n" + validQuizJSON + "\n```")
		if err != nil {
			t.Fatalf("parse of fenced JSON failed: %v", err)
		}

		if !reflect.DeepEqual(plain, fenced) {
			t.Error("fenced and unfenced JSON should produce deep-equal documents")
		}
	})

	t.Run("TopLevelArray", func(t *testing.T) {
		if _, err := ParseDocument(`[{"questionText": "x"}]`); !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("expected ErrUnexpectedShape for a top-level array, got %v", err)
		}
	})

	t.Run("MissingSummary", func(t *testing.T) {
		if _, err := ParseDocument(`{"questions": []}`); !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("expected ErrUnexpectedShape when summary is absent, got %v", err)
		}
	})

	t.Run("MissingQuestions", func(t *testing.T) {
		if _, err := ParseDocument(`{"summary": "s"}`); !errors.Is(err, ErrUnexpectedShape) {
			t.Errorf("expected ErrUnexpectedShape when questions is absent, got %v", err)
		}
	})

	t.Run("WrongOptionCount", func(t *testing.T) {
		doc := `{"questions": [{"questionText": "q", "options": ["A) a", "B) b", "C) c"], "correctOption": "A"}], "summary": "s"}`
		if _, err := ParseDocument(doc); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion for three options, got %v", err)
		}
	})

	t.Run("UnlabeledOption", func(t *testing.T) {
		doc := `{"questions": [{"questionText": "q", "options": ["A) a", "B) b", "C) c", "d"], "correctOption": "A"}], "summary": "s"}`
		if _, err := ParseDocument(doc); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion for an unlabeled option, got %v", err)
		}
	})

	t.Run("DuplicateLabels", func(t *testing.T) {
		doc := `{"questions": [{"questionText": "q", "options": ["A) a", "A) b", "C) c", "D) d"], "correctOption": "A"}], "summary": "s"}`
		if _, err := ParseDocument(doc); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion for duplicate labels, got %v", err)
		}
	})

	t.Run("CorrectOptionOutOfRange", func(t *testing.T) {
		doc := `{"questions": [{"questionText": "q", "options": ["A) a", "B) b", "C) c", "D) d"], "correctOption": "E"}], "summary": "s"}`
		if _, err := ParseDocument(doc); !errors.Is(err, ErrInvalidQuestion) {
			t.Errorf("expected ErrInvalidQuestion for correct option E, got %v", err)
		}
	})
}
