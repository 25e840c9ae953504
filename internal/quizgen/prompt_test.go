package quizgen

import (
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("ContainsArtistsAndCount", func(t *testing.T) {
		prompt := BuildPrompt([]string{"Adele"}, 3)

		if !strings.Contains(prompt, "Adele") {
			t.Error("prompt should contain the artist name")
		}
		if !strings.Contains(prompt, "3") {
			t.Error("prompt should contain the question count")
		}
	})

	t.Run("JoinsArtistsWithComma", func(t *testing.T) {
		prompt := BuildPrompt([]string{"Adele", "Coldplay"}, 5)
		if !strings.Contains(prompt, "Adele, Coldplay") {
			t.Error("prompt should contain the comma-joined artist list")
		}
	})

	t.Run("DefaultsInvalidCount", func(t *testing.T) {
		prompt := BuildPrompt([]string{"Adele"}, 0)
		if !strings.Contains(prompt, "quiz of 10 multiple-choice questions") {
			t.Error("count <= 0 should default to 10 questions")
		}
	})

	t.Run("DuplicatesPassThrough", func(t *testing.T) {
		prompt := BuildPrompt([]string{"Adele", "Adele"}, 2)
		if !strings.Contains(prompt, "Adele, Adele") {
			t.Error("duplicate artist names should be passed through unchanged")
		}
	})

	t.Run("ForbidsCodeFences", func(t *testing.T) {
		prompt := BuildPrompt([]string{"Adele"}, 2)
		if !strings.Contains(prompt, "without any code fences") {
			t.Error("prompt should spell out the no-code-fences contract")
		}
	})
}
