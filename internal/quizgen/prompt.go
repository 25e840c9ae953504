package quizgen

import (
	"fmt"
	"strings"
)

const defaultQuestionCount = 10

// BuildPrompt produces the generation instruction for the given artists.
// Duplicate artist names are passed through unchanged.
func BuildPrompt(artists []string, questionCount int) string {
	if questionCount <= 0 {
		questionCount = defaultQuestionCount
	}
	artistsString := strings.Join(artists, ", ")

	return fmt.Sprintf(`You are to generate a quiz based on the following artists: %s.

Please create a quiz of %d multiple-choice questions. Independently of how many artists there are,
if there are fewer artists than questions, create one question per artist and then randomly choose
some artists from the same list to generate the additional questions.
Each question must have:

- A question text.
- Four options labeled A, B, C, and D, each prefixed with "A) ", "B) ", "C) " or "D) ".
- The letter of the correct option.
- An "artist" field naming the artist the question is about.

At the end, provide a summary of all questions with their correct answers.

Format the output as a single JSON object with the following structure, without any code fences or Markdown:

{
  "questions": [
    {
      "questionText": "Question text here",
      "options": [
        "A) Option A text",
        "B) Option B text",
        "C) Option C text",
        "D) Option D text"
      ],
      "correctOption": "A",
      "artist": "Artist name"
    }
  ],
  "summary": "A summary of all questions and correct answers."
}`, artistsString, questionCount)
}
