package quizgen

// QuizDocument is the structured output of a generation call: ordered
// questions (playback order) plus a closing summary.
type QuizDocument struct {
	Questions []Question `json:"questions"`
	Summary   string     `json:"summary"`
}

type Question struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectOption string   `json:"correctOption"`
	// Artist names the artist the question concerns; empty means the
	// question has no playback affordance.
	Artist string `json:"artist,omitempty"`
}

type GenerateRequest struct {
	Artists      []string `json:"artists"`
	NbrQuestions int      `json:"nbrQuestions"`
}
