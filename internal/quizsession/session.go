package quizsession

import (
	"sync"

	"github.com/tunequiz/tunequiz/internal/quizgen"
)

// PlaybackState is the locally observed playback status for a session.
type PlaybackState struct {
	IsPlaying    bool   `json:"isPlaying"`
	CurrentTrack string `json:"currentTrack,omitempty"`
	Device       string `json:"device,omitempty"`
}

// Session holds one user's active quiz document and their position in it.
// currentIndex ranges over [0, len(questions)]; len means "complete".
type Session struct {
	mu       sync.Mutex
	quiz     *quizgen.QuizDocument
	index    int
	playSeq  uint64
	playback PlaybackState
}

// Snapshot is the JSON view handed to clients.
type Snapshot struct {
	Quiz          *quizgen.QuizDocument `json:"quiz"`
	CurrentIndex  int                   `json:"currentIndex"`
	TotalQuestion int                   `json:"totalQuestions"`
	Complete      bool                  `json:"complete"`
	Playback      PlaybackState         `json:"playback"`
}

// SetQuiz replaces the held document wholesale and resets position and
// playback observation.
func (s *Session) SetQuiz(doc *quizgen.QuizDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiz = doc
	s.index = 0
	s.playback = PlaybackState{}
}

// Next advances by one question, saturating at the terminal index.
func (s *Session) Next() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz != nil && s.index < len(s.quiz.Questions) {
		s.index++
	}
}

// Prev steps back by one question, saturating at 0.
func (s *Session) Prev() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index > 0 {
		s.index--
	}
}

// Restart resets the position without discarding the document.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = 0
}

// CurrentQuestion returns the question at the current position, or nil when
// the session is complete or holds no quiz.
func (s *Session) CurrentQuestion() *quizgen.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quiz == nil || s.index >= len(s.quiz.Questions) {
		return nil
	}
	q := s.quiz.Questions[s.index]
	return &q
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	if s.quiz != nil {
		total = len(s.quiz.Questions)
	}
	return Snapshot{
		Quiz:          s.quiz,
		CurrentIndex:  s.index,
		TotalQuestion: total,
		Complete:      s.quiz != nil && s.index == total,
		Playback:      s.playback,
	}
}

func (s *Session) HasQuiz() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz != nil
}

// BeginPlayback issues a monotonic token for an in-flight playback request.
// Only the holder of the latest token may update the observed state, so
// responses that arrive after a newer request started are discarded.
func (s *Session) BeginPlayback() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playSeq++
	return s.playSeq
}

// ApplyPlayback records the observed state if token is still the latest.
// Returns false for stale tokens; the state is left untouched.
func (s *Session) ApplyPlayback(token uint64, state PlaybackState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.playSeq {
		return false
	}
	s.playback = state
	return true
}

func (s *Session) Playback() PlaybackState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback
}
