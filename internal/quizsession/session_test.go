package quizsession

import (
	"fmt"
	"testing"

	"github.com/tunequiz/tunequiz/internal/quizgen"
)

func testQuiz(n int) *quizgen.QuizDocument {
	doc := &quizgen.QuizDocument{Summary: "summary"}
	for i := 0; i < n; i++ {
		doc.Questions = append(doc.Questions, quizgen.Question{
			QuestionText:  fmt.Sprintf("question %d", i+1),
			Options:       []string{"A) a", "B) b", "C) c", "D) d"},
			CorrectOption: "A",
		})
	}
	return doc
}

func TestSessionNavigation(t *testing.T) {
	t.Run("NextSaturatesAtTerminal", func(t *testing.T) {
		s := &Session{}
		s.SetQuiz(testQuiz(3))

		for i := 0; i < 3; i++ {
			s.Next()
		}
		snap := s.Snapshot()
		if snap.CurrentIndex != 3 || !snap.Complete {
			t.Fatalf("after 3 Next calls expected terminal index 3, got %d (complete=%v)", snap.CurrentIndex, snap.Complete)
		}

		// Further calls are no-ops.
		s.Next()
		s.Next()
		if got := s.Snapshot().CurrentIndex; got != 3 {
			t.Errorf("Next past terminal should saturate, got index %d", got)
		}
		if s.CurrentQuestion() != nil {
			t.Error("CurrentQuestion should be nil at the terminal index")
		}
	})

	t.Run("PrevSaturatesAtZero", func(t *testing.T) {
		s := &Session{}
		s.SetQuiz(testQuiz(2))

		s.Prev()
		if got := s.Snapshot().CurrentIndex; got != 0 {
			t.Errorf("Prev at index 0 should be a no-op, got %d", got)
		}
	})

	t.Run("RestartReturnsToFirstQuestion", func(t *testing.T) {
		s := &Session{}
		s.SetQuiz(testQuiz(3))

		first := s.CurrentQuestion()
		s.Next()
		s.Next()
		s.Restart()

		got := s.CurrentQuestion()
		if got == nil || first == nil || got.QuestionText != first.QuestionText {
			t.Error("Restart should return to the same question as immediately after SetQuiz")
		}
	})

	t.Run("SetQuizReplacesDocumentAndResets", func(t *testing.T) {
		s := &Session{}
		s.SetQuiz(testQuiz(3))
		s.Next()
		s.ApplyPlayback(s.BeginPlayback(), PlaybackState{IsPlaying: true, CurrentTrack: "Hello"})

		s.SetQuiz(testQuiz(1))
		snap := s.Snapshot()
		if snap.CurrentIndex != 0 {
			t.Errorf("SetQuiz should reset the index, got %d", snap.CurrentIndex)
		}
		if snap.TotalQuestion != 1 {
			t.Errorf("SetQuiz should replace the document, got %d questions", snap.TotalQuestion)
		}
		if snap.Playback.IsPlaying {
			t.Error("SetQuiz should reset observed playback state")
		}
	})

	t.Run("EmptySessionHasNoQuestion", func(t *testing.T) {
		s := &Session{}
		if s.CurrentQuestion() != nil {
			t.Error("a session without a quiz has no current question")
		}
	})
}

func TestPlaybackTokens(t *testing.T) {
	t.Run("LatestTokenWins", func(t *testing.T) {
		s := &Session{}
		s.SetQuiz(testQuiz(1))

		older := s.BeginPlayback()
		newer := s.BeginPlayback()

		if s.ApplyPlayback(older, PlaybackState{IsPlaying: true, CurrentTrack: "stale"}) {
			t.Error("a stale token must not update playback state")
		}
		if !s.ApplyPlayback(newer, PlaybackState{IsPlaying: true, CurrentTrack: "fresh"}) {
			t.Error("the latest token should update playback state")
		}
		if got := s.Playback().CurrentTrack; got != "fresh" {
			t.Errorf("expected track from the latest request, got %q", got)
		}
	})

	t.Run("StaleApplyAfterSuccess", func(t *testing.T) {
		s := &Session{}
		s.SetQuiz(testQuiz(1))

		first := s.BeginPlayback()
		if !s.ApplyPlayback(first, PlaybackState{IsPlaying: true, CurrentTrack: "one"}) {
			t.Fatal("first apply should succeed")
		}

		second := s.BeginPlayback()
		if !s.ApplyPlayback(second, PlaybackState{IsPlaying: true, CurrentTrack: "two"}) {
			t.Fatal("second apply should succeed")
		}

		if s.ApplyPlayback(first, PlaybackState{IsPlaying: false}) {
			t.Error("a completed older request must not clobber the newer state")
		}
		if got := s.Playback().CurrentTrack; got != "two" {
			t.Errorf("expected %q, got %q", "two", got)
		}
	})
}

func TestStore(t *testing.T) {
	t.Run("PerUserIsolation", func(t *testing.T) {
		st := NewStore()
		st.SetQuiz("alice", testQuiz(2))
		st.SetQuiz("bob", testQuiz(5))

		a, _ := st.Get("alice")
		b, _ := st.Get("bob")
		if a.Snapshot().TotalQuestion != 2 || b.Snapshot().TotalQuestion != 5 {
			t.Error("sessions must not cross-contaminate between users")
		}
	})

	t.Run("DeleteDiscardsSession", func(t *testing.T) {
		st := NewStore()
		st.SetQuiz("alice", testQuiz(2))
		st.Delete("alice")
		if _, ok := st.Get("alice"); ok {
			t.Error("deleted session should be gone")
		}
	})
}
