package quizsession

import (
	"sync"

	"github.com/tunequiz/tunequiz/internal/quizgen"
)

// Store keeps one Session per user. Sessions are created on demand and
// dropped explicitly; nothing here is shared across users.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Get(userID string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[userID]
	return s, ok
}

func (st *Store) getOrCreate(userID string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[userID]; ok {
		return s
	}
	s := &Session{}
	st.sessions[userID] = s
	return s
}

// SetQuiz installs doc as userID's active quiz, creating the session when
// needed. Satisfies quizgen.SessionSetter.
func (st *Store) SetQuiz(userID string, doc *quizgen.QuizDocument) {
	st.getOrCreate(userID).SetQuiz(doc)
}

func (st *Store) Delete(userID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, userID)
}
