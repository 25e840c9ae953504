package quizgen

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
)

// SessionSetter installs a freshly generated document as the caller's
// active quiz session.
type SessionSetter interface {
	SetQuiz(userID string, doc *QuizDocument)
}

// PreferenceRecorder increments the caller's per-artist play counters.
type PreferenceRecorder interface {
	RecordArtists(ctx context.Context, email string, names []string) error
}

// Archiver persists the generated quiz for later replay.
type Archiver interface {
	ArchiveGenerated(ctx context.Context, userID string, artists []string, doc *QuizDocument) error
}

// UserDirectory resolves the authenticated user's email for preference
// recording.
type UserDirectory interface {
	EmailByID(ctx context.Context, id string) (string, error)
}

type Handler struct {
	service   Service
	sessions  SessionSetter
	prefs     PreferenceRecorder
	archive   Archiver
	directory UserDirectory
}

func NewHandler(s Service, sessions SessionSetter, prefs PreferenceRecorder, archive Archiver, directory UserDirectory) *Handler {
	return &Handler{
		service:   s,
		sessions:  sessions,
		prefs:     prefs,
		archive:   archive,
		directory: directory,
	}
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Artists) == 0 {
		config.Error(w, http.StatusBadRequest, `missing or invalid "artists" in the request body`)
		return
	}
	for _, artist := range req.Artists {
		if strings.TrimSpace(artist) == "" {
			config.Error(w, http.StatusBadRequest, "artist names must be non-empty")
			return
		}
	}

	doc, err := h.service.Generate(r.Context(), req.Artists, req.NbrQuestions)
	if err != nil {
		log.WithError(err).Error("Quiz generation failed")
		config.Error(w, http.StatusInternalServerError, "failed to generate quiz")
		return
	}

	h.sessions.SetQuiz(claims.UserID, doc)

	// Preference recording and archiving are best effort; the generated
	// quiz is still returned when either fails.
	if email, err := h.directory.EmailByID(r.Context(), claims.UserID); err != nil {
		log.WithError(err).Warn("Could not resolve user email for preference recording")
	} else if err := h.prefs.RecordArtists(r.Context(), email, req.Artists); err != nil {
		log.WithError(err).Warn("Failed to record artist preferences")
	}
	if err := h.archive.ArchiveGenerated(r.Context(), claims.UserID, req.Artists, doc); err != nil {
		log.WithError(err).Warn("Failed to archive generated quiz")
	}

	config.JSON(w, http.StatusOK, doc)
}
