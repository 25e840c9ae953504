package quizhistory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tunequiz/tunequiz/internal/auth"
	"github.com/tunequiz/tunequiz/internal/config"
)

type Handler struct {
	service QuizHistoryService
}

func NewHandler(s QuizHistoryService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizzes, err := h.service.ListQuizzesByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		config.Error(w, http.StatusInternalServerError, "failed to list quizzes")
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(quizID); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		config.Error(w, http.StatusInternalServerError, "failed to fetch quiz")
		return
	}
	if quiz == nil || quiz.UserID.String() != claims.UserID {
		config.Error(w, http.StatusNotFound, "quiz not found")
		return
	}

	config.JSON(w, http.StatusOK, quiz)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizID := chi.URLParam(r, "id")
	if _, err := uuid.Parse(quizID); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
		return
	}

	quiz, err := h.service.GetQuiz(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		config.Error(w, http.StatusInternalServerError, "failed to delete quiz")
		return
	}
	if quiz == nil || quiz.UserID.String() != claims.UserID {
		config.Error(w, http.StatusNotFound, "quiz not found")
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		config.Error(w, http.StatusInternalServerError, "failed to delete quiz")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
