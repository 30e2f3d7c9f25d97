package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/typespeed-backend/internal/domain"
	"github.com/heartmarshall/typespeed-backend/internal/service/progress"
	"github.com/heartmarshall/typespeed-backend/internal/service/user"
)

const (
	msgUserNotFound = "User not found"
	msgNoTests      = "No typing tests found for this user"
)

type userService interface {
	GetAccount(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input user.UpdateProfileInput) (*domain.User, error)
}

type progressService interface {
	Record(ctx context.Context, input progress.RecordInput) (*domain.User, error)
	BestTest(ctx context.Context, userID uuid.UUID) (*domain.TestResult, error)
	AllTests(ctx context.Context, userID uuid.UUID) ([]domain.TestResult, error)
}

// UserHandler serves account reads, profile updates and typing progress.
type UserHandler struct {
	users    userService
	progress progressService
	log      *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, progress progressService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, progress: progress, log: logger.With("handler", "users")}
}

type progressRequest struct {
	UserID        string   `json:"userId"`
	WPM           *float64 `json:"wpm"`
	CPM           *float64 `json:"cpm"`
	Accuracy      *float64 `json:"accuracy"`
	TextUsed      string   `json:"textUsed"`
	Difficulty    string   `json:"difficulty"`
	ChallengeType string   `json:"challengeType"`
	Category      string   `json:"category"`
	Errors        []string `json:"errors"`
}

type updateProfileRequest struct {
	Username  *string `json:"username"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
	Country   *string `json:"country"`
	State     *string `json:"state"`
	Pincode   *int    `json:"pincode"`
}

type userMessageResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}

// RecordProgress handles POST /api/users/progress.
func (h *UserHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req progressRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	var userID uuid.UUID
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil {
			respondError(w, r, h.log, domain.NewValidationError("userId", "must be a UUID"), "")
			return
		}
		userID = id
	}

	u, err := h.progress.Record(r.Context(), progress.RecordInput{
		UserID:        userID,
		WPM:           req.WPM,
		CPM:           req.CPM,
		Accuracy:      req.Accuracy,
		TextUsed:      req.TextUsed,
		Difficulty:    req.Difficulty,
		ChallengeType: req.ChallengeType,
		Category:      req.Category,
		Errors:        req.Errors,
	})
	if err != nil {
		respondError(w, r, h.log, err, msgUserNotFound)
		return
	}

	writeJSON(w, http.StatusOK, userMessageResponse{
		Message: "Typing test progress added successfully!",
		User:    toUserView(u),
	})
}

// Get handles GET /api/users/{userId}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r, msgUserNotFound)
	if !ok {
		return
	}

	u, err := h.users.GetAccount(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err, msgUserNotFound)
		return
	}

	writeJSON(w, http.StatusOK, toUserView(u))
}

// Update handles PUT /api/users/{userId}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r, msgUserNotFound)
	if !ok {
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err, "")
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), userID, user.UpdateProfileInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Gender:    req.Gender,
		Country:   req.Country,
		State:     req.State,
		Pincode:   req.Pincode,
	})
	if err != nil {
		respondError(w, r, h.log, err, msgUserNotFound)
		return
	}

	writeJSON(w, http.StatusOK, userMessageResponse{
		Message: "Profile updated successfully!",
		User:    toUserView(u),
	})
}

// BestTest handles GET /api/users/{userId}/bestTest.
func (h *UserHandler) BestTest(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r, msgNoTests)
	if !ok {
		return
	}

	best, err := h.progress.BestTest(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err, msgNoTests)
		return
	}

	writeJSON(w, http.StatusOK, toTestResultView(*best))
}

// AllTests handles GET /api/users/{userId}/allTests.
func (h *UserHandler) AllTests(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.pathUserID(w, r, msgNoTests)
	if !ok {
		return
	}

	history, err := h.progress.AllTests(r.Context(), userID)
	if err != nil {
		respondError(w, r, h.log, err, msgNoTests)
		return
	}

	writeJSON(w, http.StatusOK, toTestResultViews(history))
}

// pathUserID parses {userId}. A malformed id cannot name an account, so it
// answers with the endpoint's 404.
func (h *UserHandler) pathUserID(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("userId"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}
