package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/auth"
	"github.com/sadiqhasanrupani/server/internal/config"
	"github.com/sadiqhasanrupani/server/internal/db"
	"github.com/sadiqhasanrupani/server/internal/model"
	"github.com/sadiqhasanrupani/server/internal/operations"
)

type Server struct {
	cfg   config.Config
	store *db.Store
}

func NewServer(cfg config.Config, store *db.Store) *Server {
	return &Server{cfg: cfg, store: store}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(withRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(withCORS(s.cfg.CORSOrigin))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.handleRegister)
			r.Post("/login", s.handleLogin)
		})

		r.Route("/verify", func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Post("/token", s.handleVerifyToken)
		})

		r.Route("/classroom", func(r chi.Router) {
			r.Use(s.authMiddleware, s.requirePrincipal)
			r.Post("/create", s.handleCreateClassroom)
			r.Get("/get-all", s.handleGetClassrooms)
			r.Get("/get-all-unassigned", s.handleGetUnassignedClassrooms)
			r.Delete("/delete/{classId}", s.handleDeleteClassroom)
		})

		r.Route("/teacher", func(r chi.Router) {
			r.Use(s.authMiddleware, s.requirePrincipal)
			r.Post("/create", s.handleCreateTeacher)
			r.Get("/get-all", s.handleGetTeachers)
			r.Get("/get-all-unassigned", s.handleGetUnassignedTeachers)
			r.Get("/get/{userId}", s.handleGetTeacher)
			r.Put("/update/{userId}", s.handleUpdateTeacher)
			r.Delete("/delete/{userId}", s.handleDeleteTeacher)
		})

		r.Route("/student", func(r chi.Router) {
			r.Use(s.authMiddleware, s.requireMentor)
			r.Post("/create", s.handleCreateStudent)
			r.Get("/get-all", s.handleGetStudents)
			r.Get("/get/{userId}", s.handleGetStudent)
			r.Put("/update/{userId}", s.handleUpdateStudent)
			r.Delete("/delete/{userId}", s.handleDeleteStudent)
		})
	})

	return r
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, apperr.Validation(apperr.Field("request body is not valid JSON", "body", "")))
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if fields := req.validate(); len(fields) > 0 {
		writeError(w, apperr.Validation(fields...))
		return
	}

	user, err := operations.Register(r.Context(), s.store, operations.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, s.cfg.BcryptCost)
	if err != nil {
		writeError(w, apperr.From(err, "unable to register the user"))
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		writeError(w, apperr.From(err, "unable to issue the token"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "registration done successfully",
		"token":   token,
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, apperr.Validation(apperr.Field("request body is not valid JSON", "body", "")))
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if fields := req.validate(); len(fields) > 0 {
		writeError(w, apperr.Validation(fields...))
		return
	}

	user, err := operations.Login(r.Context(), s.store.Queries, req.Email, req.Password)
	if err != nil {
		writeError(w, apperr.From(err, "unable to log the user in"))
		return
	}

	token, err := s.issueToken(user)
	if err != nil {
		writeError(w, apperr.From(err, "unable to issue the token"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "login done successfully",
		"token":   token,
	})
}

func (s *Server) handleVerifyToken(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "token is verified"})
}

func (s *Server) issueToken(user model.User) (string, error) {
	return auth.NewAccessToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.AccessTokenTTL, auth.Claims{
		UserID: user.ID,
		Role:   user.Role,
		Name:   user.Name,
	})
}

// urlParamID parses a numeric path parameter, reporting a field-level
// validation error on garbage input.
func urlParamID(r *http.Request, name string) (int64, *apperr.Error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(apperr.FieldError{
			Msg:      name + " is not a valid id",
			Path:     name,
			Type:     "field",
			Value:    raw,
			Location: "params",
		})
	}
	return id, nil
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(r.Body)
	return decoder.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Message    string             `json:"message"`
	ErrorStack []apperr.FieldError `json:"errorStack,omitempty"`
}

// writeError is the single boundary translator from the error taxonomy to
// HTTP statuses and the uniform JSON error body.
func writeError(w http.ResponseWriter, err *apperr.Error) {
	writeJSON(w, err.Status(), errorResponse{
		Message:    err.Message,
		ErrorStack: err.Fields,
	})
}
