package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/auth"
	"github.com/sadiqhasanrupani/server/internal/model"
)

type claimsKey struct{}

func claimsFromContext(ctx context.Context) *auth.Claims {
	value := ctx.Value(claimsKey{})
	claims, _ := value.(*auth.Claims)
	return claims
}

// authMiddleware verifies the bearer token and attaches the identity claims
// to the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, apperr.New(apperr.Unauthenticated, "not authenticated"))
			return
		}

		claims, err := auth.ParseToken(s.cfg.JWTSecret, s.cfg.JWTIssuer, token)
		if err != nil {
			writeError(w, apperr.New(apperr.Unauthenticated, "not authenticated"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole gates a route on the caller's persisted role, re-read from the
// users table rather than trusted from the token, so a role change takes
// effect before the token expires.
func (s *Server) requireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromContext(r.Context())
			if claims == nil {
				writeError(w, apperr.New(apperr.Unauthenticated, "not authenticated"))
				return
			}

			role, err := s.store.Queries.GetUserRole(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					writeError(w, apperr.New(apperr.Unauthenticated, "not authenticated"))
					return
				}
				writeError(w, apperr.From(err, "unable to check the caller's role"))
				return
			}

			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeError(w, apperr.New(apperr.Forbidden, "insufficient permissions"))
		})
	}
}

func (s *Server) requirePrincipal(next http.Handler) http.Handler {
	return s.requireRole(model.RolePrincipal)(next)
}

// requireMentor admits teachers and principals, the roles allowed to manage
// students.
func (s *Server) requireMentor(next http.Handler) http.Handler {
	return s.requireRole(model.RolePrincipal, model.RoleTeacher)(next)
}

const requestIDHeader = "X-Request-Id"

// withRequestID propagates an incoming request id or generates one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}

func withCORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
