package http

import (
	"net/http"
	"strings"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/operations"
)

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req createStudentRequest
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

	id, err := operations.CreateStudent(r.Context(), s.store, claims.UserID, operations.CreateStudentInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, s.cfg.BcryptCost)
	if err != nil {
		writeError(w, apperr.From(err, "unable to add the student"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "student has been added successfully",
		"id":      id,
	})
}

func (s *Server) handleGetStudents(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	students, err := operations.ListStudents(r.Context(), s.store.Queries, claims.UserID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the students"))
		return
	}

	views := make([]userView, 0, len(students))
	for _, student := range students {
		views = append(views, userView{ID: student.ID, Name: student.Name, Email: student.Email})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "got the student details",
		"users":   views,
	})
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	studentID, appErr := urlParamID(r, "userId")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	student, err := operations.GetStudent(r.Context(), s.store.Queries, studentID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the student"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "student details got successfully",
		"student": userView{ID: student.ID, Name: student.Name, Email: student.Email},
	})
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	studentID, appErr := urlParamID(r, "userId")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	var req updateUserRequest
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

	err := operations.UpdateStudent(r.Context(), s.store, studentID, operations.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, s.cfg.BcryptCost)
	if err != nil {
		writeError(w, apperr.From(err, "unable to update the student"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "student detail updated successfully"})
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	studentID, appErr := urlParamID(r, "userId")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	if err := operations.DeleteStudent(r.Context(), s.store, studentID); err != nil {
		writeError(w, apperr.From(err, "unable to delete the student"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "student has been removed successfully"})
}
