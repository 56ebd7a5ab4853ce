package http

import (
	"net/http"
	"strings"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/operations"
)

func (s *Server) handleCreateTeacher(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req createTeacherRequest
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

	id, assigned, err := operations.CreateTeacher(r.Context(), s.store, claims.UserID, operations.CreateTeacherInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		ClassID:  req.ClassID,
	}, s.cfg.BcryptCost)
	if err != nil {
		writeError(w, apperr.From(err, "unable to create the teacher"))
		return
	}

	message := "teacher has been added successfully"
	if assigned {
		message = "teacher has been added and assigned successfully"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"id":      id,
	})
}

type teacherView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	ClassroomID   *int64  `json:"classroomId"`
	ClassroomName *string `json:"classroomName"`
	Students      int64   `json:"students"`
}

func (s *Server) handleGetTeachers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	teachers, err := operations.ListTeachers(r.Context(), s.store.Queries, claims.UserID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the teachers"))
		return
	}

	views := make([]teacherView, 0, len(teachers))
	for _, t := range teachers {
		views = append(views, teacherView{
			ID:            t.ID,
			Name:          t.Name,
			Email:         t.Email,
			ClassroomID:   t.ClassroomID,
			ClassroomName: t.ClassroomName,
			Students:      t.StudentCount,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "teachers got successfully",
		"teacherDetails": views,
	})
}

type userView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleGetUnassignedTeachers(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	teachers, err := operations.ListUnassignedTeachers(r.Context(), s.store.Queries, claims.UserID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the unassigned teachers"))
		return
	}

	views := make([]userView, 0, len(teachers))
	for _, t := range teachers {
		views = append(views, userView{ID: t.ID, Name: t.Name, Email: t.Email})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":  "unassigned teachers got successfully",
		"teachers": views,
	})
}

func (s *Server) handleGetTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, appErr := urlParamID(r, "userId")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	teacher, err := operations.GetTeacher(r.Context(), s.store.Queries, teacherID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the teacher"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "teacher details got successfully",
		"teacher": userView{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email},
	})
}

func (s *Server) handleUpdateTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, appErr := urlParamID(r, "userId")
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

	err := operations.UpdateTeacher(r.Context(), s.store, teacherID, operations.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}, s.cfg.BcryptCost)
	if err != nil {
		writeError(w, apperr.From(err, "unable to update the teacher"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "teacher detail updated successfully"})
}

func (s *Server) handleDeleteTeacher(w http.ResponseWriter, r *http.Request) {
	teacherID, appErr := urlParamID(r, "userId")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	if err := operations.DeleteTeacher(r.Context(), s.store, teacherID); err != nil {
		writeError(w, apperr.From(err, "unable to delete the teacher"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "teacher has been removed successfully"})
}
