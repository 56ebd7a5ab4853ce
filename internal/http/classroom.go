package http

import (
	"net/http"
	"strings"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/operations"
)

func (s *Server) handleCreateClassroom(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	var req createClassroomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, apperr.Validation(apperr.Field("request body is not valid JSON", "body", "")))
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if fields := req.validate(); len(fields) > 0 {
		writeError(w, apperr.Validation(fields...))
		return
	}

	sessions := make([]operations.SessionInput, len(req.DaysOfWeek))
	for i, entry := range req.DaysOfWeek {
		sessions[i] = operations.SessionInput{
			DayOfWeek: entry.DayOfWeek,
			StartTime: entry.StartTime,
			EndTime:   entry.EndTime,
		}
	}

	id, err := operations.CreateClassroom(r.Context(), s.store, claims.UserID, operations.CreateClassroomInput{
		Name:      req.Name,
		TeacherID: req.TeacherID,
		Sessions:  sessions,
	})
	if err != nil {
		writeError(w, apperr.From(err, "unable to create a classroom"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "classroom created successfully",
		"id":      id,
	})
}

func (s *Server) handleGetClassrooms(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	classrooms, err := operations.ListClassrooms(r.Context(), s.store.Queries, claims.UserID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the classrooms"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "successfully got all of the classrooms",
		"classrooms": classrooms,
	})
}

type unassignedClassroomView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleGetUnassignedClassrooms(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	rooms, err := operations.ListUnassignedClassrooms(r.Context(), s.store.Queries, claims.UserID)
	if err != nil {
		writeError(w, apperr.From(err, "unable to get the unassigned classrooms"))
		return
	}

	views := make([]unassignedClassroomView, 0, len(rooms))
	for _, room := range rooms {
		views = append(views, unassignedClassroomView{ID: room.ID, Name: room.Name})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "successfully got all of the unassigned classrooms",
		"classrooms": views,
	})
}

func (s *Server) handleDeleteClassroom(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())

	classID, appErr := urlParamID(r, "classId")
	if appErr != nil {
		writeError(w, appErr)
		return
	}

	if err := operations.DeleteClassroom(r.Context(), s.store, claims.UserID, classID); err != nil {
		writeError(w, apperr.From(err, "unable to delete the classroom"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "classroom deleted successfully"})
}
