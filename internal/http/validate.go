package http

import (
	"net/mail"
	"time"

	"github.com/sadiqhasanrupani/server/internal/apperr"
	"github.com/sadiqhasanrupani/server/internal/model"
)

const minPasswordLength = 6

type sessionEntry struct {
	DayOfWeek model.Weekday `json:"dayOfWeek"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
}

type registerRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

func (req registerRequest) validate() []apperr.FieldError {
	var fields []apperr.FieldError
	fields = appendNameField(fields, req.Name)
	fields = appendEmailField(fields, req.Email)
	fields = appendPasswordField(fields, req.Password, true)
	if !req.Role.Valid() {
		fields = append(fields, apperr.Field("role value is not valid", "role", string(req.Role)))
	}
	return fields
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req loginRequest) validate() []apperr.FieldError {
	var fields []apperr.FieldError
	fields = appendEmailField(fields, req.Email)
	fields = appendPasswordField(fields, req.Password, true)
	return fields
}

type createClassroomRequest struct {
	Name       string         `json:"name"`
	TeacherID  *int64         `json:"teacherId"`
	DaysOfWeek []sessionEntry `json:"daysOfWeek"`
}

func (req createClassroomRequest) validate() []apperr.FieldError {
	var fields []apperr.FieldError
	if req.Name == "" {
		fields = append(fields, apperr.Field("classroom name is required", "name", ""))
	}
	if len(req.DaysOfWeek) == 0 {
		fields = append(fields, apperr.Field("days of week are required", "daysOfWeek", ""))
		return fields
	}

	// No two sessions in one batch may share the same time range, even on
	// different days.
	seen := make(map[string]model.Weekday, len(req.DaysOfWeek))
	for _, session := range req.DaysOfWeek {
		if !session.DayOfWeek.Valid() {
			fields = append(fields, apperr.Field("day of week is not valid", "daysOfWeek", string(session.DayOfWeek)))
			continue
		}

		start, err := time.Parse("15:04:05", session.StartTime)
		if err != nil {
			fields = append(fields, apperr.Field(
				"invalid start time format for "+string(session.DayOfWeek)+", expected HH:MM:SS",
				"daysOfWeek", session.StartTime))
			continue
		}
		end, err := time.Parse("15:04:05", session.EndTime)
		if err != nil {
			fields = append(fields, apperr.Field(
				"invalid end time format for "+string(session.DayOfWeek)+", expected HH:MM:SS",
				"daysOfWeek", session.EndTime))
			continue
		}
		if !start.Before(end) {
			fields = append(fields, apperr.Field(
				"start time must be earlier than end time for "+string(session.DayOfWeek),
				"daysOfWeek", session.StartTime))
			continue
		}

		key := session.StartTime + "-" + session.EndTime
		if other, ok := seen[key]; ok {
			fields = append(fields, apperr.Field(
				"start and end time cannot repeat for "+string(session.DayOfWeek)+" and "+string(other),
				"daysOfWeek", key))
			continue
		}
		seen[key] = session.DayOfWeek
	}
	return fields
}

type createTeacherRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	ClassID  *int64 `json:"classId"`
}

func (req createTeacherRequest) validate() []apperr.FieldError {
	var fields []apperr.FieldError
	fields = appendNameField(fields, req.Name)
	fields = appendEmailField(fields, req.Email)
	fields = appendPasswordField(fields, req.Password, true)
	return fields
}

type createStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req createStudentRequest) validate() []apperr.FieldError {
	var fields []apperr.FieldError
	fields = appendNameField(fields, req.Name)
	fields = appendEmailField(fields, req.Email)
	fields = appendPasswordField(fields, req.Password, true)
	return fields
}

type updateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req updateUserRequest) validate() []apperr.FieldError {
	var fields []apperr.FieldError
	fields = appendNameField(fields, req.Name)
	fields = appendEmailField(fields, req.Email)
	fields = appendPasswordField(fields, req.Password, false)
	return fields
}

func appendNameField(fields []apperr.FieldError, name string) []apperr.FieldError {
	if name == "" {
		fields = append(fields, apperr.Field("name is required", "name", ""))
	}
	return fields
}

func appendEmailField(fields []apperr.FieldError, email string) []apperr.FieldError {
	if email == "" {
		return append(fields, apperr.Field("email is required", "email", ""))
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fields = append(fields, apperr.Field("email is invalid", "email", email))
	}
	return fields
}

func appendPasswordField(fields []apperr.FieldError, password string, required bool) []apperr.FieldError {
	if password == "" {
		if required {
			fields = append(fields, apperr.Field("password is empty", "password", ""))
		}
		return fields
	}
	if len(password) < minPasswordLength {
		fields = append(fields, apperr.Field("password should contain at least 6 characters", "password", ""))
	}
	return fields
}
