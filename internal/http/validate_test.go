package http

import (
	"strings"
	"testing"

	"github.com/sadiqhasanrupani/server/internal/apperr"
)

func TestRegisterRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  registerRequest
		want []string
	}{
		{
			name: "valid",
			req:  registerRequest{Name: "Amina", Email: "amina@example.com", Password: "secret12", Role: "principal"},
		},
		{
			name: "empty body",
			req:  registerRequest{},
			want: []string{"name", "email", "password", "role"},
		},
		{
			name: "bad email",
			req:  registerRequest{Name: "Amina", Email: "not-an-email", Password: "secret12", Role: "teacher"},
			want: []string{"email"},
		},
		{
			name: "short password",
			req:  registerRequest{Name: "Amina", Email: "amina@example.com", Password: "abc", Role: "student"},
			want: []string{"password"},
		},
		{
			name: "unknown role",
			req:  registerRequest{Name: "Amina", Email: "amina@example.com", Password: "secret12", Role: "janitor"},
			want: []string{"role"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := tc.req.validate()
			assertFieldPaths(t, fields, tc.want)
		})
	}
}

func TestCreateClassroomRequestValidate(t *testing.T) {
	teacherID := int64(7)

	cases := []struct {
		name    string
		req     createClassroomRequest
		wantMsg string
	}{
		{
			name: "valid batch",
			req: createClassroomRequest{
				Name:      "Grade 6A",
				TeacherID: &teacherID,
				DaysOfWeek: []sessionEntry{
					{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:30:00"},
					{DayOfWeek: "wednesday", StartTime: "11:00:00", EndTime: "12:00:00"},
				},
			},
		},
		{
			name:    "missing name",
			req:     createClassroomRequest{DaysOfWeek: []sessionEntry{{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:00:00"}}},
			wantMsg: "classroom name is required",
		},
		{
			name:    "no sessions",
			req:     createClassroomRequest{Name: "Grade 6A"},
			wantMsg: "days of week are required",
		},
		{
			name: "invalid day",
			req: createClassroomRequest{
				Name:       "Grade 6A",
				DaysOfWeek: []sessionEntry{{DayOfWeek: "funday", StartTime: "09:00:00", EndTime: "10:00:00"}},
			},
			wantMsg: "day of week is not valid",
		},
		{
			name: "bad start time format",
			req: createClassroomRequest{
				Name:       "Grade 6A",
				DaysOfWeek: []sessionEntry{{DayOfWeek: "monday", StartTime: "9am", EndTime: "10:00:00"}},
			},
			wantMsg: "invalid start time format",
		},
		{
			name: "start after end",
			req: createClassroomRequest{
				Name:       "Grade 6A",
				DaysOfWeek: []sessionEntry{{DayOfWeek: "monday", StartTime: "11:00:00", EndTime: "10:00:00"}},
			},
			wantMsg: "start time must be earlier than end time",
		},
		{
			name: "start equals end",
			req: createClassroomRequest{
				Name:       "Grade 6A",
				DaysOfWeek: []sessionEntry{{DayOfWeek: "monday", StartTime: "10:00:00", EndTime: "10:00:00"}},
			},
			wantMsg: "start time must be earlier than end time",
		},
		{
			name: "duplicate time range across days",
			req: createClassroomRequest{
				Name: "Grade 6A",
				DaysOfWeek: []sessionEntry{
					{DayOfWeek: "monday", StartTime: "09:00:00", EndTime: "10:00:00"},
					{DayOfWeek: "friday", StartTime: "09:00:00", EndTime: "10:00:00"},
				},
			},
			wantMsg: "start and end time cannot repeat",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := tc.req.validate()
			if tc.wantMsg == "" {
				if len(fields) != 0 {
					t.Fatalf("expected no field errors, got %+v", fields)
				}
				return
			}
			if !hasFieldMsg(fields, tc.wantMsg) {
				t.Fatalf("expected a field error containing %q, got %+v", tc.wantMsg, fields)
			}
		})
	}
}

func TestUpdateUserRequestAllowsEmptyPassword(t *testing.T) {
	req := updateUserRequest{Name: "Amina", Email: "amina@example.com"}
	if fields := req.validate(); len(fields) != 0 {
		t.Fatalf("expected no field errors, got %+v", fields)
	}

	req.Password = "abc"
	fields := req.validate()
	assertFieldPaths(t, fields, []string{"password"})
}

func assertFieldPaths(t *testing.T, fields []apperr.FieldError, want []string) {
	t.Helper()
	if len(fields) != len(want) {
		t.Fatalf("expected %d field errors, got %+v", len(want), fields)
	}
	for _, path := range want {
		found := false
		for _, field := range fields {
			if field.Path == path {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a field error for %q, got %+v", path, fields)
		}
	}
}

func hasFieldMsg(fields []apperr.FieldError, fragment string) bool {
	for _, field := range fields {
		if strings.Contains(field.Msg, fragment) {
			return true
		}
	}
	return false
}
