package model

import "time"

type Role string

const (
	RolePrincipal Role = "principal"
	RoleTeacher   Role = "teacher"
	RoleStudent   Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RolePrincipal, RoleTeacher, RoleStudent:
		return true
	default:
		return false
	}
}

// IsMentor reports whether the role may manage students.
func (r Role) IsMentor() bool {
	return r == RolePrincipal || r == RoleTeacher
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	default:
		return false
	}
}

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnershipLink records which principal or teacher created which user.
type OwnershipLink struct {
	ID        int64
	UserID    int64
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Classroom struct {
	ID          int64
	Name        string
	TeacherID   *int64
	PrincipalID int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ClassroomSession struct {
	ID          int64
	ClassroomID int64
	DayOfWeek   Weekday
	StartTime   string
	EndTime     string
}

type ClassroomStudent struct {
	ID          int64
	ClassroomID int64
	AssignedBy  int64
	StudentID   *int64
}
