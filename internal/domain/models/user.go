// internal/domain/models/user.go
package models

import "strings"

// Roles stored on user documents.
const (
	RoleTeacher  = "teacher"
	RoleStudent  = "student"
	RoleAdmin    = "admin"
	RoleDirector = "director"
)

// Education levels stored on student and course documents.
const (
	LevelPrimary        = "ประถม"
	LevelLowerSecondary = "มัธยมต้น"
	LevelUpperSecondary = "มัธยมปลาย"
)

// EducationLevels lists the three classified levels in report order.
var EducationLevels = []string{LevelPrimary, LevelLowerSecondary, LevelUpperSecondary}

// NormalizeLevel trims whitespace so that values typed into bulk imports
// compare equal to the canonical labels. Unknown values are returned
// trimmed and unchanged.
func NormalizeLevel(s string) string {
	return strings.TrimSpace(s)
}

// StudentProfile is a user document with role "student".
type StudentProfile struct {
	ID             string  `bson:"_id" json:"id"`
	FullName       string  `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email          string  `bson:"email,omitempty" json:"email,omitempty"`
	EducationLevel string  `bson:"educationLevel,omitempty" json:"educationLevel,omitempty"`
	TeacherID      *string `bson:"teacherId,omitempty" json:"teacherId,omitempty"`
}

// DisplayName is the full name, or the email when no name was recorded.
func (s StudentProfile) DisplayName() string {
	if strings.TrimSpace(s.FullName) != "" {
		return s.FullName
	}
	return s.Email
}

// TeacherProfile is a staff user document (teacher, admin or director).
type TeacherProfile struct {
	ID       string `bson:"_id" json:"id"`
	FullName string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Email    string `bson:"email,omitempty" json:"email,omitempty"`
	Role     string `bson:"role" json:"role"`
}

// DisplayName is the full name, or the email when no name was recorded.
func (t TeacherProfile) DisplayName() string {
	if strings.TrimSpace(t.FullName) != "" {
		return t.FullName
	}
	return t.Email
}
