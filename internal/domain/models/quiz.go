// internal/domain/models/quiz.go
package models

import "time"

// QuizHistoryFact is one attempt of a student at an exam.
type QuizHistoryFact struct {
	ID             string     `bson:"_id" json:"id"`
	StudentID      string     `bson:"studentId" json:"studentId"`
	ExamID         string     `bson:"examId" json:"examId"`
	Score          int        `bson:"score" json:"score"`
	TotalQuestions int        `bson:"totalQuestions" json:"totalQuestions"`
	HasCertificate bool       `bson:"hasCertificate,omitempty" json:"hasCertificate,omitempty"`
	CompletedAt    *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
}
