// internal/app/reporting/xref/certificate.go
package xref

import (
	"github.com/dalemusser/schoolreports/internal/app/system/htmlsanitize"
	"github.com/dalemusser/schoolreports/internal/domain/models"
)

// ResolveCertificate fills the display fields of a certificate.
//
// Each overlay field is read from the exam document first (exam may be
// nil), then from the certificate's certConfig, then from the record
// itself, falling back to fixed text. The student name comes from the
// record, else from the student's profile for internal certificates.
func ResolveCertificate(rec models.CertificateRecord, exam map[string]any, students map[string]models.StudentProfile) models.ResolvedCertificate {
	pick := func(field string) string {
		if exam != nil {
			if v := ResolveString([]map[string]any{exam}, ExamOverlayAliases.Group(field).Keys); v != "" {
				return v
			}
		}
		return CertificateAliases.Resolve(field, rec.CertConfig, rec.Fields)
	}

	out := models.ResolvedCertificate{
		ID:             rec.ID,
		Source:         rec.Source,
		SchoolName:     pick(FieldSchoolName),
		SignerName:     pick(FieldSignerName),
		SignerPosition: pick(FieldSignerPosition),
		LogoURL:        pick(FieldLogoURL),
		SignatureURL:   pick(FieldSignatureURL),
		Title:          htmlsanitize.StripTags(pick(FieldTitle)),
		ExtraText:      htmlsanitize.Sanitize(pick(FieldExtraText)),
		CourseTitle:    CertificateAliases.Resolve(FieldCourseTitle, rec.Fields),
		IssuedAt:       ResolveTime([]map[string]any{rec.Fields}, CertificateAliases.Group(FieldIssuedAt).Keys),
	}

	out.StudentName = ResolveString([]map[string]any{rec.Fields}, CertificateAliases.Group(FieldStudentName).Keys)
	if out.StudentName == "" && rec.Source == models.CertInternal {
		if s, ok := students[rec.StudentID]; ok {
			out.StudentName = s.DisplayName()
		}
	}
	if out.StudentName == "" {
		out.StudentName = CertificateAliases.Group(FieldStudentName).Fallback
	}
	return out
}

// CertificateFromDocument builds a CertificateRecord from a stored document.
// doc is the raw record; "certConfig" is read when it is a nested object.
func CertificateFromDocument(source models.CertificateSource, id string, doc map[string]any) models.CertificateRecord {
	rec := models.CertificateRecord{ID: id, Source: source, Fields: doc}
	if cfg, ok := doc["certConfig"].(map[string]any); ok {
		rec.CertConfig = cfg
	}
	rec.StudentID, _ = doc["studentId"].(string)
	if v, _ := doc["examId"].(string); v != "" {
		rec.ExamID = v
	} else {
		rec.ExamID, _ = doc["quizId"].(string)
	}
	return rec
}
