// internal/app/reporting/xref/aliasset.go
package xref

// AliasGroup names one logical field, the stored keys it may appear under
// (most preferred first), and the text shown when none is present.
type AliasGroup struct {
	Field    string
	Keys     []string
	Fallback string
}

// AliasSet is the versioned list of alias groups for one kind of record.
// Bump Version whenever a key is added or reordered.
type AliasSet struct {
	Entity  string
	Version int
	Groups  []AliasGroup
}

// Group returns the group for field. It panics on an unknown field, which
// is a programming error.
func (s AliasSet) Group(field string) AliasGroup {
	for _, g := range s.Groups {
		if g.Field == field {
			return g
		}
	}
	panic("xref: alias set " + s.Entity + " has no field " + field)
}

// Resolve returns the field's value from candidates, or its fallback.
func (s AliasSet) Resolve(field string, candidates ...map[string]any) string {
	g := s.Group(field)
	if v := ResolveString(candidates, g.Keys); v != "" {
		return v
	}
	return g.Fallback
}

// Certificate field names.
const (
	FieldSchoolName     = "schoolName"
	FieldSignerName     = "signerName"
	FieldSignerPosition = "signerPosition"
	FieldLogoURL        = "logoUrl"
	FieldSignatureURL   = "signatureUrl"
	FieldTitle          = "title"
	FieldExtraText      = "extraText"
	FieldCourseTitle    = "courseTitle"
	FieldStudentName    = "studentName"
	FieldIssuedAt       = "issuedAt"
)

// CertificateAliases lists where certificate display fields have been
// stored across the history of exam, certificate and quiz documents.
var CertificateAliases = AliasSet{
	Entity:  "certificate",
	Version: 1,
	Groups: []AliasGroup{
		{Field: FieldSchoolName, Keys: []string{"certSchoolName", "schoolName", "certSchool"}, Fallback: "ไม่ระบุสถานศึกษา"},
		{Field: FieldSignerName, Keys: []string{"certSignerName", "directorName", "signerName"}, Fallback: ".........................."},
		{Field: FieldSignerPosition, Keys: []string{"certSignerPosition", "directorPosition", "position"}, Fallback: "ผู้บริหารสถานศึกษา"},
		{Field: FieldLogoURL, Keys: []string{"certLogoUrl", "logoUrl", "logo"}},
		{Field: FieldSignatureURL, Keys: []string{"certSignUrl", "signatureUrl", "signUrl"}},
		{Field: FieldTitle, Keys: []string{"certTitle", "title"}, Fallback: "ขอมอบวุฒิบัตรฉบับนี้เพื่อแสดงว่า"},
		{Field: FieldExtraText, Keys: []string{"certExtraText", "extraText", "description"}},
		{Field: FieldCourseTitle, Keys: []string{"examTitle", "courseTitle"}, Fallback: "ไม่ระบุวิชา"},
		{Field: FieldStudentName, Keys: []string{"studentName"}, Fallback: "ไม่ระบุชื่อ"},
		{Field: FieldIssuedAt, Keys: []string{"completedAt", "issuedDate", "createdAt"}},
	},
}

// ExamOverlayAliases lists the keys an exam document uses to set
// certificate fields for every certificate issued from it. Values found
// here win over the certificate's own config.
var ExamOverlayAliases = AliasSet{
	Entity:  "exam_certificate",
	Version: 1,
	Groups: []AliasGroup{
		{Field: FieldSchoolName, Keys: []string{"certSchoolName", "schoolName"}},
		{Field: FieldSignerName, Keys: []string{"certSignerName", "directorName"}},
		{Field: FieldSignerPosition, Keys: []string{"certSignerPosition", "directorPosition"}},
		{Field: FieldLogoURL, Keys: []string{"certLogoUrl", "logoUrl"}},
		{Field: FieldSignatureURL, Keys: []string{"certSignUrl", "signatureUrl"}},
		{Field: FieldTitle, Keys: []string{"certTitle", "title"}},
		{Field: FieldExtraText, Keys: []string{"certExtraText", "extraText", "description"}},
	},
}
