package inputval

// ViewStatsParams are the view statistics query parameters.
type ViewStatsParams struct {
	Year string `json:"year" validate:"omitempty,yearfilter"`
}

// PageViewParams name the page being counted.
type PageViewParams struct {
	Page string `json:"page" validate:"required,max=100,pagecode"`
}

// ResetParams guard the counter reset.
type ResetParams struct {
	Confirm string `json:"confirm" validate:"required,eq=RESET"`
}

// FiscalYearParams select a fiscal year. Zero means the current one.
type FiscalYearParams struct {
	FiscalYear int `json:"fy" validate:"omitempty,min=1900,max=2400"`
}

// SubjectLeaveParams select one teacher's leave.
type SubjectLeaveParams struct {
	SubjectID  string `json:"subjectId" validate:"required,max=128"`
	FiscalYear int    `json:"fy" validate:"omitempty,min=1900,max=2400"`
}

// QuizParams filter the quiz matrix.
type QuizParams struct {
	TeacherID string `json:"teacher" validate:"omitempty,max=128"`
	Level     string `json:"level" validate:"omitempty,edulevel"`
}

// CertificateListParams filter the certificate history.
type CertificateListParams struct {
	Source string `json:"source" validate:"omitempty,certsource"`
	School string `json:"school" validate:"max=200"`
}

// CertificateParams select one certificate.
type CertificateParams struct {
	Source string `json:"source" validate:"required,certsource"`
	ID     string `json:"id" validate:"required,max=128"`
}
