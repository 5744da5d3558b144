package dashboard_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/schoolreports/internal/app/features/dashboard"
	uierrors "github.com/dalemusser/schoolreports/internal/app/features/errors"
	"github.com/dalemusser/schoolreports/internal/app/reporting/format"
	"github.com/dalemusser/schoolreports/internal/app/store/queries/reportqueries"
	"github.com/dalemusser/schoolreports/internal/app/store/recordstore"
	"github.com/dalemusser/schoolreports/internal/app/system/snapshot"
	"github.com/dalemusser/schoolreports/internal/domain/models"
	"github.com/dalemusser/schoolreports/internal/testutil"
	"go.uber.org/zap"
)

type fakeSource struct {
	school  reportqueries.School
	state   snapshot.State
	err     error
	updated time.Time
}

func (f fakeSource) Current() (reportqueries.School, snapshot.State, error) {
	return f.school, f.state, f.err
}

func (f fakeSource) Updated() time.Time { return f.updated }

type overview struct {
	Teachers     int `json:"teachers"`
	Staff        int `json:"staff"`
	Students     struct {
		Primary int `json:"primary"`
		Total   int `json:"total"`
	} `json:"students"`
	Unclassified int  `json:"unclassifiedStudents"`
	FiscalYear   int  `json:"fiscalYear"`
	LeaveDays    int  `json:"leaveDays"`
	Stale        bool `json:"stale"`
}

func serve(t *testing.T, src dashboard.Source) (int, string, overview) {
	t.Helper()
	logger := zap.NewNop()
	h := dashboard.NewHandler(src, format.NewEnglish(time.UTC), uierrors.NewErrorLogger(logger), logger)
	h.Now = func() time.Time { return time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC) }

	rec := httptest.NewRecorder()
	dashboard.Routes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))

	var env struct {
		Status string   `json:"status"`
		Data   overview `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, env.Status, env.Data
}

func sampleSchool() reportqueries.School {
	tid := "t1"
	ghost := "ghost"
	d := testutil.Date
	return reportqueries.School{
		Teachers: []models.TeacherProfile{{ID: "t1", FullName: "Anan", Role: models.RoleTeacher}},
		Staff:    []models.TeacherProfile{{ID: "d1", FullName: "Prasert", Role: models.RoleDirector}},
		Students: []models.StudentProfile{
			{ID: "s1", EducationLevel: models.LevelPrimary, TeacherID: &tid},
			{ID: "s2", EducationLevel: models.LevelUpperSecondary, TeacherID: &tid},
			{ID: "s3", EducationLevel: models.LevelPrimary, TeacherID: &ghost},
		},
		Leave: []models.LeaveRecord{
			{ID: "l1", SubjectID: "t1", LeaveType: models.LeaveSick, StartDate: d(2024, 11, 4), EndDate: d(2024, 11, 5), DayCount: 2},
			{ID: "l2", SubjectID: "t1", LeaveType: models.LeaveSick, StartDate: d(2024, 9, 2), EndDate: d(2024, 9, 2), DayCount: 1},
		},
		LoadedAt: time.Now(),
	}
}

func TestServeLive_States(t *testing.T) {
	tests := []struct {
		name       string
		src        fakeSource
		wantCode   int
		wantStatus string
	}{
		{"loading", fakeSource{state: snapshot.Loading}, http.StatusAccepted, uierrors.StatusLoading},
		{"failed without data", fakeSource{state: snapshot.Failed, err: fmt.Errorf("load: %w", context.DeadlineExceeded)}, http.StatusServiceUnavailable, uierrors.StatusError},
		{"empty school", fakeSource{state: snapshot.Ready, school: reportqueries.School{LoadedAt: time.Now()}}, http.StatusOK, uierrors.StatusEmpty},
		{"ready", fakeSource{state: snapshot.Ready, school: sampleSchool()}, http.StatusOK, uierrors.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, status, _ := serve(t, tt.src)
			if code != tt.wantCode || status != tt.wantStatus {
				t.Errorf("got %d/%s, want %d/%s", code, status, tt.wantCode, tt.wantStatus)
			}
		})
	}
}

func TestServeLive_Overview(t *testing.T) {
	_, _, o := serve(t, fakeSource{state: snapshot.Ready, school: sampleSchool()})

	if o.Teachers != 1 || o.Staff != 1 {
		t.Errorf("teachers/staff = %d/%d", o.Teachers, o.Staff)
	}
	if o.Students.Total != 3 || o.Students.Primary != 2 || o.Unclassified != 1 {
		t.Errorf("students = %+v unclassified = %d", o.Students, o.Unclassified)
	}
	// Only the November record is inside fiscal 2025.
	if o.FiscalYear != 2025 || o.LeaveDays != 2 {
		t.Errorf("fiscal year %d leave days %d", o.FiscalYear, o.LeaveDays)
	}
	if o.Stale {
		t.Error("ready snapshot reported stale")
	}
}

func TestServeLive_FailedKeepsLastGood(t *testing.T) {
	src := fakeSource{state: snapshot.Failed, err: fmt.Errorf("load: %w", context.DeadlineExceeded), school: sampleSchool()}
	code, status, o := serve(t, src)
	if code != http.StatusOK || status != uierrors.StatusOK {
		t.Fatalf("got %d/%s", code, status)
	}
	if !o.Stale || o.Teachers != 1 {
		t.Errorf("overview = %+v", o)
	}
}

func TestServeLive_WithWatcher(t *testing.T) {
	mem := recordstore.NewMemory()
	fx := testutil.NewFixtures(t, mem)
	fx.Teacher("t1", "Anan")
	fx.Student("s1", "Nida", models.LevelPrimary, "t1")

	logger := zap.NewNop()
	q := reportqueries.New(mem, logger)
	live := snapshot.Watch(context.Background(), "school", time.Hour, q.LoadSchool, logger)
	defer live.Stop()

	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, state, _ := live.Current(); state != snapshot.Loading {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("snapshot never loaded")
		}
		time.Sleep(10 * time.Millisecond)
	}

	code, status, o := serve(t, live)
	if code != http.StatusOK || status != uierrors.StatusOK {
		t.Fatalf("got %d/%s", code, status)
	}
	if o.Teachers != 1 || o.Students.Total != 1 {
		t.Errorf("overview = %+v", o)
	}
}
