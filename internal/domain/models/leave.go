// internal/domain/models/leave.go
package models

import "time"

// Leave types recognised by the personnel office. Stored values are the
// Thai labels; order is the order reports print them in.
const (
	LeaveSick              = "การลาป่วย"
	LeaveMaternity         = "การลาคลอดบุตร"
	LeavePaternity         = "การลาไปช่วยเหลือภริยาที่คลอดบุตร"
	LeavePersonal          = "การลากิจส่วนตัว"
	LeaveVacation          = "การลาพักผ่อน"
	LeaveOrdination        = "การลาอุปสมบทหรือการไปประกอบพิธีฮัจย์"
	LeaveMilitary          = "การลาเข้ารับการตรวจเลือกหรือเข้ารับการเตรียมพล"
	LeaveStudy             = "การลาไปศึกษา ฝึกอบรม ปฏิบัติการวิจัย หรือดูงาน"
	LeaveInternationalOrg  = "การลาไปปฏิบัติงานในองค์การระหว่างประเทศ"
	LeaveFollowSpouse      = "การลาติดตามคู่สมรส"
	LeaveOccupationalRehab = "การลาไปฟื้นฟูสมรรถภาพด้านอาชีพ"
)

// LeaveTypes is the fixed, ordered set of leave categories.
var LeaveTypes = []string{
	LeaveSick,
	LeaveMaternity,
	LeavePaternity,
	LeavePersonal,
	LeaveVacation,
	LeaveOrdination,
	LeaveMilitary,
	LeaveStudy,
	LeaveInternationalOrg,
	LeaveFollowSpouse,
	LeaveOccupationalRehab,
}

// IsLeaveType reports whether s is one of LeaveTypes.
func IsLeaveType(s string) bool {
	for _, t := range LeaveTypes {
		if t == s {
			return true
		}
	}
	return false
}

// LeaveRecord is one teacher leave entry.
// DayCount is the inclusive calendar day count captured when the record
// was saved.
type LeaveRecord struct {
	ID          string    `bson:"_id" json:"id"`
	SubjectID   string    `bson:"teacherId" json:"subjectId"`
	SubjectName string    `bson:"teacherName,omitempty" json:"subjectName,omitempty"`
	LeaveType   string    `bson:"leaveType" json:"leaveType"`
	StartDate   time.Time `bson:"startDate" json:"startDate"`
	EndDate     time.Time `bson:"endDate" json:"endDate"`
	DayCount    int       `bson:"leaveDays" json:"dayCount"`
	Reason      string    `bson:"reason,omitempty" json:"reason,omitempty"`
}
