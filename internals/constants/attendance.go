package constants

// Attendance is the three-valued attendance mark on a daily record.
// Empty string means "not applicable / not recorded". The stored values are
// the exact strings the submission form sends.
type Attendance string

const (
	AttendanceNone   Attendance = ""
	AttendanceOnSite Attendance = "현장참석"
	AttendanceOnline Attendance = "온라인"
)

// Present reports whether the field holds any attendance at all
// (on-site and online both count).
func (a Attendance) Present() bool {
	return a != AttendanceNone
}

func (a Attendance) IsOnline() bool {
	return a == AttendanceOnline
}

func (a Attendance) IsOnSite() bool {
	return a == AttendanceOnSite
}

// ParseAttendance validates a raw form value.
func ParseAttendance(s string) (Attendance, bool) {
	switch Attendance(s) {
	case AttendanceNone, AttendanceOnSite, AttendanceOnline:
		return Attendance(s), true
	}
	return AttendanceNone, false
}
