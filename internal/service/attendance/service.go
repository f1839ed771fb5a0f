package attendance

import (
	"github.com/techmire/payroll-backend-go/internal/domain/attendance"
)

// AttendanceServiceImpl is stateless; every method is a pure function of its
// arguments.
type AttendanceServiceImpl struct{}

func NewAttendanceService() attendance.AttendanceService {
	return &AttendanceServiceImpl{}
}
