package dto

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Duration    int     `json:"duration"`
	Status      string  `json:"status"`
	StudentName string  `json:"student_name"`
	TeacherName string  `json:"teacher_name"`
	MeetingLink *string `json:"meeting_link"`
	Notes       string  `json:"notes"`
}

type CalendarEventDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Start       string  `json:"start"`
	End         string  `json:"end"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	StudentName string  `json:"student_name"`
	TeacherName string  `json:"teacher_name"`
	MeetingLink *string `json:"meeting_link"`
}
