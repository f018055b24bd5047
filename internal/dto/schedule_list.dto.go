package dto

type ScheduleListDTO struct {
	ID            uint   `json:"id"`
	TeacherID     uint   `json:"teacher_id"`
	Date          string `json:"date"`
	Day           string `json:"day"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Duration      int    `json:"duration"`
	Status        string `json:"status"`
	FormattedDate string `json:"formatted_date"`
	FormattedTime string `json:"formatted_time"`
}
