package dto

type CreateAppointmentRequest struct {
	Date      string `json:"date" binding:"required,isodate"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
	Notes     string `json:"notes" binding:"max=500"`
}

type RescheduleAppointmentRequest struct {
	Date      string `json:"date" binding:"required,isodate"`
	StartTime string `json:"startTime" binding:"required,hhmm"`
}
