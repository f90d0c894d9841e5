package dto

// CreateExceptionRequest: com isAvailable=false os horários são ignorados
type CreateExceptionRequest struct {
	Date        string  `json:"date" binding:"required,isodate"`
	IsAvailable bool    `json:"isAvailable"`
	StartTime   *string `json:"startTime" binding:"omitempty,hhmm"`
	EndTime     *string `json:"endTime" binding:"omitempty,hhmm"`
}
