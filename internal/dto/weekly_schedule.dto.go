package dto

// TimeBlock é um intervalo "HH:MM" a "HH:MM" enviado pelo painel do profissional
type TimeBlock struct {
	StartTime string `json:"startTime" binding:"required,hhmm"`
	EndTime   string `json:"endTime" binding:"required,hhmm"`
}

// WeeklyDaySchedule agrupa os blocos de um dia da semana (0 = domingo).
// Dias com isAvailable=false não geram blocos.
type WeeklyDaySchedule struct {
	DayOfWeek   int         `json:"dayOfWeek" binding:"min=0,max=6"`
	IsAvailable bool        `json:"isAvailable"`
	Blocks      []TimeBlock `json:"blocks" binding:"dive"`
}
