package models

import "time"

// Reminder : rappel quotidien de scan, poussé par le dispatcher interne
type Reminder struct {
	ID         string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID     string     `gorm:"type:varchar(50);index" json:"userId"`
	SendHour   int        `json:"sendHour"`
	SendMinute int        `json:"sendMinute"`
	Timezone   string     `gorm:"type:varchar(50)" json:"timezone"`
	Active     bool       `gorm:"default:true" json:"active"`
	LastSentAt *time.Time `json:"lastSentAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func (Reminder) TableName() string {
	return "reminders"
}
