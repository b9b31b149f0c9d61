package models

import "time"

// ScanRecord : un scan énergétique complété.
// Historique en append-only, jamais modifié après création.
type ScanRecord struct {
	ID               string         `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID           string         `gorm:"type:varchar(50);index:idx_scans_user_date" json:"userId"`
	Date             time.Time      `gorm:"index:idx_scans_user_date" json:"date"`
	OverallScore     int            `json:"overallScore"`
	CategoryScores   map[string]int `gorm:"type:text;serializer:json" json:"categoryScores"`
	AffectedCenter   string         `gorm:"type:varchar(30)" json:"affectedCenter"`
	SelectedFeelings []string       `gorm:"type:text;serializer:json" json:"selectedFeelings"`
	Category         string         `gorm:"type:varchar(30)" json:"category"` // catégorie dominante du scan
	CreatedAt        time.Time      `json:"createdAt"`
}

func (ScanRecord) TableName() string {
	return "scans"
}
