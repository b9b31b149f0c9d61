package models

// Tranches de score utilisées comme clé de recherche des guidances
const (
	ScoreRangeLow    = "low"    // 0-39
	ScoreRangeMedium = "medium" // 40-69
	ScoreRangeHigh   = "high"   // 70-100
)

// GuidanceTemplate : guidance de base stockée en table,
// recherchée par (type HD, tranche de score, centre)
type GuidanceTemplate struct {
	ID                  string `gorm:"type:varchar(50);primaryKey" json:"id"`
	HDType              string `gorm:"type:varchar(30);index:idx_guidance_key,unique" json:"hdType"`
	ScoreRange          string `gorm:"type:varchar(10);index:idx_guidance_key,unique" json:"scoreRange"`
	Center              string `gorm:"type:varchar(30);index:idx_guidance_key,unique" json:"center"`
	GuidanceText        string `gorm:"type:text" json:"guidanceText"`
	MantraInhale        string `gorm:"type:varchar(255)" json:"mantraInhale"`
	MantraExhale        string `gorm:"type:varchar(255)" json:"mantraExhale"`
	RealignmentExercise string `gorm:"type:text" json:"realignmentExercise"`
}

func (GuidanceTemplate) TableName() string {
	return "guidance_templates"
}
