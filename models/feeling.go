package models

// Catégories du scan énergétique
const (
	CategoryGeneral       = "general"
	CategoryEmotional     = "emotional"
	CategoryPhysical      = "physical"
	CategoryMental        = "mental"
	CategoryDigestive     = "digestive"
	CategorySomatic       = "somatic"
	CategoryEnergetic     = "energetic"
	CategoryFeminineCycle = "feminine_cycle"
	CategoryHDSpecific    = "hd_specific"
)

// AllCategories fixe l'ordre de parcours des catégories
var AllCategories = []string{
	CategoryGeneral,
	CategoryEmotional,
	CategoryPhysical,
	CategoryMental,
	CategoryDigestive,
	CategorySomatic,
	CategoryEnergetic,
	CategoryFeminineCycle,
	CategoryHDSpecific,
}

// Les 9 centres Human Design
const (
	CenterHead        = "head"
	CenterAjna        = "ajna"
	CenterThroat      = "throat"
	CenterG           = "g_center"
	CenterHeart       = "heart"
	CenterSacral      = "sacral"
	CenterSolarPlexus = "solar_plexus"
	CenterSpleen      = "spleen"
	CenterRoot        = "root"
)

var AllCenters = []string{
	CenterHead,
	CenterAjna,
	CenterThroat,
	CenterG,
	CenterHeart,
	CenterSacral,
	CenterSolarPlexus,
	CenterSpleen,
	CenterRoot,
}

// Les 5 types Human Design
const (
	TypeGenerator            = "generator"
	TypeProjector            = "projector"
	TypeManifestor           = "manifestor"
	TypeManifestingGenerator = "manifesting_generator"
	TypeReflector            = "reflector"
)

var AllHDTypes = []string{
	TypeGenerator,
	TypeProjector,
	TypeManifestor,
	TypeManifestingGenerator,
	TypeReflector,
}

// IsValidCategory vérifie qu'une catégorie fait partie de l'énumération
func IsValidCategory(category string) bool {
	for _, c := range AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// IsValidHDType vérifie qu'un type HD fait partie de l'énumération
func IsValidHDType(hdType string) bool {
	for _, t := range AllHDTypes {
		if t == hdType {
			return true
		}
	}
	return false
}

// Feeling : une entrée du catalogue de ressentis.
// Chargé une fois au démarrage, jamais modifié en session.
type Feeling struct {
	ID              string   `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name            string   `gorm:"type:varchar(100);index" json:"name"`
	Category        string   `gorm:"type:varchar(30);index" json:"category"`
	IsPositive      bool     `json:"isPositive"`
	AffectedCenters []string `gorm:"type:text;serializer:json" json:"affectedCenters"`
	Description     string   `gorm:"type:text" json:"description"`
	ProbableOrigin  string   `gorm:"type:text" json:"probableOrigin"`
	MirrorPhrase    string   `gorm:"type:text" json:"mirrorPhrase"`
	Exercise        string   `gorm:"type:text" json:"exercise"`
	Mantra          string   `gorm:"type:text" json:"mantra"`
	Encouragement   string   `gorm:"type:text" json:"encouragement"`
	TypeHD          string   `gorm:"type:varchar(30)" json:"typeHd,omitempty"` // vide = universel
}

func (Feeling) TableName() string {
	return "feelings"
}

// AppliesTo indique si le ressenti est proposé à ce type HD
func (f *Feeling) AppliesTo(hdType string) bool {
	return f.TypeHD == "" || f.TypeHD == hdType
}
