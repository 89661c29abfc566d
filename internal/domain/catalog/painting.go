package catalog

// Painting is the single catalog entity. IDNumber is the public
// identifier and default sort key; it is assigned by the store on
// insert and never changes afterwards, so it doubles as the primary
// key. Title and Filename are unique across the catalog, enforced by
// the store's duplicate check rather than a DB constraint.
type Painting struct {
	IDNumber    int    `gorm:"column:idnumber;primaryKey;autoIncrement:false" json:"idnumber"`
	Title       string `gorm:"not null;index" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Filename    string `gorm:"not null;index" json:"filename"`
	Size        string `gorm:"not null;index" json:"size"`
	Price       int    `gorm:"not null;index" json:"price"`
	Series      string `gorm:"index" json:"series"`
	Status      string `gorm:"not null" json:"status"`
}

// Allowed values for the enumerated fields. Series may also be empty.
var (
	Sizes        = []string{"10x14", "12x28", "17x28", "23x31", "20x24"}
	SeriesLabels = []string{"Classic", "Illustrative", "Abstract"}
	Statuses     = []string{"Available", "Sold", "Reserved"}
)
