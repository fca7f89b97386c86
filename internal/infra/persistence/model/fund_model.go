package model

// FundCategoryModel mirrors the 'fund_categories' table.
type FundCategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement:false"`
	Name        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	RiskLevel   string `gorm:"type:varchar(50)"`
	Description string `gorm:"type:text"`

	Funds []FundModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (FundCategoryModel) TableName() string {
	return "fund_categories"
}

// FundModel mirrors the 'funds' table.
type FundModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement:false"`
	CategoryID int64   `gorm:"not null;index"`
	SchemeCode string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	SchemeName string  `gorm:"type:varchar(255);not null"`
	NAV        float64 `gorm:"column:nav"`
}

// TableName explicitly sets the table name for GORM.
func (FundModel) TableName() string {
	return "funds"
}
