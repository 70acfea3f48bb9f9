package entity

// MenuRecord is the local ledger entry written every time a week is planned.
// A company can plan a given week only once.
type MenuRecord struct {
	ID        int    `gorm:"primaryKey"`
	CompanyID string `gorm:"not null;uniqueIndex:idx_menu_record_company_start"`
	MenuID    string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	StartDate string `gorm:"not null;uniqueIndex:idx_menu_record_company_start"`
	EndDate   string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null;index;autoCreateTime:false"`
}
