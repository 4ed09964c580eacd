package specification

import "gorm.io/gorm"

// ByCompanyCode filters assessment rows by company code.
type ByCompanyCode struct {
	CompanyCode string
}

func (s ByCompanyCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("company_code = ?", s.CompanyCode)
}
