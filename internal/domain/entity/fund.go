package entity

// FundCategory is a mutual-fund category such as Equity or Debt.
type FundCategory struct {
	ID          int64
	Name        string
	RiskLevel   string
	Description string
}

// Fund is a scheme listed under a category.
type Fund struct {
	ID         int64
	CategoryID int64
	SchemeCode string
	SchemeName string
	NAV        float64
}
