package entity

// OrganizationInfo describes the reporting organization. Revenue and employee
// count drive the regulatory group; the rest feeds the document's detail
// sections and intensity metrics.
type OrganizationInfo struct {
	CompanyName   string  `json:"company_name,omitempty" yaml:"company_name" toml:"company_name"`
	AnnualRevenue float64 `json:"annual_revenue,omitempty" yaml:"annual_revenue" toml:"annual_revenue"`
	EmployeeCount float64 `json:"employee_count,omitempty" yaml:"employee_count" toml:"employee_count"`
	FacilityCount float64 `json:"facility_count,omitempty" yaml:"facility_count" toml:"facility_count"`
	FleetSize     float64 `json:"fleet_size,omitempty" yaml:"fleet_size" toml:"fleet_size"`
	IsListed      bool    `json:"is_listed,omitempty" yaml:"is_listed" toml:"is_listed"`
	IndustryType  string  `json:"industry_type,omitempty" yaml:"industry_type" toml:"industry_type"`
	Location      string  `json:"location,omitempty" yaml:"location" toml:"location"`
	ReportingYear int     `json:"reporting_year,omitempty" yaml:"reporting_year" toml:"reporting_year"`
	BaselineYear  int     `json:"baseline_year,omitempty" yaml:"baseline_year" toml:"baseline_year"`
}

// UserInfo identifies the person preparing the report. Only used to default
// the preparer and contact fields; may be entirely absent.
type UserInfo struct {
	FirstName string `json:"first_name,omitempty" yaml:"first_name" toml:"first_name"`
	LastName  string `json:"last_name,omitempty" yaml:"last_name" toml:"last_name"`
	Name      string `json:"name,omitempty" yaml:"name" toml:"name"`
	Email     string `json:"email,omitempty" yaml:"email" toml:"email"`
	Title     string `json:"title,omitempty" yaml:"title" toml:"title"`
}

// FullName resolves the preparer display name from whichever fields are set.
func (u UserInfo) FullName() string {
	if u.FirstName != "" || u.LastName != "" {
		if u.FirstName == "" {
			return u.LastName
		}
		if u.LastName == "" {
			return u.FirstName
		}
		return u.FirstName + " " + u.LastName
	}
	return u.Name
}
