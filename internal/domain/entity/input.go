package entity

// ReportInput bundles everything the upstream collaborators hand to the core
// for one report build. Every section is optional; the pipeline degrades to
// placeholders and zeros rather than refusing to produce a document.
type ReportInput struct {
	ProjectID           string              `json:"project_id,omitempty" yaml:"project_id" toml:"project_id"`
	EmissionsData       EmissionsData       `json:"emissions_data" yaml:"emissions_data" toml:"emissions_data"`
	ReductionStrategies []ReductionStrategy `json:"reduction_strategies,omitempty" yaml:"reduction_strategies" toml:"reduction_strategies"`
	OrganizationInfo    OrganizationInfo    `json:"organization_info" yaml:"organization_info" toml:"organization_info"`
	Scenarios           []Scenario          `json:"scenarios,omitempty" yaml:"scenarios" toml:"scenarios"`
	CurrentUser         UserInfo            `json:"current_user,omitempty" yaml:"current_user" toml:"current_user"`
}
