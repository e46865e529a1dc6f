package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	InputFile  string   `json:"input_file" yaml:"input_file" toml:"input_file"`
	ProjectID  string   `json:"project_id" yaml:"project_id" toml:"project_id"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	ChartsDir  string   `json:"charts_dir" yaml:"charts_dir" toml:"charts_dir"`
	Email      string   `json:"email" yaml:"email" toml:"email"`
	SMTPHost   string   `json:"smtp_host" yaml:"smtp_host" toml:"smtp_host"`
	SMTPPort   int      `json:"smtp_port" yaml:"smtp_port" toml:"smtp_port"`
	SMTPFrom   string   `json:"smtp_from" yaml:"smtp_from" toml:"smtp_from"`
	Save       bool     `json:"save" yaml:"save" toml:"save"`
	StoreDir   string   `json:"store_dir" yaml:"store_dir" toml:"store_dir"`
}
