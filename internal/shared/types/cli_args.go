package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	InputFile  string
	ProjectID  string
	ReportName string
	ReportType []string
	Dir        string
	ChartsDir  string
	Email      string
	SMTPHost   string
	SMTPPort   int
	SMTPFrom   string
	Save       bool
	StoreDir   string
}
