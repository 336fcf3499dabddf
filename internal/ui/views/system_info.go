package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath   string
	AppDataDir   string
	Currency     string
	OutputFormat string
	LogLevel     string
	MaxAccounts  int
	MaxAmount    string
	RecordSize   int
}

func RenderSystemInfo(data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"Currency", data.Currency},
		{"Output Format", data.OutputFormat},
		{"Log Level", data.LogLevel},
		{"Max Accounts", pterm.Sprint(data.MaxAccounts)},
		{"Max Debt Amount", data.MaxAmount},
		{"Payment Record", pterm.Sprintf("%d bytes, big-endian", data.RecordSize)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
