package views

import (
	"io"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath   string
	AppDataDir   string
	LogLevel     string
	LogFormat    string
	Delimiter    string
	OutputFormat string
}

func RenderSystemInfo(out io.Writer, data SystemInfoItem) error {
	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"AppData Directory", data.AppDataDir},
		{"Log Level", data.LogLevel},
		{"Log Format", data.LogFormat},
		{"Input Delimiter", data.Delimiter},
		{"Output Format", data.OutputFormat},
	}

	return pterm.DefaultTable.WithData(tableData).WithWriter(out).Render()
}
