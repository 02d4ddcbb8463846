package global

import (
	"bytes"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

var (
	CfgFile string
	NoColor bool
	NoStyle bool
	Verbose bool
)

// RenderTable renders rows in the common table style of all commands
func RenderTable(headers []string, rows [][]string) (string, error) {
	tab := table.Table{
		Headers: headers,
		Rows:    rows,
	}
	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
