package errhandler

import (
	"os"
	"unicode"

	"github.com/pterm/pterm"
)

func init() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}
	pterm.Error.Writer = os.Stderr
}

// HandleError prints err on stderr the way every command reports failures.
func HandleError(err error) {
	if err == nil {
		return
	}
	pterm.Error.Println(capitalize(err.Error()))
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
