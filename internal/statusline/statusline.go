// Package statusline is the ambient non-fatal status/error reporter used
// across the runtime and CLI layers, a pterm-backed analogue of the
// teacher's tracing setup but scoped to the handful of status lines an
// interactive editor actually prints (info, warning, error), not a full
// leveled trace log.
package statusline

import "github.com/pterm/pterm"

// init mirrors gorgo's trepl.go initDisplay: distinct prefixes per
// severity so status lines are visually distinguishable at a glance.
func init() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " INFO ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " WARN ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Info reports a routine status line (e.g. "saved", "program finished").
func Info(msg string) {
	pterm.Info.Println(msg)
}

// Warning reports a recoverable condition worth the user's attention.
func Warning(msg string) {
	pterm.Warning.Println(msg)
}

// Error reports a non-fatal error, such as an Edit command rejected by
// the engine (spec.md §7).
func Error(err error) {
	if err == nil {
		return
	}
	pterm.Error.Println(err.Error())
}
