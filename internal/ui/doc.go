// Package ui provides semantic text formatting for human-facing CLI output.
//
// Formatters colorize content when the terminal supports it. When NO_COLOR
// is set or colors are unavailable, text decorations are used instead:
//
//	ui.Code.Sprint("zz default work")   // `zz default work`
//	ui.Highlight.Sprint("work")         // 'work'
//	ui.Muted.Sprint("default")          // (default)
//	ui.Path.Sprint("/home/me/scratch")  // unchanged
//
// Done, Failed and Hint build the "✓", "✗" and "→" status lines used by
// commands. Output meant for scripts (the path printed by mkdir, ls lines)
// must never go through this package.
package ui
