// Package ui provides styled output for gradtop's CLI, the text printed to
// the normal screen before and after a chart runs.
//
// # Components Overview
//
//	Sparkline     - one-line picture of the final window
//	RunSummary    - result line printed after a chart closes
//	Tables        - key/value listings such as `gradtop config keys`
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Successful operations, a falling loss
//	ColorError     (red)    - Failures and errors
//	ColorWarning   (yellow) - Warnings, early exits, a rising loss
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
package ui
