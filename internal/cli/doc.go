// Package cli implements the gradtop command-line interface.
//
// The package is organized around Cobra commands. Each command parses its
// flags, opens a session (config, logging) and hands off to a run function
// that takes plain arguments, so tests can drive it headless.
//
// # Command Structure
//
//	gradtop demo            - chart a simulated training run
//	gradtop pipe            - chart numbers read from stdin, one per line
//	gradtop config          - show the resolved config
//	gradtop config keys     - list every config key with its current value
//	gradtop config set K V  - write one key to .gradtop.yaml
//	gradtop version         - print build information
//
// Global flags: --config, --debug, --log-file.
//
// While a chart is up the terminal belongs to it, so diagnostics go to the
// log file only. Results are printed after the chart closes.
package cli
