package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/monitor"
	"github.com/rileyhilliard/gradtop/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// pipeParams controls how input lines become samples.
type pipeParams struct {
	// Field picks the 1-based whitespace or comma separated field. Zero
	// means the whole line.
	Field int
	// Key picks the value from a key=value or key: value pair instead.
	Key string
	// Hold keeps the chart up after EOF until a key is pressed.
	Hold bool
}

var pipeFlags pipeParams

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Chart numbers read from stdin",
	Long: `Read one value per line from stdin and chart them as they arrive.

Lines that don't hold a number are skipped and counted. Keys are read from
the terminal, so the chart can still be closed while stdin is a pipe.

Examples:
  python train.py | gradtop pipe
  python train.py | gradtop pipe --key loss
  tail -f metrics.csv | gradtop pipe --field 3 --hold`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pipeFlags.validate(); err != nil {
			return err
		}

		s, err := openSession(configFlag, logFileFlag, debugFlag)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := s.monitorOptions()
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			opts.InputTTY = true
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		summary, err := runPipe(ctx, opts, cmd.InOrStdin(), pipeFlags)
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderRunSummary(summary))
		return err
	},
}

func init() {
	pipeCmd.Flags().IntVarP(&pipeFlags.Field, "field", "f", 0, "1-based field holding the value (0 = whole line)")
	pipeCmd.Flags().StringVarP(&pipeFlags.Key, "key", "k", "", "take the value from key=value or key: value")
	pipeCmd.Flags().BoolVar(&pipeFlags.Hold, "hold", false, "keep the chart up after input ends until a key is pressed")

	rootCmd.AddCommand(pipeCmd)
}

func (p pipeParams) validate() error {
	if p.Field < 0 {
		return errors.New(errors.ErrInput, fmt.Sprintf("--field can't be negative (got %d)", p.Field), "Fields count from 1. Use 0 for the whole line.")
	}
	if p.Field > 0 && p.Key != "" {
		return errors.New(errors.ErrInput, "--field and --key can't be used together", "Pick one way to locate the value.")
	}
	return nil
}

// runPipe charts every value read from r until EOF, then closes the chart.
// Reading stops early if the chart ends (key press) or ctx is cancelled.
func runPipe(ctx context.Context, opts monitor.Options, r io.Reader, p pipeParams) (ui.RunSummary, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	m, err := monitor.New(ctx, opts)
	if err != nil {
		return ui.RunSummary{Outcome: "not started", Failed: true}, err
	}

	quit := make(chan struct{})
	defer close(quit)
	lines, readErr := readLines(r, quit)

	submitted, skipped, lineNo := 0, 0, 0
	eof := false
read:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				eof = true
				break read
			}
			lineNo++
			v, ok := p.parse(line)
			if !ok {
				skipped++
				log.Warn("line %d: no value in %q", lineNo, line)
				continue
			}
			m.Submit(v)
			submitted++
		case <-m.Done():
			break read
		case <-ctx.Done():
			break read
		}
	}

	if eof {
		if err := <-readErr; err != nil {
			log.Error("reading input: %v", err)
		}
		log.Debug("input ended after %d lines", lineNo)
		if p.Hold && ctx.Err() == nil {
			select {
			case <-m.Done():
			case <-ctx.Done():
			}
		}
	}

	err = m.Close()
	return summarize(m, submitted, skipped), err
}

// readLines scans r on its own goroutine so a slow producer never holds up
// the chart. The error channel receives the scan result once lines closes.
func readLines(r io.Reader, quit <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(errc)
		defer close(lines)

		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-quit:
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

// parse extracts the value from a line. Blank lines and lines without a
// number report false.
func (p pipeParams) parse(line string) (float64, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}

	token := line
	switch {
	case p.Key != "":
		v, ok := lookupKey(line, p.Key)
		if !ok {
			return 0, false
		}
		token = v
	case p.Field > 0:
		fields := splitFields(line)
		if p.Field > len(fields) {
			return 0, false
		}
		token = fields[p.Field-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if err != nil {
		return 0, false
	}
	// NaN and Inf parse fine. They take a step and the chart leaves a gap.
	return v, true
}

// splitFields splits on whitespace and commas, dropping empty fields.
func splitFields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// lookupKey finds key=value or key: value in a line of training output such
// as "step 12 loss=0.431 lr=3e-4".
func lookupKey(line, key string) (string, bool) {
	fields := splitFields(line)
	for i, f := range fields {
		if v, ok := strings.CutPrefix(f, key+"="); ok {
			return v, true
		}
		if f == key+":" && i+1 < len(fields) {
			return fields[i+1], true
		}
		if v, ok := strings.CutPrefix(f, key+":"); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
