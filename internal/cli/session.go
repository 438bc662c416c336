package cli

import (
	"io"
	"os"

	"github.com/rileyhilliard/gradtop/internal/config"
	"github.com/rileyhilliard/gradtop/internal/errors"
	"github.com/rileyhilliard/gradtop/internal/logger"
	"github.com/rileyhilliard/gradtop/internal/monitor"
)

// session is what every chart command needs before it starts: the resolved
// config and somewhere to log that isn't the terminal.
type session struct {
	cfg     *config.Config
	cfgPath string // empty when running on defaults
	log     logger.Logger
	closer  io.Closer
}

// openSession loads and validates config and opens the log file. The
// caller must Close it after the chart has closed.
func openSession(explicit, logFile string, debug bool) (*session, error) {
	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if debug || cfg.Log.Debug {
		os.Setenv(logger.DebugEnv, "1")
	}

	s := &session{cfg: cfg, cfgPath: path, log: logger.Noop()}

	if logFile == "" {
		logFile = cfg.Log.File
	}
	if logFile != "" {
		log, closer, err := logger.NewFileLogger(config.ExpandTilde(logFile), "[gradtop]")
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open the log file "+logFile,
				"Check the directory exists and is writable, or drop --log-file.")
		}
		s.log, s.closer = log, closer
	}

	if path != "" {
		s.log.Debug("loaded config from %s", path)
	}
	return s, nil
}

// monitorOptions turns the session config into chart options.
func (s *session) monitorOptions() monitor.Options {
	opts := monitor.FromConfig(s.cfg)
	opts.Logger = s.log
	return opts
}

// Close releases the log file.
func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
