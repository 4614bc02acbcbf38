// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"fx-pricer/internal/config"
	"fx-pricer/internal/models"
)

// NewLogger creates a logger from the logging configuration. Console
// output is human-formatted; the optional file sink rotates via
// lumberjack.
func NewLogger(cfg config.LoggingConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    20, // megabytes
				MaxBackups: 3,
				MaxAge:     30, // days
				Compress:   true,
			})
		}
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = os.Stderr
	case 1:
		writer = writers[0]
	default:
		writer = zerolog.MultiLevelWriter(writers...)
	}

	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	return zerolog.New(writer).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// WithInstrument adds the contract shape to the logger context.
func WithInstrument(logger zerolog.Logger, contract models.ContractSpec) zerolog.Logger {
	lc := logger.With().
		Float64("strike", contract.Strike).
		Str("right", string(contract.Right))
	if contract.Barrier != nil {
		lc = lc.
			Float64("barrier", contract.Barrier.Level).
			Str("barrier_type", string(contract.Barrier.Direction)+"-"+string(contract.Barrier.Action))
	}
	return lc.Logger()
}

// LogPricing logs one pricing call with its decomposition.
func LogPricing(logger zerolog.Logger, m models.MarketParameters, res models.PricingResult) {
	logger.Debug().
		Str("event", "pricing").
		Float64("spot", m.Spot).
		Float64("vol", m.Volatility).
		Float64("ttm", m.TimeToMaturity).
		Float64("price", res.Price).
		Float64("base", res.BasePrice).
		Float64("barrier_adj", res.BarrierAdjustment).
		Float64("smile_corr", res.SmileCorrection).
		Msg("Priced contract")
}

// LogSweep logs a completed sweep.
func LogSweep(logger zerolog.Logger, from, to float64, points int, elapsed time.Duration) {
	logger.Debug().
		Str("event", "sweep").
		Float64("from", from).
		Float64("to", to).
		Int("points", points).
		Dur("elapsed", elapsed).
		Msg("Spot sweep completed")
}
