package app

import (
	"io"
	"log/slog"

	"github.com/vk/defcalc/internal/script"
)

// App encapsulates one invocation's dependencies: the output writers, an
// isolated logger, and the script loader. Results go to outW only; the
// logger writes to errW so stdout never carries anything but results.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	loader script.Loader
}

// NewApp is the constructor for the calculator application. The logger is
// built from the config's logging options and pointed at errW.
func NewApp(outW, errW io.Writer, appConfig *Config, loader script.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		loader: loader,
	}
}
