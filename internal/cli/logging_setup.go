package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/countrytable/internal/config"
	"github.com/rshade/countrytable/internal/logging"
)

// setupLogging configures logging from the resolved config and CLI flags,
// then stores the logger and a trace ID in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config) logging.LogPathResult {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	toFile := cmd.Annotations[annotationLogToFile] == "true"

	switch {
	case toFile:
		// A full-screen UI owns the terminal, so logs always go to a file.
		loggingCfg = loggingCfg.ForFile()
	case debug:
		loggingCfg.Format = logging.FormatConsole
		loggingCfg.File = ""
	}

	if loggingCfg.File != "" {
		fileCfg := *cfg
		fileCfg.Logging = loggingCfg
		if err := config.EnsureLogDir(&fileCfg); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig(debug))
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(cmd *cobra.Command, logResult *logging.LogPathResult) error {
	if logResult == nil {
		return nil
	}
	logger.Debug().Ctx(cmd.Context()).Str("command", cmd.Name()).Msg("command finished")
	return logResult.Close()
}
