package commands

import (
	"fmt"

	"github.com/MGTheTrain/cipher-lab/internal/pkg/config"
	"github.com/MGTheTrain/cipher-lab/internal/pkg/logger"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// writeClipboard places text on the system clipboard
var writeClipboard = clipboard.WriteAll

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// InitCommands registers all command groups with the root command.
func InitCommands(rootCmd *cobra.Command) error {
	loggerInstance, err := setupLogger()
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}

	if err := InitCipherCommands(rootCmd, loggerInstance); err != nil {
		return fmt.Errorf("failed to initialize cipher commands: %w", err)
	}

	if err := InitAnalysisCommands(rootCmd, loggerInstance); err != nil {
		return fmt.Errorf("failed to initialize analysis commands: %w", err)
	}

	return nil
}
