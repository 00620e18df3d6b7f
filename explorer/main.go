package main

import (
	explorerErrors "bikeshare/domain/errors"
	"bikeshare/explorer/config"
	"bikeshare/explorer/controller"
	"bikeshare/utils"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"os"
)

const (
	defaultLogLevel = "warn"
	logLevelEnv     = "LOG_LEVEL"
	configEnv       = "BIKESHARE_CONFIG"
	dataDirEnv      = "BIKESHARE_DATA_DIR"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(os.Stderr)
	log.SetLevel(level)
	return nil
}

type flags struct {
	configPath string
	dataDir    string
	logLevel   string
}

// firstNonEmpty returns the first value that is not empty
func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

// loadConfig reads the config file. Only a missing file at the default path falls back to the default config,
// a path given by the user must exist.
func loadConfig(configPath string) (*config.ExplorerConfig, error) {
	explorerConfig, err := config.LoadConfig(configPath)
	if errors.Is(err, os.ErrNotExist) && configPath == config.DefaultConfigFilepath {
		log.Warnf("[component: main][status: OK] config file %s not found, using default config", configPath)
		return config.Default(), nil
	}
	return explorerConfig, err
}

func run(cmdFlags *flags) error {
	// a missing .env file is fine
	_ = godotenv.Load()

	logLevel := firstNonEmpty(cmdFlags.logLevel, os.Getenv(logLevelEnv))
	if err := InitLogger(firstNonEmpty(logLevel, defaultLogLevel)); err != nil {
		return err
	}

	configPath := firstNonEmpty(cmdFlags.configPath, os.Getenv(configEnv), config.DefaultConfigFilepath)
	explorerConfig, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if logLevel == "" && explorerConfig.LogLevel != "" {
		if err := InitLogger(explorerConfig.LogLevel); err != nil {
			return err
		}
	}

	explorerConfig.DataDir = firstNonEmpty(cmdFlags.dataDir, os.Getenv(dataDirEnv), explorerConfig.DataDir)
	if err := explorerConfig.Validate(); err != nil {
		return err
	}
	log.Debugf("[component: main][status: OK] config loaded from %s: %+v", configPath, explorerConfig)

	explorer := controller.NewController(explorerConfig, os.Stdin, os.Stdout)
	done := make(chan error, 1)
	go func() {
		done <- explorer.Run()
	}()

	signalChannel := utils.GetSignalChannel()
	select {
	case sig := <-signalChannel:
		log.Infof("[component: main][status: OK] received signal %s", sig)
		fmt.Fprintf(os.Stdout, "\n%s\n", controller.ClosingMessage)
		return nil
	case err := <-done:
		if errors.Is(err, explorerErrors.ErrInputExhausted) {
			log.Infof("[component: main][status: OK] %s", err)
			fmt.Fprintf(os.Stdout, "\n%s\n", controller.ClosingMessage)
			return nil
		}
		return err
	}
}

func main() {
	cmdFlags := &flags{}

	var rootCmd = &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `Bikeshare asks for a city and optional month and day filters, then prints the most
frequent times of travel, the most popular stations, trip durations and user statistics
of the selected trips. The raw trips can be browsed a page at a time.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmdFlags)
		},
	}

	rootCmd.Flags().StringVar(&cmdFlags.configPath, "config", "", "path to the config file (env "+configEnv+")")
	rootCmd.Flags().StringVar(&cmdFlags.dataDir, "data-dir", "", "directory with the city files (env "+dataDirEnv+")")
	rootCmd.Flags().StringVar(&cmdFlags.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (env "+logLevelEnv+")")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
