package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ressKim-io/news-category-service/internal/domain/textnorm"
	"github.com/ressKim-io/news-category-service/internal/infrastructure/artifact"
	"github.com/ressKim-io/news-category-service/internal/infrastructure/config"
	"github.com/ressKim-io/news-category-service/internal/infrastructure/logger"
)

const defaultURL = "http://localhost:5000"

// options shared by every subcommand
type options struct {
	vectorizerPath string
	classifierPath string
	url            string
	timeout        time.Duration
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "categorize",
		Short:         "Suggest news categories for text",
		Long:          `categorize predicts a news category (World, Sports, Business, Sci/Tech) for text, either with local model artifacts or through a running service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.vectorizerPath, "vectorizer", "", "vectorizer artifact path (defaults to configuration)")
	flags.StringVar(&opts.classifierPath, "classifier", "", "classifier artifact path (defaults to configuration)")
	flags.StringVar(&opts.url, "url", defaultURL, "base URL of a running category service")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log artifact loading")

	root.AddCommand(
		newPredictCmd(opts),
		newSuggestCmd(opts),
		newHealthCmd(opts),
		newInspectCmd(opts),
	)

	return root
}

// loadArtifacts loads the local artifacts named by configuration and flags
func loadArtifacts(cmd *cobra.Command, opts *options) (*artifact.Set, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.vectorizerPath != "" {
		cfg.Model.VectorizerPath = opts.vectorizerPath
	}
	if opts.classifierPath != "" {
		cfg.Model.ClassifierPath = opts.classifierPath
	}

	level := "error"
	if opts.verbose {
		level = "debug"
	}
	log := logger.NewLoggerWithWriter(&config.LogConfig{Level: level, Format: "console"}, cmd.ErrOrStderr())

	set := artifact.Load(&cfg.Model, log)
	if !set.Ready() {
		return nil, nil, fmt.Errorf("failed to load artifacts: %w", set.Err)
	}
	return set, log, nil
}

func joinText(args []string) (string, error) {
	text := strings.Join(args, " ")
	if textnorm.IsBlank(text) {
		return "", fmt.Errorf("text must be a non-empty string")
	}
	return text, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
