package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/codeassist/internal/gateway"
	"github.com/ziadkadry99/codeassist/internal/progress"
)

var (
	convertLanguage   string
	qualityParameters string
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Translate code into another language",
	Long:  `Reads code from a file (or stdin when omitted or "-") and prints it translated into --language.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, args, "Converting code", func(ctx context.Context, g *gateway.Gateway, code string) (string, error) {
			return g.Convert(ctx, gateway.ConversionRequest{SourceCode: code, TargetLanguage: convertLanguage})
		})
	},
}

var debugCmd = &cobra.Command{
	Use:   "debug [file]",
	Short: "Find and fix defects in code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, args, "Debugging code", func(ctx context.Context, g *gateway.Gateway, code string) (string, error) {
			return g.Debug(ctx, gateway.DebugRequest{SourceCode: code})
		})
	},
}

var qualityCmd = &cobra.Command{
	Use:   "quality [file]",
	Short: "Evaluate code against quality criteria",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOperation(cmd, args, "Checking code quality", func(ctx context.Context, g *gateway.Gateway, code string) (string, error) {
			return g.CheckQuality(ctx, gateway.QualityRequest{SourceCode: code, Parameters: qualityParameters})
		})
	},
}

type operationFunc func(ctx context.Context, g *gateway.Gateway, code string) (string, error)

func runOperation(cmd *cobra.Command, args []string, message string, op operationFunc) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := initLogger(cfg)

	g, err := newGateway(cfg, logger)
	if err != nil {
		return err
	}

	code, err := readSource(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reporter := progress.NewReporter(cmd.ErrOrStderr())
	reporter.Start(message)
	out, err := op(ctx, g, code)
	reporter.Finish()

	if err != nil {
		var verr *gateway.ValidationError
		if errors.As(err, &verr) {
			return errors.New(verr.Message)
		}
		var oerr *gateway.OperationFailedError
		if errors.As(err, &oerr) && !verbose {
			return fmt.Errorf("%s (run with --verbose for details)", oerr.Message())
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func init() {
	convertCmd.Flags().StringVarP(&convertLanguage, "language", "l", "", "target language")
	qualityCmd.Flags().StringVarP(&qualityParameters, "parameters", "p", "", "quality criteria, e.g. \"readability, naming\"")
	rootCmd.AddCommand(convertCmd, debugCmd, qualityCmd)
}
