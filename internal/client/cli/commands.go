package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/aroha/internal/client/config"
	"github.com/dmitrijs2005/aroha/internal/client/models"
	"github.com/dmitrijs2005/aroha/internal/scoring"
	"github.com/spf13/cobra"
)

// newApp builds the App for commands that need storage. Tests replace it.
var newApp = func(ctx context.Context) (*App, error) {
	return NewApp(ctx, config.LoadConfig())
}

// NewRootCommand returns the aroha command tree. Without a subcommand the
// interactive session starts.
//
// The short configuration flags (-a, -i, -f, -l, -c) are read by the config
// package straight from os.Args, so cobra lets them through unparsed.
func NewRootCommand(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:   "aroha",
		Short: "Aroha - PHQ-9 self-check with optional cloud sync",
		Long: `Aroha keeps your PHQ-9 results on this device and, once you sign in
and turn on cloud sync, in your account as well.

Run without arguments to start the interactive session.`,
		SilenceUsage: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(ctx)
			if err != nil {
				return err
			}
			app.Run(ctx)
			return nil
		},
	}

	root.AddCommand(
		newScoreCommand(),
		newSubmitCommand(ctx),
		newHistoryCommand(ctx),
		newExportCommand(ctx),
		newDeleteAllCommand(ctx),
	)

	for _, c := range root.Commands() {
		c.FParseErrWhitelist = root.FParseErrWhitelist
	}
	return root
}

// withApp opens the app, points its output at the command and closes it
// when fn returns.
func withApp(ctx context.Context, cmd *cobra.Command, fn func(a *App) error) error {
	app, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	app.out = cmd.OutOrStdout()
	return fn(app)
}

func newScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "score <answers>",
		Short: "Score nine answers without saving them",
		Example: `  aroha score 012301230
  aroha score 0,1,2,3,0,1,2,3,0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := ParseAnswers(args[0])
			if err != nil {
				return err
			}
			res, err := scoring.Score(answers)
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), &models.Record{
				Answers:  answers,
				Total:    res.Total,
				Severity: res.Severity,
			})
			return nil
		},
	}
}

func newSubmitCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "submit <answers>",
		Short: "Score nine answers and save the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			answers, err := ParseAnswers(args[0])
			if err != nil {
				return err
			}
			return withApp(ctx, cmd, func(a *App) error {
				rec, err := a.records.SubmitAssessment(ctx, answers)
				if err != nil {
					return err
				}
				printResult(a.out, rec)
				return nil
			})
		},
	}
}

func newHistoryCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List saved results, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(ctx, cmd, func(a *App) error {
				return a.History(ctx)
			})
		},
	}
}

func newExportCommand(ctx context.Context) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all data as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(ctx, cmd, func(a *App) error {
				var args []string
				if output != "" {
					args = []string{output}
				}
				return a.Export(ctx, args)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")
	return cmd
}

func newDeleteAllCommand(ctx context.Context) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete all records and preferences on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(ctx, cmd, func(a *App) error {
				if !yes {
					return a.DeleteAll(ctx)
				}
				if err := a.records.DeleteAllData(ctx); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "All local data deleted.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
