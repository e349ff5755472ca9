package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bizerr/bizerr/cmd/ui"
	"github.com/bizerr/bizerr/pkg/common/logger"
	"github.com/bizerr/bizerr/pkg/config"
	"github.com/bizerr/bizerr/pkg/symbol"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config.yaml>...",
		Short: "Validate configuration files without generating code",
		Long: `Run the full generation-time validation over each configuration file:
syntax, default-language coverage, numeric-code uniqueness, and generated
symbol collisions. Nothing is written.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]error, len(args))
			g, _ := errgroup.WithContext(cmd.Context())

			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					logger.Debug("validating", "config", path)
					results[i] = validateConfig(path)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			failed := 0
			for i, path := range args {
				fmt.Println(ui.FileResult(path, results[i]))
				if results[i] != nil {
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d configuration(s) invalid", failed, len(args))
			}

			fmt.Println(ui.SuccessMessage("all configurations valid"))
			return nil
		},
	}

	return cmd
}

// validateConfig runs every check generation would run, including the
// symbol-collision pass the parser alone does not cover.
func validateConfig(path string) error {
	cfg, err := config.LoadValidated(path)
	if err != nil {
		return err
	}

	keys := make([]string, len(cfg.Definitions))
	for i := range cfg.Definitions {
		keys[i] = cfg.Definitions[i].Key
	}
	if _, err := symbol.TransformAll(keys); err != nil {
		return err
	}

	return nil
}
