package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bizerr/bizerr/cmd/ui"
	"github.com/bizerr/bizerr/pkg/codegen"
	"github.com/bizerr/bizerr/pkg/common/logger"
)

func newGenerateCmd() *cobra.Command {
	var output string
	var packageName string
	var typeName string

	cmd := &cobra.Command{
		Use:   "generate <config.yaml>...",
		Short: "Generate Go error-code enumerations from configuration files",
		Long: `Generate a strongly-typed Go error-code enumeration from each YAML
configuration file. Generation is all-or-nothing: an invalid configuration
produces an error and no output file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && len(args) > 1 {
				return fmt.Errorf("--output can only be used with a single configuration file")
			}

			opts := codegen.Options{
				PackageName: packageName,
				TypeName:    typeName,
			}

			results := make([]error, len(args))
			g, _ := errgroup.WithContext(cmd.Context())

			for i, path := range args {
				i, path := i, path
				outPath := output
				if outPath == "" {
					outPath = derivedOutputPath(path)
				}

				g.Go(func() error {
					logger.Debug("generating", "config", path, "output", outPath)
					results[i] = codegen.GenerateFile(path, outPath, opts)
					return nil
				})
			}

			// Worker errors land in results; Wait only propagates panics here.
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
				return fmt.Errorf("%d of %d configuration(s) failed", failed, len(args))
			}

			fmt.Println(ui.SuccessMessage("generated", fmt.Sprintf("%d file(s)", len(args))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (single config only; default <config>_errors.go)")
	cmd.Flags().StringVar(&packageName, "package", "", "Package name of the generated file (default errcodes)")
	cmd.Flags().StringVar(&typeName, "type", "", "Name of the generated enumeration type (default ErrorCode)")

	return cmd
}

// derivedOutputPath maps biz_errors.yaml to biz_errors.go next to the config.
func derivedOutputPath(configPath string) string {
	base := strings.TrimSuffix(configPath, filepath.Ext(configPath))
	return base + ".go"
}
