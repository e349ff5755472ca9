package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bizerr/bizerr/cmd/ui"
	"github.com/bizerr/bizerr/pkg/config"
	"github.com/bizerr/bizerr/pkg/symbol"
)

func newListCmd() *cobra.Command {
	var useTable bool

	cmd := &cobra.Command{
		Use:   "list <config.yaml>",
		Short: "Show the error codes a configuration defines",
		Long: `Show every error definition in the configuration: key, generated
symbol, numeric code, HTTP status, and per-language messages, in the order
they appear in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadValidated(args[0])
			if err != nil {
				return err
			}

			keys := make([]string, len(cfg.Definitions))
			for i := range cfg.Definitions {
				keys[i] = cfg.Definitions[i].Key
			}
			symbols, err := symbol.TransformAll(keys)
			if err != nil {
				return err
			}

			if useTable {
				displayDefinitionsAsTable(cfg, symbols)
			} else {
				displayDefinitionsDetailed(cfg, symbols)
			}

			fmt.Println(ui.InfoMessage(fmt.Sprintf("%d error(s), default language %s, languages: %s",
				len(cfg.Definitions), cfg.DefaultLanguage, strings.Join(cfg.SupportedLanguages, ", "))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display definitions in table format")

	return cmd
}

// displayDefinitionsDetailed shows each definition in its own box
func displayDefinitionsDetailed(cfg *config.Config, symbols []string) {
	fmt.Println(ui.RenderHeader(" Error Codes "))
	fmt.Println()

	for i, def := range cfg.Definitions {
		fmt.Println(ui.FormatDefinitionDetailed(ui.DefinitionInfo{
			Key:        def.Key,
			Symbol:     symbols[i],
			Code:       def.Code,
			HTTPStatus: def.HTTPStatus,
			Messages:   def.Messages,
			Languages:  def.Languages,
		}))

		if i < len(cfg.Definitions)-1 {
			fmt.Println(ui.FormatDefinitionSeparator())
		}
	}
}

// displayDefinitionsAsTable shows the definitions in a compact table
func displayDefinitionsAsTable(cfg *config.Config, symbols []string) {
	fmt.Println(ui.RenderHeader(" Error Codes "))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Key", "Symbol", "Code", "HTTP", "Message ("+cfg.DefaultLanguage+")")

	for i, def := range cfg.Definitions {
		message := def.Messages[cfg.DefaultLanguage]
		if len(message) > 50 {
			message = message[:47] + "..."
		}

		table.Append(
			ui.Cyan(def.Key),
			ui.Yellow(symbols[i]),
			ui.Magenta(strconv.Itoa(def.Code)),
			strconv.Itoa(def.HTTPStatus),
			message,
		)
	}

	table.Render()
}
