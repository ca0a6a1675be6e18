package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/super-effective/dropdown-input/pkg/dropdown/constants"
	"github.com/super-effective/dropdown-input/pkg/dropdown/platform/cannoli"
	"github.com/super-effective/dropdown-input/pkg/dropdown/style"
)

func styleCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print a style sheet as TOML",
		Long: fmt.Sprintf(`Prints the built-in style sheet. Save it as %s, edit it and pass it
back with --style (or $%s).`, constants.DefaultStyleSheetFilename, constants.StylePathEnvVar),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sheet *style.Sheet
			switch platform {
			case "":
				sheet = style.Default()
			case "cannoli":
				sheet = cannoli.Sheet("")
			default:
				return fmt.Errorf("unknown platform %q", platform)
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(sheet)
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", `built-in look to print ("cannoli")`)

	return cmd
}
