package cmd

import (
	"io"

	"github.com/nfrund/denik/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the application theme",
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the theme as the CSS served at /theme.css",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := io.WriteString(cmd.OutOrStdout(), theme.Default().CSS())
		return err
	},
}

func init() {
	themeCmd.AddCommand(themeCSSCmd)
	rootCmd.AddCommand(themeCmd)
}
