// Package cmd implements the command-line interface for lifo.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/constant"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/tobe"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., plain, emoji, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("pop-token", "p", tobe.DefaultPopToken, "Token that pops the stack instead of being pushed")
	lo.Must0(viper.BindPFlag(key.DriverPopToken, rootCmd.Flags().Lookup("pop-token")))

	rootCmd.Flags().BoolP("strict", "s", false, "Fail when a pop token is read while the stack is empty")
	lo.Must0(viper.BindPFlag(key.DriverStrict, rootCmd.Flags().Lookup("strict")))

	rootCmd.Flags().BoolP("remaining", "r", false, "Print the items left on the stack, bottom to top")
	lo.Must0(viper.BindPFlag(key.DriverShowRemaining, rootCmd.Flags().Lookup("remaining")))

	rootCmd.Flags().Bool("stats", false, "Print buffer statistics after the run")
	lo.Must0(viper.BindPFlag(key.DriverShowStats, rootCmd.Flags().Lookup("stats")))

	rootCmd.Flags().BoolP("json", "j", false, "Print the results as JSON")
}

// rootCmd pushes every token of the inputs onto a stack and pops on the pop token.
var rootCmd = &cobra.Command{
	Use:   constant.App + " [file...]",
	Short: "Drive a resizing-array stack from a stream of tokens",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiCyan).Render("    - Push words, pop on '-', see what is left") + `

Tokens are read from the given files, or from stdin when no file or "-" is given.
Every token is pushed, except the pop token which pops and prints the top item.`,
	Example: `  echo "to be or not to - be - - that - - - is" | lifo
  lifo --remaining --stats tobe.txt`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(runDriver(cmd, args, lo.Must(cmd.Flags().GetBool("json"))))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
