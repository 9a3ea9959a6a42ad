package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/lifo-cli/lifo/color"
	"github.com/lifo-cli/lifo/filesystem"
	"github.com/lifo-cli/lifo/icon"
	"github.com/lifo-cli/lifo/key"
	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/style"
	"github.com/lifo-cli/lifo/tobe"
	"github.com/lifo-cli/lifo/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// stdinArg is the file argument that selects standard input.
const stdinArg = "-"

// input is a token source; an absent path means stdin.
type input struct {
	path mo.Option[string]
}

func (i input) name() string {
	return i.path.OrElse("stdin")
}

func parseInputs(args []string) []input {
	if len(args) == 0 {
		return []input{{path: mo.None[string]()}}
	}

	return lo.Map(args, func(arg string, _ int) input {
		if arg == stdinArg {
			return input{path: mo.None[string]()}
		}
		return input{path: mo.Some(arg)}
	})
}

func (i input) open(cmd *cobra.Command) (io.ReadCloser, error) {
	path, ok := i.path.Get()
	if !ok {
		if f, isFile := cmd.InOrStdin().(*os.File); isFile && util.IsTerminal(f) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), style.Faint("reading tokens from stdin, finish with Ctrl-D"))
		}
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return filesystem.Input().Open(path)
}

// runDriver feeds every input to its own stack and renders the results.
func runDriver(cmd *cobra.Command, args []string, asJson bool) error {
	var (
		out     = cmd.OutOrStdout()
		inputs  = parseInputs(args)
		results = make([]*tobe.Result, 0, len(inputs))
	)

	for _, in := range inputs {
		r, err := in.open(cmd)
		if err != nil {
			return fmt.Errorf("open %s: %w", in.name(), err)
		}

		if !asJson && len(inputs) > 1 {
			_, _ = fmt.Fprintln(out, style.Bold(in.name()))
		}

		options := &tobe.Options{
			PopToken: viper.GetString(key.DriverPopToken),
			Strict:   viper.GetBool(key.DriverStrict),
		}
		if !asJson {
			options.Out = out
		}

		log.Infof("reading tokens from %s", in.name())
		result, err := tobe.Run(r, options)
		_ = r.Close()
		if err != nil {
			if !asJson {
				_, _ = fmt.Fprintln(out)
			}
			return fmt.Errorf("%s: %w", in.name(), err)
		}

		result.Input = in.name()
		results = append(results, result)

		if !asJson {
			renderResult(out, result)
		}
	}

	if asJson {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	}

	return nil
}

// renderResult completes the streamed popped items with the summary and the optional details.
func renderResult(out io.Writer, result *tobe.Result) {
	_, _ = fmt.Fprintf(out, "(%d left on stack)\n", result.Left)

	if result.Underflows > 0 {
		_, _ = fmt.Fprintf(
			out,
			"%s %s\n",
			style.Fg(color.Yellow)(icon.Get(icon.Pop)),
			style.Faint(util.Quantify(result.Underflows, "pop", "pops")+" skipped on an empty stack"),
		)
	}

	if viper.GetBool(key.DriverShowRemaining) {
		_, _ = fmt.Fprintf(out, "%s %s\n", style.Fg(color.Cyan)(icon.Get(icon.Push)), style.Cells(result.Remaining))
	}

	if viper.GetBool(key.DriverShowStats) {
		st := result.Stats
		_, _ = fmt.Fprintf(
			out,
			"%s %s\n",
			style.Fg(color.Purple)(icon.Get(icon.Stats)),
			style.Fg(color.Gray)(fmt.Sprintf("capacity %d, grows %d, shrinks %d", st.Capacity, st.Grows, st.Shrinks)),
		)
	}
}
