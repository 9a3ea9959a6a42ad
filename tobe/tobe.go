// Package tobe implements the token-driven stack client: words are pushed, pop tokens pop and report the item.
//
// Fed the classic input "to be or not to - be - - that - - - is" it reports
// "to be not that or be (2 left on stack)".
package tobe

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lifo-cli/lifo/log"
	"github.com/lifo-cli/lifo/stack"
	"github.com/lifo-cli/lifo/util"
)

// DefaultPopToken is the token that triggers a pop when Options.PopToken is empty.
const DefaultPopToken = "-"

// Options controls how the token stream is interpreted.
type Options struct {
	// PopToken pops the stack instead of being pushed. Defaults to DefaultPopToken.
	PopToken string
	// Strict fails the run when a pop token meets an empty stack.
	// Otherwise the token is skipped and counted in Result.Underflows.
	Strict bool
	// Out receives every popped item as soon as it is popped, followed by a space.
	Out io.Writer
}

func (o *Options) popToken() string {
	if o == nil || o.PopToken == "" {
		return DefaultPopToken
	}
	return o.PopToken
}

// Result summarises a run.
type Result struct {
	// Input names where the tokens came from. Run leaves it empty.
	Input string `json:"input,omitempty" jsonschema:"description=Name of the token source, a file path or stdin."`
	// Popped holds the popped items in the order they were popped.
	Popped []string `json:"popped" jsonschema:"description=Items in the order they were popped."`
	// Remaining holds the items left on the stack, bottom to top.
	Remaining []string `json:"remaining" jsonschema:"description=Items left on the stack ordered from bottom to top."`
	// Left is the number of items left on the stack.
	Left int `json:"left" jsonschema:"description=Number of items left on the stack."`
	// Underflows counts pop tokens that met an empty stack.
	Underflows int `json:"underflows" jsonschema:"description=Number of pop tokens skipped because the stack was empty."`
	// Stats describes the stack buffer after the run.
	Stats stack.Stats `json:"stats" jsonschema:"description=Backing buffer statistics after the run."`
}

// String renders the popped items followed by the number of items left, e.g. "to be (1 left on stack)".
func (r *Result) String() string {
	var b strings.Builder
	for _, item := range r.Popped {
		b.WriteString(item)
		b.WriteString(" ")
	}

	fmt.Fprintf(&b, "(%d left on stack)", r.Left)
	return b.String()
}

// Run reads whitespace separated tokens from r and applies them to a fresh stack.
func Run(r io.Reader, opts *Options) (*Result, error) {
	var (
		popToken = opts.popToken()
		s        = stack.New[string]()
		result   = &Result{Popped: []string{}}
		scanner  = bufio.NewScanner(r)
	)

	s.OnResize(func(from, to int) {
		log.Debugf("stack resized from %d to %d slots at %s", from, to, util.Quantify(s.Len(), "item", "items"))
	})

	scanner.Split(bufio.ScanWords)
	for position := 1; scanner.Scan(); position++ {
		token := scanner.Text()

		if token != popToken {
			s.Push(token)
			continue
		}

		item, err := s.Pop()
		if err != nil {
			if opts != nil && opts.Strict {
				return nil, fmt.Errorf("token %d %q: %w", position, token, err)
			}

			log.Warnf("token %d %q: %s, skipping", position, token, err)
			result.Underflows++
			continue
		}

		result.Popped = append(result.Popped, item)
		if opts != nil && opts.Out != nil {
			if _, err := fmt.Fprint(opts.Out, item, " "); err != nil {
				return nil, fmt.Errorf("write popped item: %w", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}

	result.Remaining = s.Values()
	result.Left = s.Len()
	result.Stats = s.Stats()

	log.Infof(
		"processed tokens: %s popped, %s left, %d resizes",
		util.Quantify(len(result.Popped), "item", "items"),
		util.Quantify(result.Left, "item", "items"),
		result.Stats.Resizes(),
	)

	return result, nil
}
