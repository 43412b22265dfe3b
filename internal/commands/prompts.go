package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/ask/format"
	"github.com/simonhull/firebird-suite/ask/prompt"
)

func newTextCmd(opts *rootOptions) *cobra.Command {
	var defaultValue string

	cmd := &cobra.Command{
		Use:   "text MESSAGE",
		Short: "Ask for a line of text",
		Long: `Ask for a non-empty line of text.

With --default, an empty answer picks the default and the question is
shown inline with the default as a hint.

Examples:
  ask text "Your name"
  ask text "Module path" --default github.com/me/app`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.session(cmd)

			var (
				answer string
				err    error
			)
			if cmd.Flags().Changed("default") {
				answer, err = s.Prompt(args[0], defaultValue)
			} else {
				answer, err = limit(opts, prompt.Text(args[0])).RunOn(s.Terminal())
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&defaultValue, "default", "d", "", "Answer used when the input is empty")

	return cmd
}

func newIntCmd(opts *rootOptions) *cobra.Command {
	var lo, hi int64

	cmd := &cobra.Command{
		Use:   "int MESSAGE",
		Short: "Ask for an integer",
		Long: `Ask for a whole number, optionally within bounds.

Examples:
  ask int "Your age" --min 0 --max 150`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hasMin := cmd.Flags().Changed("min")
			hasMax := cmd.Flags().Changed("max")
			if hasMin && hasMax && lo > hi {
				return fmt.Errorf("--min %d is greater than --max %d", lo, hi)
			}

			p := prompt.Int[int64](args[0]).Until(func(v int64) bool {
				return (!hasMin || v >= lo) && (!hasMax || v <= hi)
			})

			answer, err := limit(opts, p).RunOn(opts.session(cmd).Terminal())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().Int64Var(&lo, "min", 0, "Smallest accepted value")
	cmd.Flags().Int64Var(&hi, "max", 0, "Largest accepted value")

	return cmd
}

func newConfirmCmd(opts *rootOptions) *cobra.Command {
	var defaultAnswer string

	cmd := &cobra.Command{
		Use:   "confirm MESSAGE",
		Short: "Ask a yes/no question",
		Long: `Ask a yes/no question and print "true" or "false".

Accepted answers: y, ye, yes, yep, true, n, no, nop, nope, nopp, nah, false.
With --default, pressing Enter picks the default.

Examples:
  ask confirm "Continue?"
  ask confirm "Run go mod tidy?" --default yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := opts.session(cmd)

			var (
				answer bool
				err    error
			)
			if cmd.Flags().Changed("default") {
				defaultYes, perr := prompt.ParseBool(defaultAnswer)
				if perr != nil {
					return fmt.Errorf("invalid --default %q: %w", defaultAnswer, perr)
				}
				answer, err = s.Confirm(args[0], defaultYes)
			} else {
				answer, err = limit(opts, prompt.Bool(args[0])).RunOn(s.Terminal())
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&defaultAnswer, "default", "d", "", "Answer used when the input is empty (yes or no)")

	return cmd
}

func newSelectCmd(opts *rootOptions) *cobra.Command {
	var (
		menu  bool
		index bool
	)

	cmd := &cobra.Command{
		Use:   "select TITLE OPTION...",
		Short: "Ask to pick one option from a list",
		Long: `Print a numbered list and ask for an option, by label or by number.

With --menu and an interactive terminal, an arrow-key menu is shown
instead.

Examples:
  ask select License MIT GPL Apache
  ask select License MIT GPL --index`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, labels := args[0], args[1:]
			s := opts.session(cmd)

			var (
				i   int
				err error
			)
			if menu {
				i, err = s.Select(title, labels)
			} else {
				options := make([]prompt.Option[int], len(labels))
				for n, l := range labels {
					options[n] = prompt.Opt(l, n)
				}
				i, err = limit(opts, prompt.Select(title, options)).RunOn(s.Terminal())
			}
			if err != nil {
				return err
			}

			if index {
				fmt.Fprintln(cmd.OutOrStdout(), i+1)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), labels[i])
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&menu, "menu", "m", false, "Use an arrow-key menu on interactive terminals")
	cmd.Flags().BoolVarP(&index, "index", "i", false, "Print the 1-based index instead of the label")

	return cmd
}

func newPasswordCmd(opts *rootOptions) *cobra.Command {
	var confirm bool

	cmd := &cobra.Command{
		Use:   "password MESSAGE",
		Short: "Ask for a secret without echo",
		Long: `Ask for a non-empty secret. Input is not echoed on a terminal.

With --confirm the secret is asked twice and both must match.

Examples:
  ask password "Database password" --confirm`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := prompt.Password(args[0])
			if confirm {
				// A mismatch starts over at the first question, so both are
				// shown again each round.
				twice := prompt.Then(p, prompt.Password("Repeat "+strings.ToLower(args[0]))).
					Until(func(v prompt.Pair[string, string]) bool {
						return v.First == v.Second
					}).
					Fmt(format.New().RepeatPrompt(true))
				p = prompt.Map(twice, func(v prompt.Pair[string, string]) string {
					return v.First
				})
			}

			answer, err := limit(opts, p).RunOn(opts.session(cmd).Terminal())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirm, "confirm", false, "Ask twice and require both answers to match")

	return cmd
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		sep   string
		count int
	)

	cmd := &cobra.Command{
		Use:   "list MESSAGE",
		Short: "Ask for a separated list of values",
		Long: `Ask for values on one line, split by a separator, and print one per line.
Every item must be non-empty. With --count, exactly that many items are
required.

Examples:
  ask list "Tags" --sep ,
  ask list "Width and height" --sep x --count 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sep == "" {
				return fmt.Errorf("--sep cannot be empty")
			}
			if count < 0 {
				return fmt.Errorf("--count cannot be negative")
			}

			p := prompt.Separated(args[0], sep, prompt.ParseString)
			if count > 0 {
				p = prompt.Fields(args[0], sep, count).Until(func(items []string) bool {
					for _, item := range items {
						if item == "" {
							return false
						}
					}
					return true
				})
			}

			items, err := limit(opts, p).RunOn(opts.session(cmd).Terminal())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, item := range items {
				fmt.Fprintln(out, item)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sep, "sep", "s", ",", "Item separator")
	cmd.Flags().IntVar(&count, "count", 0, "Exact number of items (0 = any)")

	return cmd
}
