package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/dayx/foundation/core/error"
	mdwlog "github.com/msto63/dayx/foundation/core/log"
	"github.com/msto63/dayx/pkg/core/cache"
)

// lineReader is the part of readline.Instance the shell loop uses
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// shell runs dayx commands read line by line
type shell struct {
	a      *app
	rl     lineReader
	out    io.Writer
	errOut io.Writer
	parses *cache.ParseCache
}

func newShellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive dayx prompt",
		Long: `Starts an interactive prompt. Every line is a dayx command without
the leading "dayx"; quote arguments that contain spaces:

  dayx> add "2023-01-31 10:00:00" 1 month
  dayx> diff now 2023-01-01 day

Type "help" for commands and "exit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          a.cfg.Shell.Prompt,
				HistoryFile:     a.cfg.Shell.HistoryFile,
				InterruptPrompt: "^C",
				EOFPrompt:       "exit",
				Stdout:          cmd.OutOrStdout(),
				Stderr:          cmd.ErrOrStderr(),
			})
			if err != nil {
				return mdwerror.Wrap(err, "start shell").
					WithCode(mdwerror.CodeEnvironmentError).
					WithOperation("dayx.shell")
			}

			s := &shell{a: a, rl: rl, out: rl.Stdout(), errOut: rl.Stderr(), parses: cache.NewParseCache(0)}
			return s.run()
		},
	}
}

func (s *shell) run() error {
	defer s.rl.Close()
	defer func() {
		if s.parses != nil {
			hits, misses := s.parses.Stats()
			s.a.logger.Debug("shell finished", mdwlog.Fields{"parse_hits": hits, "parse_misses": misses})
		}
	}()

	s.a.logger.Debug("shell started")
	fmt.Fprintln(s.out, `dayx shell - type "help" for commands, "exit" to leave`)

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit", "q":
			return nil
		case "help", "?":
			s.exec([]string{"help"})
			continue
		}

		tokens, err := splitLine(input)
		if err != nil {
			s.printError(err)
			continue
		}
		if tokens[0] == "shell" {
			s.printError(errors.New("already in a shell"))
			continue
		}
		s.exec(tokens)
	}
}

// exec runs one line on a fresh command tree that inherits the shell's flags
func (s *shell) exec(tokens []string) {
	args := []string{"--format", s.a.format}
	if s.a.zone != "" {
		args = append(args, "--zone", s.a.zone)
	}
	if s.a.verbose {
		args = append(args, "--verbose")
	}
	args = append(args, tokens...)

	root := NewRootCmd(Options{
		Clock:  s.a.opts.Clock,
		In:     s.a.opts.In,
		Out:    s.out,
		Err:    s.errOut,
		Config: s.a.cfg,
		Parses: s.parses,
	})
	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		s.a.logger.Debug("shell command failed", mdwlog.String("line", strings.Join(tokens, " ")), mdwlog.Err(err))
		s.printError(err)
	}
}

func (s *shell) printError(err error) {
	msg := err.Error()
	if s.a.cfg.Display.Color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(s.errOut, msg)
}

// splitLine splits on whitespace, keeping single- or double-quoted runs together
func splitLine(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, mdwerror.Newf("unterminated quote in %q", line).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("dayx.shell")
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
