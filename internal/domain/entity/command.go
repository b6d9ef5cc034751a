package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// Command is what a leaf runs: one or more argv vectors spawned in order,
// plus whether the bar keeps waiting for input afterwards.
type Command struct {
	line        string
	subcommands [][]string
	keepRunning bool
}

// NewCommand builds a command from already split argv vectors.
func NewCommand(subcommands [][]string, keepRunning bool) Command {
	return Command{
		line:        joinSubcommands(subcommands),
		subcommands: cloneArgvs(subcommands),
		keepRunning: keepRunning,
	}
}

// ParseCommand splits a command line into subcommands.
//
// Without a shell, the line is split at unquoted ";" and "&&" and every part
// is tokenized like a POSIX shell would. Pipes and redirections need a shell
// and are rejected. With a shell, the whole line becomes [shell, "-c", line].
func ParseCommand(line string, keepRunning bool, shell string) (Command, error) {
	if strings.TrimSpace(line) == "" {
		return Command{}, ErrEmptyCommand
	}

	if shell != "" {
		return Command{
			line:        line,
			subcommands: [][]string{{shell, "-c", line}},
			keepRunning: keepRunning,
		}, nil
	}

	subcommands, err := splitSubcommands(line)
	if err != nil {
		return Command{}, err
	}
	if len(subcommands) == 0 {
		return Command{}, ErrEmptyCommand
	}

	return Command{
		line:        line,
		subcommands: subcommands,
		keepRunning: keepRunning,
	}, nil
}

// splitSubcommands walks the line one shell "list element" at a time.
// Parser.Position is a rune offset.
func splitSubcommands(line string) ([][]string, error) {
	var subcommands [][]string
	rest := []rune(line)

	for {
		parser := shellwords.NewParser()
		args, err := parser.Parse(string(rest))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrShellSyntax, err)
		}
		if len(args) > 0 {
			subcommands = append(subcommands, args)
		}
		if parser.Position < 0 || parser.Position >= len(rest) {
			return subcommands, nil
		}

		switch sep := rest[parser.Position]; sep {
		case ';', '&':
		default:
			return nil, fmt.Errorf("%w: %q needs a shell (set \"shell\" in the config)", ErrShellSyntax, operatorAt(rest, parser.Position))
		}
		rest = rest[parser.Position+1:]
	}
}

// operatorAt returns the shell operator the parser stopped at. A redirection
// like "2>" stops on its fd digits, which are skipped.
func operatorAt(rest []rune, pos int) string {
	i := pos
	for i < len(rest) && unicode.IsDigit(rest[i]) {
		i++
	}
	end := i
	for end < len(rest) && strings.ContainsRune("<>|&", rest[end]) {
		end++
	}
	if end == i {
		return string(rest[pos])
	}
	return string(rest[i:end])
}

// Line returns the command line as configured.
func (c Command) Line() string {
	return c.line
}

// Subcommands returns a copy of the argv vectors, in execution order.
func (c Command) Subcommands() [][]string {
	return cloneArgvs(c.subcommands)
}

// KeepRunning reports whether the bar stays open after running the command.
func (c Command) KeepRunning() bool {
	return c.keepRunning
}

// String implements fmt.Stringer.
func (c Command) String() string {
	return fmt.Sprintf("Command(%s)", c.line)
}

func cloneArgvs(argvs [][]string) [][]string {
	out := make([][]string, len(argvs))
	for i, argv := range argvs {
		out[i] = append([]string(nil), argv...)
	}
	return out
}

func joinSubcommands(argvs [][]string) string {
	parts := make([]string, len(argvs))
	for i, argv := range argvs {
		parts[i] = strings.Join(argv, " ")
	}
	return strings.Join(parts, "; ")
}
