// Package cli implements the line-oriented ledger shell used by cmd/cli.
// All commands run against one in-process store, so state lives for the
// lifetime of the shell only.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
)

// ErrUnknownCommand is returned for commands the shell does not know.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidArguments is returned when a command's arguments fail validation.
var ErrInvalidArguments = errors.New("invalid arguments")

const usage = `Commands:
  create <owner> <amount>
  deposit <owner> <amount>
  withdraw <owner> <amount>
  transfer <from> <to> <amount>
  balance <owner>
  list
  help
  quit | exit`

// Shell reads commands line by line and writes one result line per command.
type Shell struct {
	app         *app.App
	out         io.Writer
	logger      *slog.Logger
	validate    *validator.Validate
	prompt      string
	interactive bool
	maxDecimals int

	okColor   *color.Color
	errColor  *color.Color
	infoColor *color.Color
}

// Option configures a Shell.
type Option func(*Shell)

// WithInteractive prints the prompt before each command.
func WithInteractive(interactive bool) Option {
	return func(s *Shell) { s.interactive = interactive }
}

// WithColor toggles coloured output.
func WithColor(enabled bool) Option {
	return func(s *Shell) {
		for _, c := range []*color.Color{s.okColor, s.errColor, s.infoColor} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// New builds a shell bound to a's store, using a's config for prompt and limits.
// Colour is off unless WithColor enables it.
func New(a *app.App, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		app:       a,
		out:       out,
		logger:    slog.Default(),
		prompt:    "> ",
		okColor:   color.New(color.FgGreen),
		errColor:  color.New(color.FgRed, color.Bold),
		infoColor: color.New(color.FgCyan),
	}
	if a.Deps != nil && a.Deps.Logger != nil {
		s.logger = a.Deps.Logger
	}
	maxOwnerLength := 64
	if cfg := a.Config; cfg != nil {
		if cfg.CLI != nil {
			s.prompt = cfg.CLI.Prompt
		}
		if cfg.Ledger != nil {
			s.maxDecimals = cfg.Ledger.MaxDecimals
			if cfg.Ledger.MaxOwnerLength > 0 {
				maxOwnerLength = cfg.Ledger.MaxOwnerLength
			}
		}
	}
	s.validate = newValidator(maxOwnerLength)

	WithColor(false)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes commands from in until EOF, a quit command or ctx is done.
// Command failures are reported on the output and do not stop the shell.
// Once ctx is done no further line is executed, even one already read.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines, readErr := readLines(ctx, in)
	for {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if s.interactive {
					fmt.Fprintln(s.out)
				}
				return <-readErr
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			quit, err := s.Exec(line)
			if err != nil {
				s.errColor.Fprintf(s.out, "error: %v\n", err) //nolint:errcheck
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not delay
// cancellation. readErr receives the scanner error after lines is closed.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()
	return lines, readErr
}

// Exec runs a single command line. Blank lines and comments are ignored.
func (s *Shell) Exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	s.logger.Debug("Executing command", "command", name, "args", args)

	switch name {
	case "quit", "exit":
		return true, nil
	case "help":
		s.infoColor.Fprintln(s.out, usage) //nolint:errcheck
		return false, nil
	case "list":
		return false, s.list()
	case "balance":
		return false, s.balance(args)
	case "create", "deposit", "withdraw":
		return false, s.moneyCommand(name, args)
	case "transfer":
		return false, s.transfer(args)
	default:
		return false, fmt.Errorf("%w %q, type help for usage", ErrUnknownCommand, name)
	}
}

func (s *Shell) balance(args []string) error {
	cmd := ownerCommand{}
	if len(args) == 1 {
		cmd.Owner = args[0]
	}
	if err := s.check(&cmd, len(args) == 1, "balance <owner>"); err != nil {
		return err
	}
	acc, err := s.app.User(cmd.Owner).Account()
	if err != nil {
		return err
	}
	s.printBalance(acc.Snapshot())
	return nil
}

func (s *Shell) moneyCommand(name string, args []string) error {
	cmd := amountCommand{}
	if len(args) == 2 {
		cmd.Owner, cmd.Amount = args[0], args[1]
	}
	if err := s.check(&cmd, len(args) == 2, name+" <owner> <amount>"); err != nil {
		return err
	}
	amount, err := s.parseAmount(cmd.Amount)
	if err != nil {
		return err
	}

	u := s.app.User(cmd.Owner)
	if name == "create" {
		acc, err := u.CreateAccount(amount)
		if err != nil {
			return err
		}
		s.okColor.Fprint(s.out, "created ") //nolint:errcheck
		s.printBalance(acc.Snapshot())
		return nil
	}

	acc, err := u.Account()
	if err != nil {
		return err
	}
	if name == "deposit" {
		acc, err = acc.Deposit(amount)
	} else {
		acc, err = acc.Withdraw(amount)
	}
	if err != nil {
		return err
	}
	s.printBalance(acc.Snapshot())
	return nil
}

func (s *Shell) transfer(args []string) error {
	cmd := transferCommand{}
	if len(args) == 3 {
		cmd.From, cmd.To, cmd.Amount = args[0], args[1], args[2]
	}
	if err := s.check(&cmd, len(args) == 3, "transfer <from> <to> <amount>"); err != nil {
		return err
	}
	amount, err := s.parseAmount(cmd.Amount)
	if err != nil {
		return err
	}

	from, err := s.app.User(cmd.From).Account()
	if err != nil {
		return err
	}
	to := s.app.User(cmd.To)
	if _, err := from.Transfer(to, amount); err != nil {
		return err
	}
	dest, err := to.Account()
	if err != nil {
		return err
	}
	s.printBalance(from.Snapshot())
	s.printBalance(dest.Snapshot())
	return nil
}

func (s *Shell) list() error {
	owners := s.app.Deps.Store.Owners()
	if len(owners) == 0 {
		s.infoColor.Fprintln(s.out, "no accounts") //nolint:errcheck
		return nil
	}
	for _, owner := range owners {
		acc, err := s.app.Deps.Store.Lookup(owner)
		if err != nil {
			return err
		}
		s.printBalance(acc)
	}
	return nil
}

func (s *Shell) parseAmount(raw string) (money.Money, error) {
	amount, err := money.Parse(raw)
	if err != nil {
		return money.Money{}, err
	}
	if err := amount.ValidateScale(s.maxDecimals); err != nil {
		return money.Money{}, err
	}
	return amount, nil
}

func (s *Shell) printBalance(acc account.Account) {
	fmt.Fprintf(s.out, "%s balance=", acc.Owner())
	s.okColor.Fprintln(s.out, acc.Balance().String()) //nolint:errcheck
}

// check validates the argument count and the parsed command struct.
func (s *Shell) check(cmd any, countOK bool, syntax string) error {
	if !countOK {
		return fmt.Errorf("%w: usage: %s", ErrInvalidArguments, syntax)
	}
	if err := s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArguments, describe(err))
	}
	return nil
}
