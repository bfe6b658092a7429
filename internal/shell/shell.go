package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/logging"
	"github.com/GriffinCanCode/fileshell/internal/shared/paths"
	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrExit is returned by the .exit command to stop the loop
var ErrExit = errors.New("exit")

const maxLineSize = 1024 * 1024

// Options configures a shell
type Options struct {
	In       io.Reader
	Out      io.Writer
	StartDir string
	Prompt   string
	Logger   *logging.Logger
}

// command pairs a tool definition with its handler
type command struct {
	tool    types.Tool
	handler types.Handler
}

// Shell reads one command per line and dispatches it against its session
type Shell struct {
	in       *lineReader
	out      io.Writer
	prompt   string
	session  *types.Session
	commands map[string]command
	services []types.Service
	log      *logging.Logger
}

// New creates a shell whose session starts in opts.StartDir. Only the
// built-in commands (help, .exit) are registered.
func New(opts Options) *Shell {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}

	id := uuid.NewString()
	s := &Shell{
		in:     newLineReader(opts.In, maxLineSize),
		out:    opts.Out,
		prompt: opts.Prompt,
		session: &types.Session{
			ID:         id,
			CurrentDir: paths.Resolve(opts.StartDir),
			Out:        opts.Out,
		},
		commands: make(map[string]command),
		log:      opts.Logger.Named("shell").With(zap.String("session", id)),
	}

	// Built-ins never collide.
	_ = s.Register(&builtins{shell: s})
	return s
}

// Register adds every tool of p to the command table. It fails, leaving
// the table untouched, if a tool has no handler or a name is taken.
func (s *Shell) Register(p types.Provider) error {
	def := p.Definition()
	handlers := p.Handlers()

	for _, tool := range def.Tools {
		if _, ok := handlers[tool.ID]; !ok {
			return fmt.Errorf("service %s: no handler for %s", def.ID, tool.ID)
		}
		if _, taken := s.commands[tool.ID]; taken {
			return fmt.Errorf("service %s: command %s already registered", def.ID, tool.ID)
		}
	}

	for _, tool := range def.Tools {
		s.commands[tool.ID] = command{tool: tool, handler: handlers[tool.ID]}
	}
	s.services = append(s.services, def)

	s.log.Debug("Registered service", zap.String("service", def.ID), zap.Int("commands", len(def.Tools)))
	return nil
}

// CurrentDir returns the session's current directory
func (s *Shell) CurrentDir() string {
	return s.session.CurrentDir
}

// Execute parses and runs one line. It returns ErrExit for .exit.
func (s *Shell) Execute(ctx context.Context, line string) error {
	inv, err := Parse(line)
	if err != nil {
		return err
	}
	if inv.Name == "" {
		return nil
	}

	cmd, ok := s.commands[inv.Name]
	if !ok {
		return types.UnknownCommand(inv.Name)
	}

	s.log.Debug("Dispatching command",
		zap.String("command", inv.Name),
		zap.Strings("args", inv.Args),
		zap.String("cwd", s.session.CurrentDir))

	return cmd.handler(ctx, s.session, inv.Args)
}

// readResult is one line handed from the reader goroutine to the loop
type readResult struct {
	line string
	err  error
}

// Run is the read-eval-print loop. It returns nil after .exit, at end of
// input or once ctx is cancelled, and only returns an error if reading
// input fails. A cancelled ctx lets the running command stop and clean up
// before the loop ends.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to fileshell!")
	s.printCurrentDir()
	s.printPrompt()

	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	lines := make(chan readResult)
	go s.readLines(readCtx, lines)

	for {
		var res readResult
		select {
		case <-ctx.Done():
			return s.interrupted()
		case res = <-lines:
		}

		if errors.Is(res.err, io.EOF) {
			s.log.Debug("End of input")
			fmt.Fprintln(s.out)
			s.goodbye()
			return nil
		}
		if res.err != nil && !types.IsKind(res.err, types.KindInvalidInput) {
			s.log.Error("Input failed", zap.Error(res.err))
			return fmt.Errorf("read input: %w", res.err)
		}
		if res.err == nil && strings.TrimSpace(res.line) == "" {
			s.printPrompt()
			continue
		}

		err := res.err
		if err == nil {
			err = s.Execute(ctx, res.line)
		}
		if errors.Is(err, ErrExit) {
			s.goodbye()
			return nil
		}
		if err != nil {
			s.report(err)
		}
		if ctx.Err() != nil {
			return s.interrupted()
		}

		s.printCurrentDir()
		s.printPrompt()
	}
}

// readLines feeds input lines to the loop until input fails or ctx is done
func (s *Shell) readLines(ctx context.Context, lines chan<- readResult) {
	for {
		line, err := s.in.ReadLine()
		select {
		case lines <- readResult{line: line, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil && !types.IsKind(err, types.KindInvalidInput) {
			return
		}
	}
}

// interrupted ends the session after cancellation
func (s *Shell) interrupted() error {
	s.log.Debug("Interrupted")
	fmt.Fprintln(s.out)
	s.goodbye()
	return nil
}

// report prints the failure category and its detail
func (s *Shell) report(err error) {
	kind := types.KindOf(err)
	s.log.Info("Command failed", zap.String("kind", kind.String()), zap.Error(err))

	switch kind {
	case types.KindUnknownCommand, types.KindInvalidInput:
		fmt.Fprintln(s.out, "Invalid input")
	default:
		fmt.Fprintln(s.out, "Operation failed")
	}
	fmt.Fprintln(s.out, err.Error())
}

func (s *Shell) printCurrentDir() {
	fmt.Fprintf(s.out, "You are currently in %s\n", s.session.CurrentDir)
}

func (s *Shell) printPrompt() {
	fmt.Fprint(s.out, s.prompt)
}

func (s *Shell) goodbye() {
	fmt.Fprintln(s.out, "Goodbye!")
}
