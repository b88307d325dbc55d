package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/selftimer/countdown-go/pkg/countdown"
)

// session drives the interactive command loop around one Countdown.
type session struct {
	cd          *countdown.Countdown
	rl          *readline.Instance
	defaultFrom time.Duration
}

// newSession creates the readline loop and wires the countdown's
// observer callbacks to its output.
func newSession(cd *countdown.Countdown, defaultFrom time.Duration) (*session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "timer> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := &session{
		cd:          cd,
		rl:          rl,
		defaultFrom: defaultFrom,
	}

	cd.OnStateChange(func(oldState, newState countdown.State) {
		fmt.Fprintf(rl.Stdout(), "state: %s -> %s\n", oldState, newState)
	})
	cd.OnTick(func(remaining time.Duration) {
		if cd.IsRunning() {
			fmt.Fprintf(rl.Stdout(), "  %.1fs\n", remaining.Seconds())
		}
	})

	return s, nil
}

// Run starts the interactive command loop.
func (s *session) Run() {
	defer s.rl.Close()

	s.printHelp()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if !s.dispatch(input) {
			return
		}
	}
}

// dispatch handles one command line. Returns false to exit the loop.
func (s *session) dispatch(input string) bool {
	fields := strings.Fields(input)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "start":
		s.cmdStart(args)
	case "restart":
		s.cd.Restart()
	case "stop":
		s.cd.Stop()
	case "reset":
		s.cd.Reset()
	case "status":
		s.cmdStatus()
	case "help":
		s.printHelp()
	case "exit", "quit":
		fmt.Fprintln(s.rl.Stdout(), "Exiting...")
		return false
	default:
		fmt.Fprintf(s.rl.Stdout(), "Unknown command %q, try 'help'\n", cmd)
	}
	return true
}

// cmdStart starts a countdown, optionally with an explicit length.
func (s *session) cmdStart(args []string) {
	if len(args) == 0 {
		s.cd.Start()
		return
	}

	from, err := time.ParseDuration(args[0])
	if err != nil {
		fmt.Fprintf(s.rl.Stdout(), "Invalid duration %q: %v\n", args[0], err)
		return
	}
	s.cd.Start(countdown.WithCountdownFrom(from))
}

// cmdStatus prints the observable countdown state.
func (s *session) cmdStatus() {
	out := s.rl.Stdout()
	fmt.Fprintf(out, "state:     %s\n", s.cd.State())
	fmt.Fprintf(out, "remaining: %.1fs\n", s.cd.Remaining().Seconds())
	if runID := s.cd.RunID(); runID != "" {
		fmt.Fprintf(out, "run:       %s\n", runID)
	}
}

func (s *session) printHelp() {
	fmt.Fprintf(s.rl.Stdout(), `Commands:
  start [duration]  Start the countdown (default %s)
  restart           Start over with fresh defaults
  stop              Stop the countdown
  reset             Return to READY
  status            Show state and remaining time
  help              Show this help
  exit              Quit
`, s.defaultFrom)
}
