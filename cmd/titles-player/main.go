// Command titles-player plays title sequences to one or more text targets.
//
// Each target renders titles as lines on standard output. Playback follows
// the sequence's timing at 20 ticks per second, loops as the sequence asks,
// and clears every target when the sequence finishes.
//
// Usage:
//
//	titles-player [flags]
//
// Flags:
//
//	-sequence string    Sequence file (.yaml, .yml or .toml)
//	-targets string     Comma-separated target names (default "console")
//	-scheduler string   Scheduler: loop or timer (default "loop")
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-event-log string   File path for playback event logging (CBOR format)
//	-loops int          Override the sequence's loop count (-1 keeps it)
//	-interactive        Enable interactive command mode
//
// Defaults come from TITLES_TARGETS, TITLES_SCHEDULER, TITLES_LOG_LEVEL and
// TITLES_EVENT_LOG when set.
//
// Examples:
//
//	# Play a sequence once on the console
//	titles-player -sequence intro.yaml
//
//	# Play on two targets, looping three times, with an event log
//	titles-player -sequence intro.toml -targets lobby,stage -loops 3 -event-log play.tlog
//
//	# Drive playback by hand
//	titles-player -sequence intro.yaml -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/bitlet-dev/titles-go/cmd/titles-player/interactive"
	"github.com/bitlet-dev/titles-go/internal/config"
	"github.com/bitlet-dev/titles-go/pkg/log"
	"github.com/bitlet-dev/titles-go/pkg/playback"
	"github.com/bitlet-dev/titles-go/pkg/scheduler"
	"github.com/bitlet-dev/titles-go/pkg/sequence"
	"github.com/bitlet-dev/titles-go/pkg/sink"
)

// Options holds the resolved command-line configuration.
type Options struct {
	SequenceFile string
	Targets      []string
	Scheduler    string
	LogLevel     string
	Level        slog.Level
	EventLog     string
	Loops        int
	Interactive  bool
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseOptions reads environment defaults and then flags.
func parseOptions(args []string) (Options, error) {
	env, err := config.Load()
	if err != nil {
		return Options{}, err
	}

	fs := flag.NewFlagSet("titles-player", flag.ContinueOnError)

	var opts Options
	var targets string
	fs.StringVar(&opts.SequenceFile, "sequence", "", "Sequence file (.yaml, .yml or .toml)")
	fs.StringVar(&targets, "targets", strings.Join(env.Targets, ","), "Comma-separated target names")
	fs.StringVar(&opts.Scheduler, "scheduler", env.Scheduler, "Scheduler: loop or timer")
	fs.StringVar(&opts.LogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&opts.EventLog, "event-log", env.EventLog, "File path for playback event logging (CBOR format)")
	fs.IntVar(&opts.Loops, "loops", -1, "Override the sequence's loop count (-1 keeps it)")
	fs.BoolVar(&opts.Interactive, "interactive", false, "Enable interactive command mode")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	resolved := config.Config{
		LogLevel:  opts.LogLevel,
		EventLog:  opts.EventLog,
		Scheduler: opts.Scheduler,
		Targets:   strings.Split(targets, ","),
	}
	if err := resolved.Validate(); err != nil {
		return Options{}, err
	}
	opts.Targets = resolved.CleanTargets()
	opts.Level = resolved.Level()

	if opts.SequenceFile == "" && !opts.Interactive {
		return Options{}, errors.New("-sequence is required unless -interactive is set")
	}
	return opts, nil
}

func run(opts Options) error {
	var seq *sequence.Sequence
	if opts.SequenceFile != "" {
		loaded, err := sequence.Load(opts.SequenceFile)
		if err != nil {
			return err
		}
		if opts.Loops >= 0 {
			interactive.ApplyLoops(loaded, opts.Loops)
		}
		seq = loaded
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out io.Writer = os.Stdout
	var console *interactive.Player
	if opts.Interactive {
		p, err := interactive.New(seq, opts.SequenceFile, opts.Targets)
		if err != nil {
			return err
		}
		console = p
		// Route all output through readline to avoid interfering with input
		out = p.Stdout()
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: opts.Level}))

	eventLogger, closeEvents, err := openEventLog(opts.EventLog, logger)
	if err != nil {
		return err
	}
	defer closeEvents()

	sched, stopSched := newScheduler(ctx, opts.Scheduler)
	defer stopSched()

	remaining := newCountdown(len(opts.Targets), cancel)
	onStop := func(target string, reason playback.StopReason) {
		logger.Info("Session ended", "target", target, "reason", reason)
		if console != nil {
			console.OnStop(target, reason)
			return
		}
		remaining.done(target)
	}

	engine, err := playback.NewEngine(playback.Config[string]{
		Scheduler:   sched,
		Sink:        sink.NewWriterSink[string](out),
		Logger:      logger,
		EventLogger: eventLogger,
		OnStop:      onStop,
	})
	if err != nil {
		return err
	}

	if console != nil {
		console.Attach(engine)
		go console.Run(ctx, cancel)
	} else {
		started, err := playAll(engine, seq, opts.Targets)
		if err != nil {
			return err
		}
		if !started {
			logger.Warn("Sequence is empty, nothing to play", "file", opts.SequenceFile)
			return nil
		}
		logger.Info("Playing", "file", opts.SequenceFile, "titles", seq.Len(), "targets", opts.Targets)
	}

	// Wait for shutdown signal or context cancellation
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("Received signal", "signal", sig)
	case <-ctx.Done():
		// Every session finished or the console quit
	}

	engine.Shutdown(true)
	logger.Debug("Goodbye")
	return nil
}

// playAll starts seq on every target. It reports false without starting
// anything when seq has no titles.
func playAll(engine *playback.Engine[string], seq *sequence.Sequence, targets []string) (bool, error) {
	if seq.Len() == 0 {
		return false, nil
	}
	for _, target := range targets {
		if err := engine.Start(target, seq); err != nil {
			return false, err
		}
	}
	return true, nil
}

// openEventLog builds the event logger: debug output through slog, plus a
// CBOR file when path is set.
func openEventLog(path string, logger *slog.Logger) (log.Logger, func(), error) {
	adapter := log.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}

	file, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open event log: %w", err)
	}
	closeFn := func() {
		if err := file.Close(); err != nil {
			logger.Warn("Closing event log", "error", err)
		}
	}
	return log.NewMultiLogger(adapter, file), closeFn, nil
}

// newScheduler creates the named scheduler and a function releasing it.
func newScheduler(ctx context.Context, kind string) (scheduler.Scheduler, func()) {
	if kind == config.SchedulerTimer {
		s := scheduler.NewTimerScheduler()
		return s, s.CancelAll
	}

	loop := scheduler.NewLoop()
	loopCtx, stop := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(loopCtx)
	}()
	return loop, func() {
		stop()
		<-done
	}
}

// countdown cancels once every target has ended.
type countdown struct {
	mu      sync.Mutex
	pending int
	seen    map[string]bool
	cancel  context.CancelFunc
}

func newCountdown(n int, cancel context.CancelFunc) *countdown {
	return &countdown{pending: n, seen: make(map[string]bool), cancel: cancel}
}

func (c *countdown) done(target string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen[target] {
		return
	}
	c.seen[target] = true
	c.pending--
	if c.pending <= 0 {
		c.cancel()
	}
}
