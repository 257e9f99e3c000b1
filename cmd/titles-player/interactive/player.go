// Package interactive provides the interactive command-line interface
// for titles-player.
package interactive

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/bitlet-dev/titles-go/pkg/playback"
	"github.com/bitlet-dev/titles-go/pkg/sequence"
)

// Controller is the part of the playback engine the console drives.
type Controller interface {
	Start(target string, seq *sequence.Sequence) error
	StopWithClear(target string, clear bool) bool
	Session(target string) (playback.SessionInfo[string], bool)
	ActiveTargets() []string
}

// Player handles interactive mode for titles-player.
type Player struct {
	rl  *readline.Instance
	out io.Writer

	ctrl    Controller
	targets []string

	// Sequence played by "play" when no file is given.
	current     *sequence.Sequence
	currentPath string

	load func(path string) (*sequence.Sequence, error)
}

// New creates a new interactive player. seq and path are the initially
// loaded sequence; either may be empty.
func New(seq *sequence.Sequence, path string, targets []string) (*Player, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "titles> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	p := newPlayer(rl.Stdout(), seq, path, targets)
	p.rl = rl
	return p, nil
}

func newPlayer(out io.Writer, seq *sequence.Sequence, path string, targets []string) *Player {
	return &Player{
		out:         out,
		targets:     targets,
		current:     seq,
		currentPath: path,
		load:        sequence.Load,
	}
}

// Attach sets the engine the console controls. It must be called before Run.
func (p *Player) Attach(ctrl Controller) {
	p.ctrl = ctrl
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for title and log output to avoid interfering with the prompt.
func (p *Player) Stdout() io.Writer {
	return p.out
}

// OnStop reports a finished session on the console. It matches
// playback.Config.OnStop.
func (p *Player) OnStop(target string, reason playback.StopReason) {
	if reason == playback.StopFinished {
		fmt.Fprintf(p.out, "[%s] sequence finished\n", target)
	}
}

// Run starts the interactive command loop.
func (p *Player) Run(ctx context.Context, cancel context.CancelFunc) {
	defer p.rl.Close()

	p.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := p.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(p.out, "Exiting...")
			cancel()
			return
		}

		if p.execute(line) {
			cancel()
			return
		}
	}
}

// execute runs one command line. It returns true when the user asked to quit.
func (p *Player) execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		p.printHelp()

	case "play", "p":
		p.cmdPlay(args)

	case "stop", "s":
		p.cmdStop(args)

	case "status", "st":
		p.cmdStatus()

	case "show", "ls":
		p.cmdShow(args)

	case "load":
		p.cmdLoad(args)

	case "loops":
		p.cmdLoops(args)

	case "quit", "exit", "q":
		fmt.Fprintln(p.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(p.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (p *Player) printHelp() {
	fmt.Fprintln(p.out, `
Title Player Commands:
  Playback:
    play [target|all] [file] - Play the current (or given) sequence
    stop [target|all] [keep] - Stop playback; 'keep' leaves the title visible
    status                   - Show active sessions

  Sequence:
    load <file>              - Load a sequence file as the current sequence
    show [index]             - List the current sequence (or one title)
    loops <n>                - Set the loop count (0 disables looping)

  Other:
    help                     - Show this help
    quit                     - Exit`)
}

// resolveTargets expands "all" (or nothing) to the configured targets.
func (p *Player) resolveTargets(arg string) []string {
	if arg == "" || arg == "all" {
		return p.targets
	}
	return []string{arg}
}

func (p *Player) cmdPlay(args []string) {
	var target string
	if len(args) > 0 {
		target = args[0]
	}

	seq := p.current
	if len(args) > 1 {
		loaded, err := p.load(args[1])
		if err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			return
		}
		seq = loaded
	}

	if seq == nil || seq.Len() == 0 {
		fmt.Fprintln(p.out, "No sequence loaded (use 'load <file>')")
		return
	}

	for _, t := range p.resolveTargets(target) {
		if err := p.ctrl.Start(t, seq); err != nil {
			fmt.Fprintf(p.out, "Error: %s: %v\n", t, err)
			continue
		}
		fmt.Fprintf(p.out, "Playing %d titles on %s\n", seq.Len(), t)
	}
}

func (p *Player) cmdStop(args []string) {
	var target string
	clear := true
	for _, arg := range args {
		if arg == "keep" {
			clear = false
			continue
		}
		target = arg
	}

	targets := p.resolveTargets(target)
	if target == "" || target == "all" {
		targets = p.ctrl.ActiveTargets()
		sort.Strings(targets)
	}

	stopped := 0
	for _, t := range targets {
		if p.ctrl.StopWithClear(t, clear) {
			stopped++
			fmt.Fprintf(p.out, "Stopped %s\n", t)
		}
	}
	if stopped == 0 {
		fmt.Fprintln(p.out, "Nothing playing")
	}
}

func (p *Player) cmdStatus() {
	targets := p.ctrl.ActiveTargets()
	if len(targets) == 0 {
		fmt.Fprintln(p.out, "No active sessions")
		return
	}
	sort.Strings(targets)

	fmt.Fprintf(p.out, "Active sessions: %d\n", len(targets))
	for _, t := range targets {
		info, ok := p.ctrl.Session(t)
		if !ok {
			continue
		}
		position := "starting"
		if info.Index >= 0 {
			position = fmt.Sprintf("title %d/%d, loop %d", info.Index+1, info.Titles, info.Loop)
		}
		fmt.Fprintf(p.out, "  %-12s %s (running %s)\n", t, position,
			time.Since(info.StartedAt).Round(time.Second))
	}
}

func (p *Player) cmdShow(args []string) {
	if p.current == nil {
		fmt.Fprintln(p.out, "No sequence loaded")
		return
	}

	if len(args) > 0 {
		i, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(p.out, "Invalid index: %s\n", args[0])
			return
		}
		t, err := p.current.Get(i)
		if err != nil {
			fmt.Fprintf(p.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(p.out, "%d: %s\n", i, t)
		return
	}

	name := p.currentPath
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(p.out, "Sequence %s: %d titles", name, p.current.Len())
	if p.current.IsLooping() {
		fmt.Fprintf(p.out, ", looping from %d", p.current.LoopPoint())
		if p.current.LoopCount() != sequence.UnboundedLoops {
			fmt.Fprintf(p.out, " x%d", p.current.LoopCount())
		}
	}
	fmt.Fprintln(p.out)
	for i, t := range p.current.Titles() {
		fmt.Fprintf(p.out, "  %d: %s\n", i, t)
	}
}

func (p *Player) cmdLoad(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(p.out, "Usage: load <file>")
		return
	}

	seq, err := p.load(args[0])
	if err != nil {
		fmt.Fprintf(p.out, "Error: %v\n", err)
		return
	}
	p.current = seq
	p.currentPath = args[0]
	fmt.Fprintf(p.out, "Loaded %d titles from %s\n", seq.Len(), args[0])
}

// cmdLoops edits the current sequence in place, so sessions already playing
// it pick up the change at their next loop.
func (p *Player) cmdLoops(args []string) {
	if p.current == nil {
		fmt.Fprintln(p.out, "No sequence loaded")
		return
	}
	if len(args) < 1 {
		fmt.Fprintln(p.out, "Usage: loops <n>")
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintf(p.out, "Invalid loop count: %s\n", args[0])
		return
	}
	ApplyLoops(p.current, n)
	fmt.Fprintf(p.out, "Loop count set to %d\n", n)
}

// ApplyLoops sets seq to repeat n more times after the first pass.
// Zero disables looping.
func ApplyLoops(seq *sequence.Sequence, n int) {
	seq.SetLooping(n > 0).SetLoopCount(n)
}
