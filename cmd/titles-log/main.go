// Command titles-log is a tool for viewing and analyzing title playback event logs.
//
// Log files are written by titles-player when run with the -event-log flag
// (or TITLES_EVENT_LOG).
//
// Usage:
//
//	titles-log <command> [flags] <file.tlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	titles-log view play.tlog
//
//	# View only what was shown on one target
//	titles-log view -target lobby -category display play.tlog
//
//	# Export to CSV
//	titles-log export -format csv -o play.csv play.tlog
//
//	# Keep one session's events
//	titles-log filter -session 5f1c2a9e-... -o session.tlog play.tlog
//
//	# Show statistics
//	titles-log stats play.tlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bitlet-dev/titles-go/cmd/titles-log/commands"
)

const usage = `titles-log - Title Playback Log Analyzer

Usage:
  titles-log <command> [flags] <file.tlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "titles-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// logPath returns the single positional argument or exits with usage.
func logPath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `titles-log view - View log file in human-readable format

Usage:
  titles-log view [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	target := fs.String("target", "", "Filter by target")
	category := fs.String("category", "", "Filter by category (display, state, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	filter := commands.ViewFilter{Target: *target}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fail(err)
		}
		filter.Category = &c
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `titles-log export - Export log file to JSON or CSV format

Usage:
  titles-log export [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `titles-log filter - Filter log file and write to new file

Usage:
  titles-log filter [flags] <file.tlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	session := fs.String("session", "", "Filter by session ID")
	target := fs.String("target", "", "Filter by target")
	timeStart := fs.String("time-start", "", "Filter by start time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Filter by end time (RFC3339)")
	category := fs.String("category", "", "Filter by category (display, state, error)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	count, err := commands.RunFilter(path, commands.FilterOptions{
		Output:    *output,
		SessionID: *session,
		Target:    *target,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
		Category:  *category,
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("Filtered %d events to %s\n", count, *output)
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `titles-log stats - Show statistics about the log file

Usage:
  titles-log stats <file.tlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
