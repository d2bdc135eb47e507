package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	applog "foodlog/internal/log"
	"foodlog/internal/navigation"
	"foodlog/internal/services"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Drive the calorie counter from the terminal",
		Long: `Read UI events from standard input, one per line:

  food <text>         stage the food name
  calories <digits>   stage the calorie count (non-digits are ignored)
  send                log the staged entry for today
  menu open|close     show or hide the navigation menu
  page <name>         go to Homepage or Calendar
  show                print the current page
  quit                exit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadAndValidateConfig(rootOpts)
			if err != nil {
				return err
			}
			// stdout belongs to the REPL
			logger, err := SetupLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			session, cleanup, err := InitSession(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			return NewREPL(session, cmd.OutOrStdout(), logger).Run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// REPL turns input lines into session events.
type REPL struct {
	session *services.Session
	out     io.Writer
	logger  *applog.Logger
	printer *message.Printer
}

func NewREPL(session *services.Session, out io.Writer, logger *applog.Logger) *REPL {
	return &REPL{
		session: session,
		out:     out,
		logger:  logger.WithComponent(applog.ComponentREPL),
		printer: message.NewPrinter(language.English),
	}
}

// maxLineBytes is the longest command line Run accepts.
const maxLineBytes = 1 << 20

// Run reads commands from in until EOF, quit, or ctx is done.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		quit, err := r.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute applies one command line. Input rejections are silent; only
// infrastructure failures are returned.
func (r *REPL) Execute(ctx context.Context, line string) (quit bool, err error) {
	cmd, arg := splitCommand(line)

	switch cmd {
	case "":
	case "food":
		r.session.SetFood(arg)
	case "calories":
		r.session.SetCalories(arg)
	case "send":
		submitted, err := r.session.Submit(ctx)
		if err != nil {
			return false, err
		}
		if submitted {
			fmt.Fprintln(r.out, "logged")
		}
	case "menu":
		switch strings.TrimSpace(arg) {
		case "open":
			r.session.OpenMenu()
		case "close":
			r.session.CloseMenu()
		default:
			fmt.Fprintln(r.out, "usage: menu open|close")
		}
	case "page":
		page, err := navigation.ParsePage(strings.TrimSpace(arg))
		if err != nil {
			fmt.Fprintln(r.out, err)
			return false, nil
		}
		if err := r.session.Navigate(page); err != nil {
			fmt.Fprintln(r.out, err)
			return false, nil
		}
		r.logger.DebugContext(ctx, "Navigated", applog.FieldPage, page.String())
	case "show":
		return false, r.show(ctx)
	case "help":
		fmt.Fprintln(r.out, "commands: food, calories, send, menu, page, show, quit")
	case "quit", "exit":
		return true, nil
	default:
		fmt.Fprintf(r.out, "unknown command %q (try help)\n", cmd)
	}
	return false, nil
}

// splitCommand separates the command word from its argument. The argument
// is kept verbatim after the single separating space.
func splitCommand(line string) (string, string) {
	line = strings.TrimRight(line, "\r\n")
	trimmed := strings.TrimLeft(line, " \t")
	cmd, arg, _ := strings.Cut(trimmed, " ")
	return strings.ToLower(strings.TrimSpace(cmd)), arg
}

func (r *REPL) show(ctx context.Context) error {
	v, err := r.session.View(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "== %s ==\n", v.Title)
	if v.MenuOpen {
		names := make([]string, 0, len(navigation.Pages()))
		for _, p := range navigation.Pages() {
			names = append(names, p.String())
		}
		fmt.Fprintf(r.out, "menu: %s\n", strings.Join(names, " | "))
	}

	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	switch v.Page {
	case navigation.Calendar:
		for _, d := range v.Calendar {
			r.printer.Fprintf(tw, "%s\t%d\n", d.Date, d.Calories)
		}
	default:
		fmt.Fprintf(tw, "food:\t%s\n", v.Food)
		fmt.Fprintf(tw, "calories:\t%s\n", v.Calories)
		r.printer.Fprintf(tw, "Total amount of calories consumed:\t%d\n", v.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	tw = tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Consumed\tAmount of Calories\tDate")
	for _, e := range v.Entries {
		r.printer.Fprintf(tw, "%s\t%d\t%s\n", e.Food, e.Calories, e.Date)
	}
	return tw.Flush()
}
