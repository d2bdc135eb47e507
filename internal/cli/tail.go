package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"foodlog/internal/amqp"
	applog "foodlog/internal/log"
)

// NewTailCommand creates the tail command.
func NewTailCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tail",
		Short: "Print entries as they are logged",
		Long: `Consume entry-logged events from the AMQP feed and print one line
per entry. Requires AMQP_URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runTail(ctx, rootOpts, cmd.OutOrStdout())
		},
	}
}

func runTail(ctx context.Context, opts *RootOptions, out io.Writer) error {
	cfg, err := LoadAndValidateConfig(opts)
	if err != nil {
		return err
	}
	if !cfg.AMQPEnabled() {
		return errors.New("tail needs AMQP_URL to be set")
	}
	logger, err := SetupLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	logger = logger.WithComponent(applog.ComponentAMQP)

	client, err := amqp.NewClient(ctx, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("Tailing entry feed", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	err = client.ConsumeEntryLogged(ctx, printEntry(out))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printEntry writes one line per consumed event.
func printEntry(out io.Writer) func(*amqp.EntryLoggedMessage) error {
	return func(msg *amqp.EntryLoggedMessage) error {
		e, err := msg.Entry()
		if err != nil {
			// reported, not requeued forever
			_, werr := fmt.Fprintf(out, "%s\t%s\t%d\t(invalid: %v)\n",
				msg.Timestamp.Format("15:04:05"), msg.Food, msg.Calories, err)
			return werr
		}
		_, err = fmt.Fprintf(out, "%s\t%s\t%s\t%d kcal\n",
			msg.Timestamp.Format("15:04:05"), e.Date, e.Food, e.Calories)
		return err
	}
}
