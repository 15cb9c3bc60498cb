package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/calculon-go/internal/cli/repl"
)

// REPLCommand returns the interactive mode command.
func REPLCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Start an interactive session",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "history-file",
				Usage: "History file (empty disables persistence)",
				Value: repl.DefaultHistoryFile(),
			},
		},
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	client, err := Connect(c)
	if err != nil {
		return err
	}
	defer client.Close()

	fmt.Fprintf(c.App.Writer, "connected to %s\n", client.Addr())
	if !ParseGlobalFlags(c).Greeting {
		fmt.Fprintln(c.App.Writer, client.Greeting())
	}

	r := repl.New(client,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithHistory(repl.NewHistory(c.String("history-file"))),
	)
	return r.Run()
}
