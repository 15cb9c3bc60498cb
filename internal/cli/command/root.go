package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/calculon-go/internal/cli/connection"
	"github.com/yndnr/calculon-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "calculon-cli",
		Usage:   "Client for the calculon shared-value server",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			AddCommand(),
			SubtractCommand(),
			PowerCommand(),
			ShowCommand(),
			REPLCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "calculon server address",
			EnvVars: []string{"CALCULON_SERVER"},
			Value:   connection.DefaultAddress,
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Aliases: []string{"t"},
			Usage:   "Connect and per-command timeout (0 disables)",
			Value:   5 * time.Second,
		},
		&cli.BoolFlag{
			Name:  "greeting",
			Usage: "Print the server greeting after connecting",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Server   string
	Timeout  time.Duration
	Greeting bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Server:   c.String("server"),
		Timeout:  c.Duration("timeout"),
		Greeting: c.Bool("greeting"),
	}
}

// Connect opens a session using the global flags.
func Connect(c *cli.Context) (*connection.Client, error) {
	flags := ParseGlobalFlags(c)

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.Timeout)
		defer cancel()
	}

	client, err := connection.Dial(ctx, flags.Server, connection.WithTimeout(flags.Timeout))
	if err != nil {
		return nil, err
	}

	if flags.Greeting {
		fmt.Fprintln(c.App.Writer, client.Greeting())
	}
	return client, nil
}
