package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/calculon-go/internal/cli/connection"
)

// AddCommand returns the add command.
func AddCommand() *cli.Command {
	return updateCommand("add", "ADD", "Add X to the shared value")
}

// SubtractCommand returns the subtract command.
func SubtractCommand() *cli.Command {
	return updateCommand("subtract", "SUBTRACT", "Subtract X from the shared value")
}

// PowerCommand returns the power command.
func PowerCommand() *cli.Command {
	return updateCommand("power", "POWER", "Raise the shared value to the power X")
}

// ShowCommand returns the show command.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the shared value",
		Action: func(c *cli.Context) error {
			if c.NArg() != 0 {
				return fmt.Errorf("show takes no arguments")
			}
			return send(c, "SHOW")
		},
	}
}

// updateCommand builds a one-operand command. Flag parsing is skipped so
// negative operands such as -3 reach the server unchanged.
func updateCommand(name, verb, usage string) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       "X",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("%s requires exactly one argument", name)
			}
			return send(c, verb+" "+c.Args().First())
		},
	}
}

func send(c *cli.Context, line string) error {
	client, err := Connect(c)
	if err != nil {
		return err
	}
	defer client.Close()

	resp, err := client.Execute(line)
	if err != nil {
		if errors.Is(err, connection.ErrSessionClosed) {
			return fmt.Errorf("server rejected %q: %w", line, err)
		}
		return err
	}

	if strings.HasPrefix(resp, "Unknown command:") {
		return errors.New(resp)
	}

	fmt.Fprintln(c.App.Writer, resp)
	return nil
}
