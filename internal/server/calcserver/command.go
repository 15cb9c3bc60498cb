package calcserver

import (
	"strings"

	"github.com/yndnr/calculon-go/internal/core/cell"
	"github.com/yndnr/calculon-go/internal/telemetry/metric"
)

// commandLabelOther is the metric label for unrecognised command names,
// keeping label cardinality bounded.
const commandLabelOther = "OTHER"

// CommandHandler parses command lines and applies them to the shared cell.
type CommandHandler struct {
	cell    *cell.Cell
	metrics *metric.Registry
}

// NewCommandHandler creates a new CommandHandler.
// Diagnostics go to the logger of the Conn being handled.
func NewCommandHandler(c *cell.Cell, metrics *metric.Registry) *CommandHandler {
	return &CommandHandler{
		cell:    c,
		metrics: metrics,
	}
}

// Handle processes one input line and buffers at most one response line
// on the connection's writer.
//
// Blank lines and argument count mismatches produce no response and a nil
// error. A non-numeric operand returns an error wrapping ErrInvalidOperand;
// the caller must end the session.
func (h *CommandHandler) Handle(conn *Conn, line string) error {
	conn.logger().Debug("received line", "line", strings.TrimRight(line, "\r\n"))

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	name, args := fields[0], fields[1:]

	switch name {
	case CmdAdd:
		return h.handleUpdate(conn, name, args, "+=", h.cell.Add)
	case CmdSubtract:
		return h.handleUpdate(conn, name, args, "-=", h.cell.Subtract)
	case CmdPower:
		return h.handleUpdate(conn, name, args, "^=", h.cell.Power)
	case CmdShow:
		return h.handleShow(conn, args)
	default:
		h.metrics.ObserveCommand(commandLabelOther, metric.ResultUnknown)
		return WriteLine(conn.bw, formatUnknown(name))
	}
}

func (h *CommandHandler) handleUpdate(conn *Conn, name string, args []string, op string, apply func(float64) float64) error {
	if len(args) != 1 {
		conn.logger().Warn(name+" command requires exactly one argument", "args", len(args))
		h.metrics.ObserveCommand(name, metric.ResultBadArgs)
		return nil
	}

	operand, err := ParseOperand(args[0])
	if err != nil {
		h.metrics.ObserveCommand(name, metric.ResultBadOperand)
		return err
	}

	result := apply(operand)
	h.metrics.ObserveCommand(name, metric.ResultOK)
	return WriteLine(conn.bw, formatUpdate(op, operand, result))
}

func (h *CommandHandler) handleShow(conn *Conn, args []string) error {
	if len(args) != 0 {
		conn.logger().Warn(CmdShow+" command requires exactly zero arguments", "args", len(args))
		h.metrics.ObserveCommand(CmdShow, metric.ResultBadArgs)
		return nil
	}

	value := h.cell.Show()
	h.metrics.ObserveCommand(CmdShow, metric.ResultOK)
	return WriteLine(conn.bw, formatShow(value))
}
