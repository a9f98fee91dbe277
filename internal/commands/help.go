package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskclient/internal/config"
	"taskclient/internal/exitcode"
	"taskclient/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskclient help" }
func (c *HelpCmd) NeedsAPI() bool    { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskclient                                         Open the interactive task page
  taskclient ui [common flags]
  taskclient login [common flags] --email <email> [--password <pw>]
  taskclient register [common flags] --email <email> [--password <pw>]
  taskclient list [common flags] --email <email>
  taskclient add [common flags] --email <email> [-d <description>] <title...>
  taskclient edit [common flags] --email <email> [--title <t>] [-d <description>] <task-id>
  taskclient share [common flags] --email <email> [-p READ|WRITE] <task-id> <recipient>
  taskclient config [common flags]
  taskclient help
  taskclient version

The password may also be supplied through TASKCLIENT_PASSWORD.

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override the API base URL
  --quiet          Suppress informational output
  --debug          Write debug logs to the config directory
`
