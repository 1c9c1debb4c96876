// Package cli holds the deployctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/angelmondragon/codedeploy-go/pkg/env"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
	"github.com/angelmondragon/codedeploy-go/pkg/logger"
)

const (
	OutputJSON = "json"
	OutputText = "text"
)

// Flag defaults read from the environment.
const (
	EnvConfigPath = "DEPLOYKIT_CONFIG"
	EnvOutput     = "DEPLOYKIT_OUTPUT"
	EnvNoSign     = "DEPLOYKIT_NO_SIGN"
)

// GlobalOptions are the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Region     string
	Endpoint   string
	LogLevel   string
	Output     string
	NoSign     bool
}

// Session is what a command run needs: clients plus the logger they share.
type Session struct {
	CodeDeploy CodeDeployAPI
	Transfer   TransferAPI
	Logger     *logger.Logger
	Close      func() error
}

// SessionFactory builds a Session from the parsed global flags.
type SessionFactory func(ctx context.Context, opts GlobalOptions) (*Session, error)

type app struct {
	global  GlobalOptions
	factory SessionFactory
	out     io.Writer
}

// NewRootCommand wires the command tree. Output goes to out; a nil factory
// means DefaultSessionFactory.
func NewRootCommand(factory SessionFactory, out io.Writer) *cobra.Command {
	if factory == nil {
		factory = DefaultSessionFactory
	}
	a := &app{factory: factory, out: out}

	root := &cobra.Command{
		Use:           "deployctl",
		Short:         "Drive CodeDeploy and Transfer Family from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(a.global.Output) {
			case OutputJSON, OutputText:
				a.global.Output = strings.ToLower(a.global.Output)
				return nil
			default:
				return fmt.Errorf("--output must be %s or %s, got %q", OutputJSON, OutputText, a.global.Output)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(out)
	bindGlobalFlags(root.PersistentFlags(), &a.global)

	root.AddCommand(
		newApplicationsCommand(a),
		newDeploymentsCommand(a),
		newGroupsCommand(a),
		newConfigsCommand(a),
		newTransferCommand(a),
	)
	return root
}

func bindGlobalFlags(flags *pflag.FlagSet, g *GlobalOptions) {
	flags.StringVar(&g.ConfigPath, "config", env.Get(EnvConfigPath, ""), "Path to a TOML profile. Environment variables override its values.")
	flags.StringVar(&g.Region, "region", "", "AWS region. Overrides AWS_REGION and the profile.")
	flags.StringVar(&g.Endpoint, "endpoint", "", "Send every request to this URL, for example a local fake endpoint.")
	flags.StringVar(&g.LogLevel, "log-level", "", "The logging level (debug, info, warn, error).")
	flags.StringVarP(&g.Output, "output", "o", env.Get(EnvOutput, OutputJSON), "Output format: json or text.")
	flags.BoolVar(&g.NoSign, "no-sign", env.Bool(EnvNoSign, false), "Send unsigned requests.")
}

// run opens a session for the command and releases it afterwards.
func (a *app) run(fn func(ctx context.Context, s *Session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		s, err := a.factory(ctx, a.global)
		if err != nil {
			return err
		}
		defer func() {
			if s.Close == nil {
				return
			}
			if cerr := s.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		ctx = s.Logger.WithField(ctx, "command", cmd.CommandPath())
		if err = fn(ctx, s, args); err != nil {
			logFailure(ctx, s.Logger, err)
		}
		return err
	}
}

func logFailure(ctx context.Context, logg *logger.Logger, err error) {
	if logg == nil {
		return
	}
	dump := pkgerrors.Dump(err)
	fields := map[string]any{
		"error":       dump.TopMessage,
		"error_code":  dump.Code,
		"error_chain": dump.Chain,
	}
	if dump.Service != "" {
		fields["service"] = dump.Service
		fields["service_code"] = dump.ServiceCode
		fields["status_code"] = dump.StatusCode
		fields["request_id"] = dump.RequestID
	}
	logg.Debug(logg.WithFields(ctx, fields), "command failed")
}

func (a *app) printer() printer {
	return printer{w: a.out, format: a.global.Output}
}
