package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
	pkgerrors "github.com/angelmondragon/codedeploy-go/pkg/errors"
)

func newDeploymentsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"deploy"},
		Short:   "Create, inspect and stop deployments",
	}
	cmd.AddCommand(
		newDeploymentsListCommand(a),
		newDeploymentsGetCommand(a),
		newDeploymentsCreateCommand(a),
		newDeploymentsStopCommand(a),
		newDeploymentsWaitCommand(a),
	)
	return cmd
}

func newDeploymentsListCommand(a *app) *cobra.Command {
	var (
		application string
		group       string
		statuses    []string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deployment ids",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			if group != "" && application == "" {
				return fmt.Errorf("--group requires --application")
			}
			in := &codedeploy.ListDeploymentsInput{ApplicationName: application, DeploymentGroupName: group}
			for _, raw := range statuses {
				status, err := codedeploy.ParseDeploymentStatus(raw)
				if err != nil {
					return err
				}
				in.IncludeOnlyStatuses = append(in.IncludeOnlyStatuses, status)
			}

			var ids []string
			err := s.CodeDeploy.ListDeploymentsPages(ctx, in, func(page *codedeploy.ListDeploymentsOutput, _ bool) bool {
				ids = append(ids, page.Deployments...)
				return true
			})
			if err != nil {
				return err
			}
			return a.printer().names("deployments", ids)
		}),
	}
	cmd.Flags().StringVar(&application, "application", "", "Only deployments of this application.")
	cmd.Flags().StringVar(&group, "group", "", "Only deployments of this deployment group. Needs --application.")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Only deployments in these statuses, e.g. InProgress,Failed.")
	return cmd
}

func newDeploymentsGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get DEPLOYMENT_ID",
		Short: "Show one deployment",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			out, err := s.CodeDeploy.GetDeployment(ctx, &codedeploy.GetDeploymentInput{DeploymentID: args[0]})
			if err != nil {
				return err
			}
			info := out.DeploymentInfo
			if info == nil {
				info = &codedeploy.DeploymentInfo{DeploymentID: args[0]}
			}
			return a.printer().print(info, func(w io.Writer) error {
				return deploymentRows(w, info)
			})
		}),
	}
}

func deploymentRows(w io.Writer, info *codedeploy.DeploymentInfo) error {
	if err := row(w, "ID", "APPLICATION", "GROUP", "STATUS", "CREATED", "COMPLETED"); err != nil {
		return err
	}
	if err := row(w, info.DeploymentID, orDash(info.ApplicationName), orDash(info.DeploymentGroupName),
		orDash(string(info.Status)), formatTime(info.CreateTime), formatTime(info.CompleteTime)); err != nil {
		return err
	}
	if o := info.DeploymentOverview; o != nil {
		if _, err := fmt.Fprintf(w, "\ninstances: %d pending, %d in progress, %d succeeded, %d failed, %d skipped, %d ready\n",
			o.Pending, o.InProgress, o.Succeeded, o.Failed, o.Skipped, o.Ready); err != nil {
			return err
		}
	}
	if e := info.ErrorInformation; e != nil && (e.Code != "" || e.Message != "") {
		if _, err := fmt.Fprintf(w, "error: %s: %s\n", e.Code, e.Message); err != nil {
			return err
		}
	}
	return nil
}

type revisionFlags struct {
	s3         string
	bundleType string
	version    string
	eTag       string
	github     string
}

// location turns the revision flags into a RevisionLocation. It returns nil
// when no revision was given so the group's target revision is used.
func (f revisionFlags) location() (*codedeploy.RevisionLocation, error) {
	if f.s3 != "" && f.github != "" {
		return nil, fmt.Errorf("--s3 and --github are mutually exclusive")
	}
	switch {
	case f.s3 != "":
		bucket, key, ok := strings.Cut(strings.TrimPrefix(f.s3, "s3://"), "/")
		if !ok || bucket == "" || key == "" {
			return nil, fmt.Errorf("--s3 must look like s3://bucket/key, got %q", f.s3)
		}
		bundle := codedeploy.BundleTypeZip
		if f.bundleType != "" {
			parsed, err := codedeploy.ParseBundleType(f.bundleType)
			if err != nil {
				return nil, err
			}
			bundle = parsed
		}
		return &codedeploy.RevisionLocation{
			RevisionType: codedeploy.RevisionLocationTypeS3,
			S3Location: &codedeploy.S3Location{
				Bucket:     bucket,
				Key:        key,
				BundleType: bundle,
				Version:    f.version,
				ETag:       f.eTag,
			},
		}, nil
	case f.github != "":
		repo, commit, ok := strings.Cut(f.github, "@")
		if !ok || repo == "" || commit == "" {
			return nil, fmt.Errorf("--github must look like owner/repo@commit, got %q", f.github)
		}
		return &codedeploy.RevisionLocation{
			RevisionType:   codedeploy.RevisionLocationTypeGitHub,
			GitHubLocation: &codedeploy.GitHubLocation{Repository: repo, CommitID: commit},
		}, nil
	}
	return nil, nil
}

func newDeploymentsCreateCommand(a *app) *cobra.Command {
	var (
		in       codedeploy.CreateDeploymentInput
		revision revisionFlags
		behavior string
		wait     bool
		waitOpts waitFlags
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a deployment",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			if in.ApplicationName == "" {
				return fmt.Errorf("--application is required")
			}
			loc, err := revision.location()
			if err != nil {
				return err
			}
			req := in
			req.Revision = loc
			if behavior != "" {
				b, err := codedeploy.ParseFileExistsBehavior(behavior)
				if err != nil {
					return err
				}
				req.FileExistsBehavior = b
			}

			out, err := s.CodeDeploy.CreateDeployment(ctx, &req)
			if err != nil {
				return err
			}
			ctx = s.Logger.WithField(ctx, "deployment_id", out.DeploymentID)
			s.Logger.Info(ctx, "deployment created")

			if wait {
				if err := waitForDeployment(ctx, s, out.DeploymentID, waitOpts); err != nil {
					return err
				}
			}
			return a.printer().print(out, func(w io.Writer) error {
				return row(w, out.DeploymentID)
			})
		}),
	}
	f := cmd.Flags()
	f.StringVar(&in.ApplicationName, "application", "", "Application name.")
	f.StringVar(&in.DeploymentGroupName, "group", "", "Deployment group name.")
	f.StringVar(&in.DeploymentConfigName, "deployment-config", "", "Deployment configuration, e.g. CodeDeployDefault.OneAtATime.")
	f.StringVar(&in.Description, "description", "", "Free-form description.")
	f.StringVar(&revision.s3, "s3", "", "Revision in S3 as s3://bucket/key.")
	f.StringVar(&revision.bundleType, "bundle-type", "", "Bundle type of the S3 revision (zip, tar, tgz, YAML, JSON).")
	f.StringVar(&revision.version, "s3-version", "", "Object version of the S3 revision.")
	f.StringVar(&revision.eTag, "s3-etag", "", "ETag of the S3 revision.")
	f.StringVar(&revision.github, "github", "", "Revision on GitHub as owner/repo@commit.")
	f.StringVar(&behavior, "file-exists-behavior", "", "DISALLOW, OVERWRITE or RETAIN.")
	f.BoolVar(&wait, "wait", false, "Wait until the deployment succeeds.")
	waitOpts.bind(cmd)
	return cmd
}

func newDeploymentsStopCommand(a *app) *cobra.Command {
	var (
		rollback bool
		cmd      *cobra.Command
	)
	cmd = &cobra.Command{
		Use:   "stop DEPLOYMENT_ID",
		Short: "Stop a running deployment",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			in := &codedeploy.StopDeploymentInput{DeploymentID: args[0]}
			if cmd.Flags().Changed("rollback") {
				in.AutoRollbackEnabled = aws.Bool(rollback)
			}
			out, err := s.CodeDeploy.StopDeployment(ctx, in)
			if err != nil {
				return err
			}
			return a.printer().print(out, func(w io.Writer) error {
				return row(w, string(out.Status), out.StatusMessage)
			})
		}),
	}
	cmd.Flags().BoolVar(&rollback, "rollback", false, "Roll back to the previous revision after stopping.")
	return cmd
}

type waitFlags struct {
	delay       time.Duration
	maxAttempts int
}

func (w *waitFlags) bind(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&w.delay, "delay", codedeploy.DefaultWaiterDelay, "Time between status checks.")
	cmd.Flags().IntVar(&w.maxAttempts, "max-attempts", codedeploy.DefaultWaiterMaxAttempts, "Give up after this many checks.")
}

func newDeploymentsWaitCommand(a *app) *cobra.Command {
	var opts waitFlags
	cmd := &cobra.Command{
		Use:   "wait DEPLOYMENT_ID",
		Short: "Block until a deployment succeeds",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			if err := waitForDeployment(ctx, s, args[0], opts); err != nil {
				return err
			}
			result := map[string]string{"deploymentId": args[0], "status": string(codedeploy.DeploymentStatusSucceeded)}
			return a.printer().print(result, func(w io.Writer) error {
				return row(w, args[0], string(codedeploy.DeploymentStatusSucceeded))
			})
		}),
	}
	opts.bind(cmd)
	return cmd
}

func waitForDeployment(ctx context.Context, s *Session, id string, opts waitFlags) error {
	err := s.CodeDeploy.WaitUntilDeploymentSuccessful(ctx, &codedeploy.GetDeploymentInput{DeploymentID: id},
		codedeploy.WithWaiterDelay(opts.delay),
		codedeploy.WithWaiterMaxAttempts(opts.maxAttempts),
		codedeploy.WithWaiterPoll(func(attempt int, info *codedeploy.DeploymentInfo) {
			fields := map[string]any{"deployment_id": id, "attempt": attempt}
			if info != nil {
				fields["status"] = string(info.Status)
			}
			s.Logger.Debug(s.Logger.WithFields(ctx, fields), "polled deployment")
		}),
	)
	if err == nil {
		return nil
	}
	if perr := pkgerrors.As(err); perr != nil && perr.Code() == pkgerrors.CodeWaiter {
		if info, ok := perr.Details().(*codedeploy.DeploymentInfo); ok && info != nil && info.ErrorInformation != nil {
			return fmt.Errorf("%s (%s: %s)", perr.Message(), info.ErrorInformation.Code, info.ErrorInformation.Message)
		}
	}
	return err
}
