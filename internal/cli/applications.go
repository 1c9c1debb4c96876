package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
)

func newApplicationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "applications",
		Aliases: []string{"apps"},
		Short:   "Manage CodeDeploy applications",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List application names",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			var names []string
			err := s.CodeDeploy.ListApplicationsPages(ctx, &codedeploy.ListApplicationsInput{},
				func(page *codedeploy.ListApplicationsOutput, _ bool) bool {
					names = append(names, page.Applications...)
					return true
				})
			if err != nil {
				return err
			}
			return a.printer().names("applications", names)
		}),
	}

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			out, err := s.CodeDeploy.GetApplication(ctx, &codedeploy.GetApplicationInput{ApplicationName: args[0]})
			if err != nil {
				return err
			}
			app := out.Application
			if app == nil {
				app = &codedeploy.ApplicationInfo{}
			}
			return a.printer().print(app, func(w io.Writer) error {
				if err := row(w, "NAME", "ID", "PLATFORM", "CREATED"); err != nil {
					return err
				}
				return row(w, app.ApplicationName, app.ApplicationID, orDash(string(app.ComputePlatform)), formatTime(app.CreateTime))
			})
		}),
	}

	var (
		platform string
		tags     []string
	)
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create an application",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			in := &codedeploy.CreateApplicationInput{ApplicationName: args[0]}
			if platform != "" {
				p, err := codedeploy.ParseComputePlatform(platform)
				if err != nil {
					return err
				}
				in.ComputePlatform = p
			}
			parsed, err := parseTags(tags)
			if err != nil {
				return err
			}
			in.Tags = parsed

			out, err := s.CodeDeploy.CreateApplication(ctx, in)
			if err != nil {
				return err
			}
			s.Logger.Info(s.Logger.WithField(ctx, "application_id", out.ApplicationID), "application created")
			return a.printer().print(out, func(w io.Writer) error {
				return row(w, out.ApplicationID)
			})
		}),
	}
	create.Flags().StringVar(&platform, "compute-platform", "", "Server, Lambda or ECS.")
	create.Flags().StringArrayVar(&tags, "tag", nil, "Tag as KEY=VALUE. Repeatable.")

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an application and its deployment groups",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			if _, err := s.CodeDeploy.DeleteApplication(ctx, &codedeploy.DeleteApplicationInput{ApplicationName: args[0]}); err != nil {
				return err
			}
			result := map[string]string{"applicationName": args[0], "status": "deleted"}
			return a.printer().print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "deleted %s\n", args[0])
				return err
			})
		}),
	}

	cmd.AddCommand(list, get, create, del)
	return cmd
}

func parseTags(raw []string) ([]codedeploy.Tag, error) {
	var tags []codedeploy.Tag
	for _, kv := range raw {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("tag %q must look like KEY=VALUE", kv)
		}
		tags = append(tags, codedeploy.Tag{Key: strings.TrimSpace(key), Value: value})
	}
	return tags, nil
}
