package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/codedeploy-go/pkg/codedeploy"
)

func newGroupsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Inspect deployment groups",
	}

	list := &cobra.Command{
		Use:   "list APPLICATION",
		Short: "List the deployment groups of an application",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			var names []string
			err := s.CodeDeploy.ListDeploymentGroupsPages(ctx, &codedeploy.ListDeploymentGroupsInput{ApplicationName: args[0]},
				func(page *codedeploy.ListDeploymentGroupsOutput, _ bool) bool {
					names = append(names, page.DeploymentGroups...)
					return true
				})
			if err != nil {
				return err
			}
			return a.printer().names("deploymentGroups", names)
		}),
	}

	get := &cobra.Command{
		Use:   "get APPLICATION GROUP",
		Short: "Show one deployment group",
		Args:  cobra.ExactArgs(2),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			out, err := s.CodeDeploy.GetDeploymentGroup(ctx, &codedeploy.GetDeploymentGroupInput{
				ApplicationName:     args[0],
				DeploymentGroupName: args[1],
			})
			if err != nil {
				return err
			}
			info := out.DeploymentGroupInfo
			if info == nil {
				info = &codedeploy.DeploymentGroupInfo{ApplicationName: args[0], DeploymentGroupName: args[1]}
			}
			return a.printer().print(info, func(w io.Writer) error {
				if err := row(w, "APPLICATION", "GROUP", "ID", "CONFIG", "PLATFORM"); err != nil {
					return err
				}
				return row(w, info.ApplicationName, info.DeploymentGroupName, orDash(info.DeploymentGroupID),
					orDash(info.DeploymentConfigName), orDash(string(info.ComputePlatform)))
			})
		}),
	}

	cmd.AddCommand(list, get)
	return cmd
}

func newConfigsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "configs",
		Short: "Inspect deployment configurations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List deployment configuration names",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			var names []string
			err := s.CodeDeploy.ListDeploymentConfigsPages(ctx, &codedeploy.ListDeploymentConfigsInput{},
				func(page *codedeploy.ListDeploymentConfigsOutput, _ bool) bool {
					names = append(names, page.DeploymentConfigsList...)
					return true
				})
			if err != nil {
				return err
			}
			return a.printer().names("deploymentConfigs", names)
		}),
	}

	get := &cobra.Command{
		Use:   "get NAME",
		Short: "Show one deployment configuration",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			out, err := s.CodeDeploy.GetDeploymentConfig(ctx, &codedeploy.GetDeploymentConfigInput{DeploymentConfigName: args[0]})
			if err != nil {
				return err
			}
			info := out.DeploymentConfigInfo
			if info == nil {
				info = &codedeploy.DeploymentConfigInfo{DeploymentConfigName: args[0]}
			}
			return a.printer().print(info, func(w io.Writer) error {
				if err := row(w, "NAME", "ID", "PLATFORM", "MINIMUM HEALTHY"); err != nil {
					return err
				}
				healthy := "-"
				if m := info.MinimumHealthyHosts; m != nil {
					healthy = fmt.Sprintf("%d %s", m.Value, m.Type)
				}
				return row(w, info.DeploymentConfigName, orDash(info.DeploymentConfigID), orDash(string(info.ComputePlatform)), healthy)
			})
		}),
	}

	cmd.AddCommand(list, get)
	return cmd
}
