package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/codedeploy-go/pkg/transfer"
)

func newTransferCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Manage Transfer Family servers and user keys",
	}
	cmd.AddCommand(
		newServersCommand(a),
		newDescribeServerCommand(a),
		newImportKeyCommand(a),
		newDeleteKeyCommand(a),
	)
	return cmd
}

func newServersCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List servers",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			servers := []transfer.ListedServer{}
			err := s.Transfer.ListServersPages(ctx, &transfer.ListServersInput{}, func(page *transfer.ListServersOutput, _ bool) bool {
				servers = append(servers, page.Servers...)
				return true
			})
			if err != nil {
				return err
			}
			return a.printer().print(map[string][]transfer.ListedServer{"servers": servers}, func(w io.Writer) error {
				if err := row(w, "ID", "STATE", "ENDPOINT", "IDENTITY", "USERS"); err != nil {
					return err
				}
				for _, srv := range servers {
					users := "-"
					if srv.UserCount != nil {
						users = strconv.FormatInt(*srv.UserCount, 10)
					}
					if err := row(w, srv.ServerID, orDash(string(srv.State)), orDash(string(srv.EndpointType)),
						orDash(string(srv.IdentityProviderType)), users); err != nil {
						return err
					}
				}
				return nil
			})
		}),
	}
}

func newDescribeServerCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe-server SERVER_ID",
		Short: "Show one server",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(ctx context.Context, s *Session, args []string) error {
			out, err := s.Transfer.DescribeServer(ctx, &transfer.DescribeServerInput{ServerID: args[0]})
			if err != nil {
				return err
			}
			srv := out.Server
			if srv == nil {
				srv = &transfer.DescribedServer{ServerID: args[0]}
			}
			return a.printer().print(srv, func(w io.Writer) error {
				if err := row(w, "ID", "STATE", "ENDPOINT", "PROTOCOLS", "HOST KEY"); err != nil {
					return err
				}
				protocols := make([]string, 0, len(srv.Protocols))
				for _, p := range srv.Protocols {
					protocols = append(protocols, string(p))
				}
				return row(w, srv.ServerID, orDash(string(srv.State)), orDash(string(srv.EndpointType)),
					orDash(strings.Join(protocols, ",")), orDash(srv.HostKeyFingerprint))
			})
		}),
	}
}

func newImportKeyCommand(a *app) *cobra.Command {
	var serverID, userName, keyFile, keyBody string
	cmd := &cobra.Command{
		Use:   "import-key",
		Short: "Attach an SSH public key to a user",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			body, err := readKey(keyFile, keyBody)
			if err != nil {
				return err
			}
			key, err := transfer.ParseSSHPublicKey(body)
			if err != nil {
				return err
			}
			ctx = s.Logger.WithFields(ctx, map[string]any{
				"server_id":   serverID,
				"user":        userName,
				"key_type":    key.Type,
				"fingerprint": key.Fingerprint,
			})

			out, err := s.Transfer.ImportSshPublicKey(ctx, &transfer.ImportSshPublicKeyInput{
				ServerID:         serverID,
				UserName:         userName,
				SSHPublicKeyBody: strings.TrimSpace(body),
			})
			if err != nil {
				return err
			}
			s.Logger.Info(s.Logger.WithField(ctx, "key_id", out.SSHPublicKeyID), "ssh key imported")
			return a.printer().print(out, func(w io.Writer) error {
				return row(w, out.SSHPublicKeyID, key.Fingerprint)
			})
		}),
	}
	cmd.Flags().StringVar(&serverID, "server", "", "Server id, s-xxxxxxxxxxxxxxxxx.")
	cmd.Flags().StringVar(&userName, "user", "", "User name.")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "Read the public key from this file.")
	cmd.Flags().StringVar(&keyBody, "key", "", "The public key in authorized_keys format.")
	_ = cmd.MarkFlagRequired("server")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func readKey(path, body string) (string, error) {
	switch {
	case path != "" && body != "":
		return "", fmt.Errorf("--key-file and --key are mutually exclusive")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading key file: %w", err)
		}
		return string(data), nil
	case body != "":
		return body, nil
	}
	return "", fmt.Errorf("one of --key-file or --key is required")
}

func newDeleteKeyCommand(a *app) *cobra.Command {
	var serverID, userName, keyID string
	cmd := &cobra.Command{
		Use:   "delete-key",
		Short: "Remove an SSH public key from a user",
		Args:  cobra.NoArgs,
		RunE: a.run(func(ctx context.Context, s *Session, _ []string) error {
			_, err := s.Transfer.DeleteSshPublicKey(ctx, &transfer.DeleteSshPublicKeyInput{
				ServerID:       serverID,
				UserName:       userName,
				SSHPublicKeyID: keyID,
			})
			if err != nil {
				return err
			}
			result := map[string]string{"sshPublicKeyId": keyID, "status": "deleted"}
			return a.printer().print(result, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "deleted %s\n", keyID)
				return err
			})
		}),
	}
	cmd.Flags().StringVar(&serverID, "server", "", "Server id.")
	cmd.Flags().StringVar(&userName, "user", "", "User name.")
	cmd.Flags().StringVar(&keyID, "key-id", "", "Key id, key-xxxxxxxxxxxxxxxxx.")
	_ = cmd.MarkFlagRequired("server")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("key-id")
	return cmd
}
