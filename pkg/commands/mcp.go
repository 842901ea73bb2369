package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/huddle/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		httpAddr  string
		httpPath  string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the profile, the group timeline, messaging
and meeting scheduling through the Model Context Protocol. Serves stdio by
default; --transport=http serves streamable HTTP on a loopback address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := openSession(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			runner := mcp.Runner{
				Session:          e.session,
				Scheduler:        e.scheduler,
				Name:             "huddle",
				Version:          version,
				HTTPListenAddr:   strings.TrimSpace(httpAddr),
				HTTPEndpointPath: strings.TrimSpace(httpPath),
			}

			switch strings.ToLower(strings.TrimSpace(transport)) {
			case "", string(mcp.TransportStdio):
				runner.Transport = mcp.TransportStdio
			case string(mcp.TransportHTTP):
				runner.Transport = mcp.TransportHTTP
				runner.OnHTTPListening = func(a net.Addr) {
					path := runner.HTTPEndpointPath
					if path == "" {
						path = mcp.DefaultHTTPPath
					}
					if !strings.HasPrefix(path, "/") {
						path = "/" + path
					}
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP HTTP server listening on http://%s%s\n", a, path)
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected stdio or http)", transport)
			}

			return runner.Do(e.ctx)
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportStdio), "transport to use: stdio or http")
	cmd.Flags().StringVar(&httpAddr, "http-addr", mcp.DefaultHTTPAddr, "loopback host:port for the HTTP transport (port 0 picks one)")
	cmd.Flags().StringVar(&httpPath, "http-path", mcp.DefaultHTTPPath, "HTTP endpoint path")

	topLevel.AddCommand(cmd)
}
