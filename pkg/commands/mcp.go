package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command, e *env) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal to MCP clients",
		Long: `Serve entries, today's entry and the progress summary as Model Context
Protocol tools and resources, over stdio for a local assistant or over
streamable HTTP.`,
		Example: `
iyilik mcp
iyilik mcp --transport http --http-port 0
`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return mo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return err
			}
			r := mcp.Runner{
				Service: svc,
				Version: version,
				Options: mo,
				Log:     e.log,
				Listening: func(url string) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on %s\n", url)
				},
			}
			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
