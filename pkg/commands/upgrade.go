package commands

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"
)

const installPath = "tableflip.dev/iyilik/cmd/iyilik"

func addUpgrade(topLevel *cobra.Command) {
	target := "latest"

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Reinstall iyilik with go install",
		Example: `
iyilik upgrade
iyilik upgrade --to v0.3.0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			pkg := installPath + "@" + strings.TrimPrefix(strings.TrimSpace(target), "@")
			ex := exec.CommandContext(cmd.Context(), "go", "install", pkg)
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return fmt.Errorf("go install %s: %w\n%s", pkg, err, out.String())
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "installed %s (was %s)\n", pkg, version)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", target, "Version to install, a tag or latest.")
	topLevel.AddCommand(cmd)
}
