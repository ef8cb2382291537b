package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/prompt"
	"tableflip.dev/iyilik/pkg/runner/add"
	"tableflip.dev/iyilik/pkg/runner/get"
	"tableflip.dev/iyilik/pkg/runner/remove"
)

func addAdd(topLevel *cobra.Command, e *env) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"new", "log"},
		Short:   "Log how today went",
		Example: `
iyilik add --mood good --energy 7 --win "went for a walk"
iyilik add --mood 1 --energy 3 --win "called a friend" --notes "long week"
iyilik add -i
`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if ao.Interactive {
				w := prompt.Wizard{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				return w.Entry(ao)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			mood, err := ao.GetMood()
			if err != nil {
				return e.oo.HandleError(err)
			}
			cmd.SilenceUsage = true
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := add.Add{
				Input: app.NewEntryInput{
					Mood:     mood,
					Energy:   ao.Energy,
					SmallWin: ao.Win,
					Notes:    ao.Notes,
				},
				ShowID:  io.ShowID,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddEntryArgs(cmd, ao)
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return options.MoodCompletions(), cobra.ShellCompDirectiveNoFileComp
	})
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addList(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}
	limit := 0

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "entries"},
		Short:   "List entries, newest first",
		Example: `
iyilik list
iyilik list -k --limit 5
`,
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := get.Get{
				ShowID:  io.ShowID,
				Limit:   limit,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many entries.")
	topLevel.AddCommand(cmd)
}

func addShow(topLevel *cobra.Command, e *env) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show <entry id>",
		Short: "Show one entry",
		Example: `
iyilik show 3f1c2a9e-0a4e-4a57-9a57-5e1f0c1b2d3e
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			io.ID = strings.TrimSpace(args[0])
			return nil
		},
		ValidArgsFunction: e.entryCompletions,
		Annotations:       gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := get.Get{
				ID:      io.ID,
				ShowID:  true,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command, e *env) {
	var ids []string

	cmd := &cobra.Command{
		Use:     "delete <entry id>...",
		Aliases: []string{"rm"},
		Short:   "Delete entries; unknown ids are skipped",
		Example: `
iyilik delete 3f1c2a9e-0a4e-4a57-9a57-5e1f0c1b2d3e
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an entry id")
			}
			ids = args
			return nil
		},
		ValidArgsFunction: e.entryCompletions,
		Annotations:       gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := remove.Remove{
				IDs:     ids,
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addToday(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:         "today",
		Short:       "Show today's entry",
		Args:        cobra.NoArgs,
		Annotations: gated,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.Service()
			if err != nil {
				return e.oo.HandleError(err)
			}
			s := get.Today{
				Output:  e.oo,
				Service: svc,
			}
			return e.oo.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers stored entry ids, described by date and small win.
func (e *env) entryCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	svc, err := e.Service()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	all, err := svc.Entries(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	out := make([]string, 0, len(all))
	for _, en := range all {
		if strings.HasPrefix(en.ID, toComplete) {
			out = append(out, en.ID+"\t"+en.Date+" "+en.SmallWin)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
