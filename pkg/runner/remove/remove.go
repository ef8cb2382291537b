// Package remove provides the runner for deleting journal entries.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
)

// Remove deletes entries by id. Unknown ids are reported but not an error.
type Remove struct {
	IDs     []string
	Output  *options.OutputOptions
	Service *app.Service
}

type result struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no journal")
	}
	out := &options.OutputOptions{}
	if n.Output != nil {
		out = n.Output
	}

	results := make([]result, 0, len(n.IDs))
	for _, id := range n.IDs {
		_, ok, err := n.Service.Entry(ctx, id)
		if err != nil {
			return err
		}
		if err := n.Service.Delete(ctx, id); err != nil {
			return err
		}
		results = append(results, result{ID: id, Deleted: ok})
	}

	if out.JSON {
		return out.Print(results)
	}
	for _, r := range results {
		if r.Deleted {
			_, _ = fmt.Fprintf(out.Writer(), "deleted %s\n", r.ID)
		} else {
			_, _ = fmt.Fprintf(out.Writer(), "no entry %s, nothing to delete\n", r.ID)
		}
	}
	return nil
}
