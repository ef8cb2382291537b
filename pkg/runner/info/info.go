// Package info provides the runner that reports configuration and storage.
package info

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/store"
)

type Info struct {
	Config  store.Config
	Output  *options.OutputOptions
	Service *app.Service
}

type report struct {
	ConfigPathEnv string `json:"configPathEnv,omitempty"`
	ConfigFile    string `json:"configFile,omitempty"`
	Backend       string `json:"backend"`
	Path          string `json:"path"`
	Username      string `json:"username,omitempty"`
	Entries       int    `json:"entries"`
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Output
	if out == nil {
		out = &options.OutputOptions{}
	}
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil {
		return errors.New("failed to open the journal")
	}

	r := report{
		ConfigPathEnv: os.Getenv(store.ConfigPathEnv),
		ConfigFile:    store.ConfigFile(n.Config),
		Backend:       string(n.Config.Backend()),
		Path:          n.Config.BasePath(),
	}
	sess, err := n.Service.Session(ctx)
	if err != nil {
		return err
	}
	r.Username = sess.Username
	all, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	r.Entries = len(all)

	if out.JSON {
		return out.Print(r)
	}

	w := out.Writer()
	if r.ConfigPathEnv != "" {
		_, _ = fmt.Fprintln(w, store.ConfigPathEnv, "found on env, using", r.ConfigPathEnv)
	} else {
		_, _ = fmt.Fprintln(w, store.ConfigPathEnv, "env var not set")
	}
	if r.ConfigFile != "" {
		_, _ = fmt.Fprintln(w, "Config file:", r.ConfigFile)
	} else {
		_, _ = fmt.Fprintln(w, "Config file: none, using defaults")
	}
	_, _ = fmt.Fprintln(w, "Backend:", r.Backend)
	_, _ = fmt.Fprintln(w, "Path:", r.Path)
	if r.Username != "" {
		_, _ = fmt.Fprintln(w, "User:", r.Username)
	} else {
		_, _ = fmt.Fprintln(w, "User: not logged in")
	}
	_, _ = fmt.Fprintf(w, "Entries: %d\n", r.Entries)
	return nil
}
