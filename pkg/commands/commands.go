package commands

import (
	"context"
	"fmt"
	"io"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/identity"
	"tableflip.dev/iyilik/pkg/journal"
	"tableflip.dev/iyilik/pkg/store"
)

// annotationSession marks commands that need a logged in profile.
const annotationSession = "iyilik.session"

var gated = map[string]string{annotationSession: "true"}

// Option customises the root command, mostly for tests.
type Option func(*env)

// WithStore runs every command against s instead of the configured backend.
// The caller keeps ownership of s.
func WithStore(s store.Store) Option {
	return func(e *env) {
		e.kv = s
		e.injected = true
	}
}

// WithOutput sends command output to w.
func WithOutput(w io.Writer) Option {
	return func(e *env) {
		e.oo.Out = w
	}
}

// WithLogger skips building a logger from flags.
func WithLogger(l *zap.Logger) Option {
	return func(e *env) {
		e.log = l
	}
}

// env is the state shared by every command of one invocation.
type env struct {
	ro *options.RootOptions
	oo *options.OutputOptions

	log      *zap.Logger
	cfg      store.Config
	kv       store.Store
	injected bool
	svc      *app.Service
}

// Service opens the store on first use and wires the journal on top of it.
func (e *env) Service() (*app.Service, error) {
	if e.svc != nil {
		return e.svc, nil
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.kv == nil {
		cfg, err := e.config()
		if err != nil {
			return nil, err
		}
		kv, err := store.Load(cfg)
		if err != nil {
			return nil, err
		}
		e.kv = kv
		e.log.Debug("opened store", zap.String("backend", string(cfg.Backend())), zap.String("path", cfg.BasePath()))
	}
	e.svc = &app.Service{
		Journal:  journal.New(e.kv, journal.WithLogger(e.log)),
		Identity: identity.New(e.kv, e.log),
		Log:      e.log,
	}
	return e.svc, nil
}

func (e *env) config() (store.Config, error) {
	if e.cfg != nil {
		return e.cfg, nil
	}
	if e.ro.Ephemeral {
		e.cfg = store.StaticConfig{Kind: store.BackendMemory}
		return e.cfg, nil
	}
	var err error
	if e.ro.ConfigFile != "" {
		e.cfg, err = store.LoadConfigFile(e.ro.ConfigFile)
	} else {
		e.cfg, err = store.LoadConfig()
	}
	return e.cfg, err
}

func (e *env) close() error {
	if e.kv == nil || e.injected {
		return nil
	}
	return e.kv.Close()
}

func (e *env) newLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if e.ro.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// requireSession is the gate in front of every command annotated with
// annotationSession.
func (e *env) requireSession(ctx context.Context) error {
	svc, err := e.Service()
	if err != nil {
		return err
	}
	if _, err := svc.RequireSession(ctx); err != nil {
		return fmt.Errorf("%w, run `iyilik login` first", err)
	}
	return nil
}

func newEnv(opts ...Option) *env {
	e := &env{
		ro: &options.RootOptions{},
		oo: &options.OutputOptions{},
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Execute runs the iyilik command line with args and releases the store and
// the logger however the command ends.
func Execute(ctx context.Context, args []string, opts ...Option) error {
	return newEnv(opts...).execute(ctx, args)
}

func (e *env) execute(ctx context.Context, args []string) (err error) {
	cmd := e.root()
	cmd.SetArgs(args)
	defer func() {
		if e.log != nil {
			_ = e.log.Sync()
		}
		if cerr := e.close(); err == nil {
			err = cerr
		}
	}()
	return cmd.ExecuteContext(ctx)
}

func (e *env) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iyilik",
		Short: base.Wrap80("A small daily mood journal: log how you feel, your energy and one small win, then watch your streak grow."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if e.log == nil {
				log, err := e.newLogger()
				if err != nil {
					return err
				}
				e.log = log
			}
			if cmd.Annotations[annotationSession] != "true" {
				return nil
			}
			cmd.SilenceUsage = true
			return e.oo.HandleError(e.requireSession(cmd.Context()))
		},
	}
	cmd.SetOut(e.oo.Writer())

	options.AddRootArgs(cmd, e.ro)
	options.AddOutputArg(cmd, e.oo)

	addCommands(cmd, e)
	return cmd
}

func addCommands(topLevel *cobra.Command, e *env) {
	addLogin(topLevel, e)
	addLogout(topLevel, e)
	addWhoAmI(topLevel, e)
	addDashboard(topLevel, e)
	addAdd(topLevel, e)
	addList(topLevel, e)
	addShow(topLevel, e)
	addDelete(topLevel, e)
	addToday(topLevel, e)
	addProgress(topLevel, e)
	addWatch(topLevel, e)
	addCalendar(topLevel, e)
	addKey(topLevel)
	addDemo(topLevel, e)
	addInfo(topLevel, e)
	addMCP(topLevel, e)
	addVersion(topLevel, e)
	addUpgrade(topLevel)
	addCompletions(topLevel, e)
}
