// Package session provides the login, logout and whoami runners.
package session

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
	"tableflip.dev/iyilik/pkg/printers"
)

func output(o *options.OutputOptions) *options.OutputOptions {
	if o == nil {
		return &options.OutputOptions{}
	}
	return o
}

type Login struct {
	Credentials app.Credentials
	Output      *options.OutputOptions
	Service     *app.Service
}

func (n *Login) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log in, no journal")
	}
	out := output(n.Output)
	sess, err := n.Service.Login(ctx, n.Credentials)
	if err != nil {
		return err
	}
	if out.JSON {
		return out.Print(sess)
	}
	_, _ = fmt.Fprintf(out.Writer(), "logged in as %s\n", sess.Username)
	return nil
}

type Logout struct {
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log out, no journal")
	}
	out := output(n.Output)
	if err := n.Service.Logout(ctx); err != nil {
		return err
	}
	if out.JSON {
		return out.Print(map[string]bool{"loggedOut": true})
	}
	_, _ = fmt.Fprintln(out.Writer(), "logged out")
	return nil
}

// WhoAmI prints the session and fails with app.ErrAnonymous when nobody is
// logged in.
type WhoAmI struct {
	Output  *options.OutputOptions
	Service *app.Service
}

func (n *WhoAmI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not read session, no journal")
	}
	out := output(n.Output)
	sess, err := n.Service.Session(ctx)
	if err != nil {
		return err
	}
	if out.JSON {
		if err := out.Print(map[string]interface{}{"state": sess.State().String(), "username": sess.Username}); err != nil {
			return err
		}
	} else {
		pp := printers.PrettyPrint{Out: out.Writer()}
		pp.Session(sess)
	}
	if !sess.Identified() {
		return app.ErrAnonymous
	}
	return nil
}
