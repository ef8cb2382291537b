package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tableflip.dev/iyilik/pkg/app"
	"tableflip.dev/iyilik/pkg/commands/options"
)

const instructions = "Read and write a personal mood journal: daily mood, energy, small wins and progress. " +
	"A profile must be logged in with `iyilik login` first."

// Runner serves the journal over MCP until ctx is done.
type Runner struct {
	Service *app.Service
	Version string
	// Options must already be validated.
	Options *options.MCPOptions
	Log     *zap.Logger
	// Listening is told the endpoint URL once the HTTP listener is up.
	Listening func(url string)

	// In and Out replace os.Stdin and os.Stdout for the stdio transport.
	In  io.Reader
	Out io.Writer
}

func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a journal")
	}
	if r.Log == nil {
		r.Log = zap.NewNop()
	}
	o := r.Options
	if o == nil {
		o = &options.MCPOptions{}
		if err := o.Validate(); err != nil {
			return err
		}
	}

	srv := r.newServer()
	if o.Transport == "http" {
		return r.serveHTTP(ctx, srv, o)
	}

	in, out := r.In, r.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	r.Log.Info("serving MCP over stdio")
	return server.NewStdioServer(srv).Listen(ctx, in, out)
}

func (r Runner) newServer() *server.MCPServer {
	version := r.Version
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		"iyilik MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions(instructions),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.Service)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer, o *options.MCPOptions) error {
	mux := http.NewServeMux()
	mux.Handle(o.Path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", o.Addr())
	if err != nil {
		return err
	}
	url := listenURL(o, ln.Addr())
	r.Log.Info("serving MCP over http", zap.String("url", url))
	if r.Listening != nil {
		r.Listening(url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if o.TLS() {
		err = httpSrv.ServeTLS(ln, o.TLSCert, o.TLSKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// listenURL is the address a client should dial, with the port the listener
// actually got.
func listenURL(o *options.MCPOptions, addr net.Addr) string {
	scheme := "http"
	if o.TLS() {
		scheme = "https"
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, addr.String(), o.Path)
	}
	host := o.Host
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, fmt.Sprint(tcp.Port)), o.Path)
}
