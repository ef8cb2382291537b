package options

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// MCPOptions
type MCPOptions struct {
	Transport string
	Host      string
	Port      int
	Path      string
	TLSCert   string
	TLSKey    string
}

func AddMCPArgs(cmd *cobra.Command, o *MCPOptions) {
	cmd.Flags().StringVar(&o.Transport, "transport", "stdio",
		"How to serve: stdio or http.")
	cmd.Flags().StringVar(&o.Host, "http-host", "127.0.0.1",
		"Interface to listen on with --transport=http.")
	cmd.Flags().IntVar(&o.Port, "http-port", 8080,
		"Port to listen on with --transport=http, 0 picks a free one.")
	cmd.Flags().StringVar(&o.Path, "http-path", "/mcp",
		"Endpoint path with --transport=http.")
	cmd.Flags().StringVar(&o.TLSCert, "http-tls-cert", "",
		"Certificate file, serves HTTPS together with --http-tls-key.")
	cmd.Flags().StringVar(&o.TLSKey, "http-tls-key", "",
		"Private key file for --http-tls-cert.")
}

// Validate normalises the options in place.
func (o *MCPOptions) Validate() error {
	o.Transport = strings.ToLower(strings.TrimSpace(o.Transport))
	switch o.Transport {
	case "":
		o.Transport = "stdio"
	case "stdio", "http":
	default:
		return fmt.Errorf("unsupported transport %q, use stdio or http", o.Transport)
	}

	o.Host = strings.TrimSpace(o.Host)
	if o.Host == "" {
		o.Host = "127.0.0.1"
	}
	if o.Port < 0 || o.Port > 65535 {
		return fmt.Errorf("invalid http-port %d", o.Port)
	}

	o.Path = strings.TrimSpace(o.Path)
	if !strings.HasPrefix(o.Path, "/") {
		o.Path = "/" + o.Path
	}

	o.TLSCert = strings.TrimSpace(o.TLSCert)
	o.TLSKey = strings.TrimSpace(o.TLSKey)
	if (o.TLSCert == "") != (o.TLSKey == "") {
		return errors.New("--http-tls-cert and --http-tls-key go together")
	}
	return nil
}

func (o *MCPOptions) Addr() string {
	return net.JoinHostPort(o.Host, strconv.Itoa(o.Port))
}

func (o *MCPOptions) TLS() bool {
	return o.TLSCert != "" && o.TLSKey != ""
}
