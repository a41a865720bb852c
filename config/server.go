package config

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"github.com/agentsmithers/mcp-server-config/utils"
)

const (
	DefaultIpAddress = "+"
	DefaultPort      = 50300

	loopbackAddress = "127.0.0.1"
)

// Server holds the bind settings of the MCP control server.
//
// JSON keys follow the casing of the plugin's mcp_config.json.
type Server struct {
	IpAddress string `yaml:"ip_address" json:"IpAddress"`
	Port      int    `yaml:"port"       json:"Port"`
}

var (
	errServerInvalidAddress = errors.New("invalid server ip address")
	errServerInvalidPort    = errors.New("invalid server port")
)

func DefaultServer() *Server {
	s := &Server{}
	s.SetDefaults()
	return s
}

func (cfg *Server) SetDefaults() {
	cfg.IpAddress = DefaultIpAddress
	cfg.Port = DefaultPort
}

// ParseServer builds server settings out of raw user input the way the
// settings editor does: the address is trimmed and the port must be a
// decimal integer.
func ParseServer(address, port string) (*Server, error) {
	errs := make([]error, 0)

	cfg := &Server{IpAddress: strings.TrimSpace(address)}
	if !ValidateAddress(cfg.IpAddress) {
		errs = append(errs, fmt.Errorf("%w: %q",
			errServerInvalidAddress, address,
		))
	}

	p, err := strconv.Atoi(strings.TrimSpace(port))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("%w: %q: %w",
			errServerInvalidPort, port, err,
		))
	case !ValidatePort(p):
		errs = append(errs, fmt.Errorf("%w: %d",
			errServerInvalidPort, p,
		))
	}
	cfg.Port = p

	if err := utils.FlattenErrors(errs); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Server) Validate() error {
	errs := make([]error, 0)

	if !ValidateAddress(cfg.IpAddress) {
		errs = append(errs, fmt.Errorf("%w: %q",
			errServerInvalidAddress, cfg.IpAddress,
		))
	}

	if !ValidatePort(cfg.Port) {
		errs = append(errs, fmt.Errorf("%w: %d",
			errServerInvalidPort, cfg.Port,
		))
	}

	return utils.FlattenErrors(errs)
}

// ValidateAddress reports whether the value is acceptable as a bind
// address: one of the wildcard markers, "localhost", or an IP literal.
// No name resolution takes place.
func ValidateAddress(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	switch value {
	case "+", "*", "localhost":
		return true
	}

	_, err := netip.ParseAddr(value)
	return err == nil
}

func ValidatePort(value int) bool {
	return value >= 1 && value <= 65535
}

// ListenerURL is the prefix handed to the HTTP listener. Wildcard markers
// are passed through as is.
func (cfg *Server) ListenerURL() string {
	return "http://" + hostPort(cfg.IpAddress, cfg.Port) + "/"
}

// DisplayURL is the SSE endpoint shown to a human. It must never be used
// for binding.
func (cfg *Server) DisplayURL() string {
	return "http://" + hostPort(displayAddress(cfg.IpAddress), cfg.Port) + "/sse"
}

// PreviewURL renders the display URL for a half-edited address. Blank
// input previews as the default wildcard.
func PreviewURL(address string, port int) string {
	address = strings.TrimSpace(address)
	if address == "" {
		address = DefaultIpAddress
	}
	cfg := &Server{IpAddress: address, Port: port}
	return cfg.DisplayURL()
}

func displayAddress(address string) string {
	if address == "+" || address == "*" {
		return loopbackAddress
	}
	return address
}

// hostPort brackets IPv6 literals and percent-encodes their zone
// separator. Everything else is left verbatim.
func hostPort(address string, port int) string {
	return net.JoinHostPort(strings.Replace(address, "%", "%25", 1), strconv.Itoa(port))
}
