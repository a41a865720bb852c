package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/agentsmithers/mcp-server-config/config"
	"github.com/agentsmithers/mcp-server-config/metrics"
	"github.com/google/renameio/v2"
	"go.uber.org/zap"
)

const FileName = "mcp_config.json"

// written at the start of the file by some windows editors
var utf8BOM = []byte("\xef\xbb\xbf")

// Store persists the MCP server settings in a file next to the running
// executable.
//
// Load and Save never fail: a broken or missing file degrades to defaults
// and write errors are only logged, so configuration trouble can never
// keep the host from starting. All file access is serialised.
type Store struct {
	path string

	logger  *zap.Logger
	metrics *metrics.Metrics

	mx sync.Mutex
}

var (
	errStoreFailedToResolvePath = errors.New("failed to resolve config file location")
	errStoreNothingToApply      = errors.New("no config to apply")
)

func New(l *zap.Logger, m *metrics.Metrics) (*Store, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("%w: %w",
			errStoreFailedToResolvePath, err,
		)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return newAt(filepath.Dir(exe), l, m), nil
}

func newAt(dir string, l *zap.Logger, m *metrics.Metrics) *Store {
	if l == nil {
		l = zap.L()
	}
	if m == nil {
		m = metrics.Noop()
	}

	return &Store{
		path:    filepath.Join(dir, FileName),
		logger:  l,
		metrics: m,
	}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted settings. Every field that is missing or
// invalid in the file is replaced by its default independently of the
// others.
func (s *Store) Load() *config.Server {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.load()
}

// Save writes the settings as is. Validation is up to the caller (see
// Apply).
func (s *Store) Save(cfg *config.Server) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.save(cfg)
}

// Apply validates the candidate settings and persists them if they are
// valid. Nothing is written otherwise.
func (s *Store) Apply(candidate *config.Server) error {
	if candidate == nil {
		return errStoreNothingToApply
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	s.mx.Lock()
	defer s.mx.Unlock()

	s.save(candidate)
	return nil
}

// Reset persists the default settings and returns them.
func (s *Store) Reset() *config.Server {
	s.mx.Lock()
	defer s.mx.Unlock()

	cfg := config.DefaultServer()
	s.save(cfg)
	return cfg
}

func (s *Store) load() *config.Server {
	l := s.logger.With(
		zap.String("path", s.path),
	)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.Debug("Config file does not exist, using defaults")
			s.metrics.LoadFallback(metrics.ReasonMissing)
		} else {
			l.Warn("Failed to read config file, using defaults",
				zap.Error(err),
			)
			s.metrics.LoadFallback(metrics.ReasonUnreadable)
		}
		return config.DefaultServer()
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	// fields are decoded one by one so that a bad one does not take the
	// others down with it
	var raw struct {
		IpAddress json.RawMessage `json:"IpAddress"`
		Port      json.RawMessage `json:"Port"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		l.Warn("Failed to parse config file, using defaults",
			zap.Error(err),
		)
		s.metrics.LoadFallback(metrics.ReasonMalformed)
		return config.DefaultServer()
	}

	// absent keys keep their defaults
	cfg := config.DefaultServer()

	if raw.IpAddress != nil {
		if ip, ok := decodeAddress(raw.IpAddress); ok {
			cfg.IpAddress = ip
		} else {
			l.Warn("Invalid ip address in config file, using default",
				zap.ByteString("ip_address", raw.IpAddress),
				zap.String("default", config.DefaultIpAddress),
			)
			s.metrics.LoadFallback(metrics.ReasonInvalidIP)
		}
	}

	if raw.Port != nil {
		if port, ok := decodePort(raw.Port); ok {
			cfg.Port = port
		} else {
			l.Warn("Invalid port in config file, using default",
				zap.ByteString("port", raw.Port),
				zap.Int("default", config.DefaultPort),
			)
			s.metrics.LoadFallback(metrics.ReasonInvalidPort)
		}
	}

	return cfg
}

func decodeAddress(raw json.RawMessage) (string, bool) {
	var ip string
	if err := json.Unmarshal(raw, &ip); err != nil {
		return "", false
	}
	return ip, config.ValidateAddress(ip)
}

// decodePort accepts any JSON number with an integral value in the port
// range, 8080.0 included.
func decodePort(raw json.RawMessage) (int, bool) {
	var num any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return 0, false
	}

	n, ok := num.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < 1 || f > 65535 {
		return 0, false
	}

	return int(f), true
}

func (s *Store) save(cfg *config.Server) {
	l := s.logger.With(
		zap.String("path", s.path),
	)

	if cfg == nil {
		l.Error("Refusing to save empty config")
		s.metrics.SaveFailure()
		return
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		l.Error("Failed to serialise config",
			zap.Error(err),
		)
		s.metrics.SaveFailure()
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		l.Error("Failed to create config directory",
			zap.Error(err),
		)
		s.metrics.SaveFailure()
		return
	}

	if err := renameio.WriteFile(s.path, data, 0o640); err != nil {
		l.Error("Failed to write config file",
			zap.Error(err),
		)
		s.metrics.SaveFailure()
		return
	}

	s.metrics.Saved()
	l.Info("Configuration saved",
		zap.String("ip_address", cfg.IpAddress),
		zap.Int("port", cfg.Port),
	)
}
