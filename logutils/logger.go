package logutils

import (
	"github.com/agentsmithers/mcp-server-config/config"
	"go.uber.org/zap"
)

func NewLogger(cfg *config.Log) (*zap.Logger, error) {
	zc, err := cfg.ZapConfig()
	if err != nil {
		return nil, err
	}
	return zc.Build()
}
