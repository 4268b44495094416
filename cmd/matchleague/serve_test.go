package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/match-league/internal/config"
	"github.com/vovakirdan/match-league/internal/platform/tui"
)

func TestSSHServerConfigDefaults(t *testing.T) {
	got := sshServerConfig(config.GameConfig{}, 0)
	if got != tui.DefaultSSHServerConfig() {
		t.Errorf("empty config = %+v, expected the defaults", got)
	}
}

func TestSSHServerConfigOverrides(t *testing.T) {
	var cfg config.GameConfig
	cfg.Server.SSHAddress = ":2222"
	cfg.Server.HostKeyPath = "/tmp/key"
	cfg.Server.IdleTimeout = time.Minute
	cfg.Results.Timeout = 3 * time.Second

	got := sshServerConfig(cfg, 60)
	want := tui.SSHServerConfig{
		Address:       ":2222",
		HostKeyPath:   "/tmp/key",
		IdleTimeout:   time.Minute,
		ResultTimeout: 3 * time.Second,
		FPS:           60,
	}
	if got != want {
		t.Errorf("sshServerConfig = %+v, expected %+v", got, want)
	}
}
