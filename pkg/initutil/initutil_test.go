package initutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algo_tool/pkg/logutil"
)

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		changed  map[string]bool
		want     Config
		wantFail bool
	}{
		{
			name: "no env",
			want: NewConfig(),
		},
		{
			name: "env overrides defaults",
			env:  map[string]string{EnvLogFile: "a.log", EnvLogLevel: "debug"},
			want: Config{LogFile: "a.log", LogLevel: logutil.DEBUG},
		},
		{
			name:    "explicit flag wins",
			env:     map[string]string{EnvLogFile: "a.log", EnvLogLevel: "debug"},
			changed: map[string]bool{"log-level": true},
			want:    Config{LogFile: "a.log", LogLevel: logutil.WARN},
		},
		{
			name:     "bad level",
			env:      map[string]string{EnvLogLevel: "loud"},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLogFile, "")
			t.Setenv(EnvLogLevel, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := NewConfig()
			err := cfg.ApplyEnv(func(name string) bool { return tt.changed[name] })
			if tt.wantFail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestInitSystem(t *testing.T) {
	defer logutil.CloseLogger()

	cfg := Config{LogFile: "stderr", LogLevel: logutil.ERROR}
	require.NoError(t, InitSystem(cfg))
	assert.Equal(t, cfg, GetConfig())
}
