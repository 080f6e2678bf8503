package term

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kellegous/morning-on-the-charles/internal/config"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestWantColor(t *testing.T) {
	tests := []struct {
		name string
		mode config.ColorMode
		tty  bool
		vars map[string]string
		want bool
	}{
		{"always without tty", config.ColorAlways, false, nil, true},
		{"always ignores NO_COLOR", config.ColorAlways, true, map[string]string{"NO_COLOR": "1"}, true},
		{"never on tty", config.ColorNever, true, nil, false},
		{"auto on tty", config.ColorAuto, true, map[string]string{"TERM": "xterm-256color"}, true},
		{"auto without tty", config.ColorAuto, false, nil, false},
		{"auto with NO_COLOR", config.ColorAuto, true, map[string]string{"NO_COLOR": "1"}, false},
		{"auto on dumb terminal", config.ColorAuto, true, map[string]string{"TERM": "DUMB"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wantColor(tt.mode, tt.tty, env(tt.vars)))
		})
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.Equal(t, "\033[1;91m", Red)
	assert.Equal(t, "\033[0m", NC)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	for _, c := range []string{Red, Green, Yellow, Blue, Cyan, NC} {
		assert.Empty(t, c)
	}
}
