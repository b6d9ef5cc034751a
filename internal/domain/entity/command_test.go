package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want [][]string
	}{
		{"single word", "firefox", [][]string{{"firefox"}}},
		{"arguments", "notify-send hi", [][]string{{"notify-send", "hi"}}},
		{"quoted argument", `notify-send "hello world"`, [][]string{{"notify-send", "hello world"}}},
		{"single quotes", `sh -c 'echo a; echo b'`, [][]string{{"sh", "-c", "echo a; echo b"}}},
		{"semicolon", "pkill foo; foo --daemon", [][]string{{"pkill", "foo"}, {"foo", "--daemon"}}},
		{"and list", "mpc stop && mpc clear", [][]string{{"mpc", "stop"}, {"mpc", "clear"}}},
		{"trailing separator", "true;", [][]string{{"true"}}},
		{"escaped semicolon", `echo a\;b`, [][]string{{"echo", "a;b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line, false, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Subcommands())
			assert.Equal(t, tt.line, cmd.Line())
			assert.False(t, cmd.KeepRunning())
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{"empty", "", ErrEmptyCommand},
		{"blank", "   ", ErrEmptyCommand},
		{"only separators", ";;", ErrEmptyCommand},
		{"pipe", "ls | wc -l", ErrShellSyntax},
		{"redirect", "date > /tmp/now", ErrShellSyntax},
		{"input redirect", "wc -l < file", ErrShellSyntax},
		{"unterminated quote", `echo "oops`, ErrShellSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCommand(tt.line, false, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCommand_ErrorNamesOperator(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"ls | wc -l", `"|"`},
		{"date > /tmp/now", `">"`},
		{"echo 2>f", `">"`},
		{"cmd 2>&1", `">&"`},
		{"cat < in", `"<"`},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line, false, "")
			require.ErrorIs(t, err, ErrShellSyntax)
			assert.Contains(t, err.Error(), tt.want+" needs a shell")
		})
	}
}

func TestParseCommand_Shell(t *testing.T) {
	cmd, err := ParseCommand("date > /tmp/now", true, "/bin/bash")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"/bin/bash", "-c", "date > /tmp/now"}}, cmd.Subcommands())
	assert.True(t, cmd.KeepRunning())
}

func TestCommand_SubcommandsIsCopy(t *testing.T) {
	cmd := NewCommand([][]string{{"echo", "a"}}, false)
	got := cmd.Subcommands()
	got[0][0] = "rm"
	assert.Equal(t, [][]string{{"echo", "a"}}, cmd.Subcommands())
	assert.Equal(t, "echo a", cmd.Line())
}
