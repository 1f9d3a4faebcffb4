package main

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	assert.Equal(t, "config.env", configPath)
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	assert.Equal(t, "myconfig.env", configPath)
}

func TestPrintBuildInfo_Output(t *testing.T) {
	old := os.Stdout
	rPipe, wPipe, _ := os.Pipe()
	os.Stdout = wPipe

	printBuildInfo()

	wPipe.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(rPipe)
	assert.Contains(t, buf.String(), "Starting service version")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.appHost)
	assert.Equal(t, "8080", cfg.appPort)
	assert.Equal(t, "info", cfg.logLevel)
	assert.Equal(t, 5432, cfg.pgPort)
	assert.Equal(t, 6379, cfg.redisPort)
	assert.Equal(t, "swap-events", cfg.kafkaTopic)
	assert.Equal(t, 7*24*3600, cfg.jwtExpSecond)
	assert.Equal(t, 600, cfg.resetTokenExpSecond)
	assert.False(t, cfg.swapStrictResolve)
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_PORT", "55432")
	t.Setenv("JWT_EXP_SECOND", "3600")
	t.Setenv("SWAP_STRICT_RESOLVE", "true")

	cfg, err := parseConfig("nonexistent.env")
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.appPort)
	assert.Equal(t, 55432, cfg.pgPort)
	assert.Equal(t, 3600, cfg.jwtExpSecond)
	assert.True(t, cfg.swapStrictResolve)
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	t.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := parseConfig("nonexistent.env")
	assert.Error(t, err)
}
