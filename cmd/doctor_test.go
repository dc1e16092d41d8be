package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestDoctorPassesForOllama(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("llm.provider", "ollama")

	cmd := doctorCmd
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := runDoctor(cmd, nil); err != nil {
		t.Fatalf("runDoctor() error = %v\noutput:\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "All checks passed") {
		t.Errorf("expected pass summary, got:\n%s", out.String())
	}
}

func TestDoctorFailsWithoutCredential(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("llm.provider", "openrouter")
	t.Setenv("OPENROUTER_API_KEY", "")

	cmd := doctorCmd
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runDoctor(cmd, nil)
	if err == nil {
		t.Fatalf("runDoctor() expected failure without a credential\noutput:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "credential is present") {
		t.Errorf("output should name the failed check, got:\n%s", out.String())
	}
}
