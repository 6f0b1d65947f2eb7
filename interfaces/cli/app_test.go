package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `
categories:
  - name: Pickaxe
    blocklist:
      - IRON_ORE
    tools:
      - material: IRON_PICKAXE
      - material: DIAMOND_PICKAXE
        name: Excalibur
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "veinminer.yml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), err
}

func TestApp_Version(t *testing.T) {
	output, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(output, "xVeinMiner version") {
		t.Errorf("version output missing 'xVeinMiner version', got: %s", output)
	}
}

func TestApp_Help(t *testing.T) {
	output, err := runApp(t, "--help")
	if err != nil {
		t.Fatalf("help command failed: %v", err)
	}
	for _, want := range []string{"validate", "categories", "resolve"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q command, got: %s", want, output)
		}
	}
}

func TestApp_Validate(t *testing.T) {
	output, err := runApp(t, "validate", "-c", writeTestConfig(t))
	if err != nil {
		t.Fatalf("validate command failed: %v", err)
	}
	// Hand plus Pickaxe.
	if !strings.Contains(output, "2 categories") {
		t.Errorf("validate output = %s, want '2 categories'", output)
	}
}

func TestApp_ValidateInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "veinminer.yml")
	if err := os.WriteFile(path, []byte("categories:\n  - tools: []\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := runApp(t, "validate", "-c", path); err == nil {
		t.Error("validate succeeded for an invalid config, want an error")
	}
}

func TestApp_Categories(t *testing.T) {
	output, err := runApp(t, "categories", "-c", writeTestConfig(t), "--verbose")
	if err != nil {
		t.Fatalf("categories command failed: %v", err)
	}
	for _, want := range []string{"Hand:", "Pickaxe:", "IRON_PICKAXE", "Excalibur", "IRON_ORE"} {
		if !strings.Contains(output, want) {
			t.Errorf("categories output missing %q, got: %s", want, output)
		}
	}
}

func TestApp_Resolve(t *testing.T) {
	path := writeTestConfig(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "material match",
			args: []string{"resolve", "-c", path, "--material", "IRON_PICKAXE"},
			want: "category: Pickaxe",
		},
		{
			name: "named match",
			args: []string{"resolve", "-c", path, "--material", "DIAMOND_PICKAXE", "--name", "Excalibur"},
			want: "Excalibur",
		},
		{
			name: "empty item resolves to hand",
			args: []string{"resolve", "-c", path, "--amount", "0"},
			want: "category: Hand",
		},
		{
			name: "no match",
			args: []string{"resolve", "-c", path, "--material", "SHEARS"},
			want: "no category matches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatalf("resolve command failed: %v", err)
			}
			if !strings.Contains(output, tt.want) {
				t.Errorf("resolve output = %s, want it to contain %q", output, tt.want)
			}
		})
	}
}
