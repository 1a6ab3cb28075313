package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunProcessesStdin(t *testing.T) {
	var out bytes.Buffer
	stdin := strings.NewReader("Follow us: {{< twitter_follow >}}\n")

	if err := run(context.Background(), []string{"-site", "gopher"}, stdin, &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "https://twitter.com/intent/follow?screen_name=gopher") {
		t.Fatalf("unexpected output %s", out.String())
	}
}

func TestRunWordPressFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.txt")
	if err := os.WriteFile(path, []byte("[tweet id=20 /]"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-wordpress", "-file", path}, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), `data-id="20"`) {
		t.Fatalf("expected embedded tweet, got %s", out.String())
	}
}

func TestRunCardAndConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "social.yaml")
	yaml := "site:\n  screen_name: gopher\nwidgets:\n  theme: dark\n"
	if err := os.WriteFile(cfgPath, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out bytes.Buffer
	args := []string{"-config", cfgPath, "-card", `{"card":"summary","title":"Hi"}`, "-widgets"}
	if err := run(context.Background(), args, strings.NewReader(""), &out); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	for _, want := range []string{
		`<meta name="twitter:title" content="Hi"/>`,
		`<meta name="twitter:site" content="@gopher"/>`,
		`<meta name="twitter:widgets:theme" content="dark"/>`,
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %s in output %s", want, out.String())
		}
	}
}

func TestRunRejectsInvalidSite(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-site", "not valid!"}, strings.NewReader(""), &out)
	if err == nil {
		t.Fatal("expected invalid site to fail")
	}
}
