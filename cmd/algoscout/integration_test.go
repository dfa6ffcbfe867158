package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/algoscout/internal/config"
	"github.com/csheth/algoscout/internal/tuitest"
)

func TestAlgoscoutListScreen(t *testing.T) {
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen"},
		Dir:     cmdDir,
		Env:     isolatedEnv(t),
		Width:   100,
		Height:  40,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: []byte("l")},
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if _, ok := rec.FinalFrame(); !ok {
		t.Fatalf("no frames captured")
	}
	if _, ok := rec.LastFrameContaining("アルゴリズム一覧", "15 個のアルゴリズムが見つかりました"); !ok {
		t.Fatalf("list screen never rendered:\n%s", lastPlain(rec))
	}
}

func TestAlgoscoutOpenImplementationTab(t *testing.T) {
	t.Parallel()

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--open", "bubble-sort"},
		Dir:     cmdDir,
		Env:     isolatedEnv(t),
		Width:   120,
		Height:  40,
		Steps: []tuitest.Step{
			{Delay: time.Second},
			{Input: []byte("2")},
			{Delay: time.Second},
			{Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if _, ok := rec.LastFrameContaining("バブルソート", "#include <stdio.h>"); !ok {
		t.Fatalf("implementation tab never rendered:\n%s", lastPlain(rec))
	}
}

func isolatedEnv(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	body := "export_path: " + filepath.Join(dir, "comparisons.json") + "\nlog:\n  file: " + filepath.Join(dir, "algoscout.log") + "\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return []string{config.EnvPath + "=" + cfgPath}
}

func lastPlain(rec *tuitest.Recording) string {
	frame, ok := rec.FinalFrame()
	if !ok {
		return "<no frames>"
	}
	return frame.Plain
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	tmp := t.TempDir()
	name := "algoscout-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(tmp, name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
