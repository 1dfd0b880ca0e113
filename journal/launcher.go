package journal

import (
	"context"
	"os/exec"
	"runtime"
)

// Launcher opens a saved journal file, typically in the user's editor.
type Launcher interface {
	Launch(ctx context.Context, path string) error
}

// The LauncherFunc type is an adapter to allow the use of ordinary functions as Launcher.
type LauncherFunc func(ctx context.Context, path string) error

// Launch calls f(ctx, path).
func (f LauncherFunc) Launch(ctx context.Context, path string) error {
	return f(ctx, path)
}

// ExecLauncher opens files with the platform's default application.
// It does not wait for the application to exit.
type ExecLauncher struct{}

func (ExecLauncher) Launch(ctx context.Context, path string) error {
	name, args := openCommand(runtime.GOOS, path)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func openCommand(goos string, path string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{path}
	case "windows":
		return "cmd", []string{"/c", "start", "", path}
	default:
		return "xdg-open", []string{path}
	}
}
