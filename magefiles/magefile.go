//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	templDir  = "./internal/templates"
	exportDir = "./out"
)

// Generate runs templ generate targeting the templates directory.
// This must be run before Build or Dev any time a .templ file changes.
func Generate() error {
	if _, err := exec.LookPath("templ"); err != nil {
		fmt.Println(">> templ not found; install with:")
		fmt.Println("   go install github.com/a-h/templ/cmd/templ@v0.3.1001")
		return err
	}
	fmt.Println(">> templ generate", templDir)
	return sh.Run("templ", "generate", templDir)
}

// Build generates templ output, tidies deps, then compiles ./bin/report-server
// and ./bin/report-export.
func Build() error {
	mg.Deps(Generate, Tidy)
	fmt.Println(">> Building server binary...")
	if err := sh.Run("go", "build", "-o", "bin/report-server", "./cmd/server"); err != nil {
		return err
	}
	fmt.Println(">> Building export binary...")
	return sh.Run("go", "build", "-o", "bin/report-export", "./cmd/export")
}

// Run builds then executes the server binary.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server on :" + port() + " ...")
	return sh.Run("./bin/report-server")
}

// Dev generates templates then starts the server via go run with debug
// logging. Use Watch for live template reloading.
func Dev() error {
	mg.Deps(Generate)
	fmt.Println(">> Dev mode: go run ./cmd/server ...")
	cmd := exec.Command("go", "run", "./cmd/server")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), "PORT="+port(), "LOG_LEVEL=debug")
	return cmd.Run()
}

// Watch runs templ generate --watch in the background and the server in the
// foreground. Ctrl-C stops both.
func Watch() error {
	mg.Deps(Generate)

	fmt.Println(">> Starting templ watcher...")
	watcher := exec.Command("templ", "generate", "--watch", "-f", templDir)
	watcher.Stdout = os.Stdout
	watcher.Stderr = os.Stderr
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start templ watcher: %w", err)
	}

	fmt.Println(">> Starting server (go run)...")
	server := exec.Command("go", "run", "./cmd/server")
	server.Stdout = os.Stdout
	server.Stderr = os.Stderr
	server.Env = append(os.Environ(), "PORT="+port(), "LOG_LEVEL=debug")
	if err := server.Start(); err != nil {
		watcher.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Kill()
	watcher.Process.Kill()
	return nil
}

// Export writes every layout variant of the report into ./out.
func Export() error {
	if err := os.MkdirAll(exportDir, 0o755); err != nil {
		return err
	}
	fmt.Println(">> Exporting all layouts to", exportDir)
	return sh.RunV("go", "run", "./cmd/export", "--all", "--out", exportDir)
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test generates templates then runs all unit tests.
func Test() error {
	mg.Deps(Generate)
	fmt.Println(">> Running tests...")
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and exported documents.
func Clean() error {
	fmt.Println(">> Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	return os.RemoveAll(exportDir)
}

// Install builds and installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.Run("go", "install", "./cmd/server", "./cmd/export")
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
