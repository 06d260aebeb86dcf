// Package librespot starts the external headless Spotify Connect daemon.
// The daemon registers itself with the backend as an addressable device; this
// package only launches it and never speaks to it directly.
package librespot

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Options describe how to launch the daemon.
type Options struct {
	// Binary is the librespot executable path (default "librespot").
	Binary string

	// Name is the device name the daemon registers with the backend.
	Name string

	// Token is the bearer credential handed to the daemon.
	Token string

	// Backend is the librespot audio backend (e.g. "pipe").
	Backend string

	// Device is the audio output target (e.g. "/dev/null" for the pipe
	// backend on a headless host).
	Device string
}

// Daemon is a launchable librespot process.
type Daemon struct {
	opts Options
	cmd  *exec.Cmd
}

// New creates a daemon launcher.
func New(opts Options) (*Daemon, error) {
	if opts.Binary == "" {
		opts.Binary = "librespot"
	}
	if opts.Name == "" {
		return nil, fmt.Errorf("librespot: device name is required")
	}
	if opts.Token == "" {
		return nil, fmt.Errorf("librespot: access token is required")
	}
	return &Daemon{opts: opts}, nil
}

// Args returns the command-line arguments used to launch the daemon.
func (d *Daemon) Args() []string {
	args := []string{
		"--name", d.opts.Name,
		"--token", d.opts.Token,
	}
	if d.opts.Backend != "" {
		args = append(args, "--backend", d.opts.Backend)
	}
	if d.opts.Device != "" {
		args = append(args, "--device", d.opts.Device)
	}
	return args
}

// Start launches the daemon as a child process. The process inherits stdout
// and stderr; cancelling the context kills it.
func (d *Daemon) Start(ctx context.Context) error {
	if d.cmd != nil {
		return fmt.Errorf("librespot: already started")
	}

	cmd := exec.CommandContext(ctx, d.opts.Binary, d.Args()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("librespot: failed to start %s: %w", d.opts.Binary, err)
	}

	d.cmd = cmd
	return nil
}

// PID returns the process ID of the running daemon, or 0 before Start.
func (d *Daemon) PID() int {
	if d.cmd == nil || d.cmd.Process == nil {
		return 0
	}
	return d.cmd.Process.Pid
}

// Wait blocks until the daemon exits.
func (d *Daemon) Wait() error {
	if d.cmd == nil {
		return fmt.Errorf("librespot: not started")
	}
	return d.cmd.Wait()
}
