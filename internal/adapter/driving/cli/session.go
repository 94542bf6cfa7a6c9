// Package cli is the driving adapter for the interactive console: a
// numbered menu over the authentication gate, the vault service, and the
// password generator.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"passkeep/internal/application"
	"passkeep/internal/crypto"
	"passkeep/internal/domain/port/driven"
	"passkeep/internal/generator"
)

const menu = `
1. Add credential
2. Get credential
3. List credentials
4. Delete credential
5. Generate password
0. Exit
`

// Session drives the console loop. Reads and writes go through the injected
// reader/writer so the whole flow is scriptable in tests; the secret reader
// is swapped for a masked terminal read when stdin is a real terminal.
type Session struct {
	auth   *application.AuthService
	vault  *application.VaultService
	in     *bufio.Scanner
	out    io.Writer
	secret func(label string) (string, error)
}

// NewSession creates a session reading from in and writing to out, with
// plain-line secret entry.
func NewSession(auth *application.AuthService, vault *application.VaultService, in io.Reader, out io.Writer) *Session {
	s := &Session{
		auth:  auth,
		vault: vault,
		in:    bufio.NewScanner(in),
		out:   out,
	}
	s.secret = s.readLineSecret
	return s
}

// NewTerminalSession creates a session bound to stdin/stdout. Secret entry
// is masked (no echo) when stdin is a terminal.
func NewTerminalSession(auth *application.AuthService, vault *application.VaultService) *Session {
	s := NewSession(auth, vault, os.Stdin, os.Stdout)
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		s.secret = func(label string) (string, error) {
			fmt.Fprint(s.out, label)
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(s.out)
			if err != nil {
				return "", fmt.Errorf("read password: %w", err)
			}
			return string(b), nil
		}
	}
	return s
}

// Run executes the full session: first-run setup if needed, then
// authentication, then the menu loop. It returns application.ErrLocked when
// authentication attempts are exhausted; the caller terminates the process.
func (s *Session) Run(ctx context.Context) error {
	if s.auth.State() == application.StateAwaitingSetup {
		if err := s.setupMasterPassword(ctx); err != nil {
			return err
		}
	}
	if err := s.authenticate(ctx); err != nil {
		return err
	}
	return s.menuLoop(ctx)
}

func (s *Session) setupMasterPassword(ctx context.Context) error {
	fmt.Fprintln(s.out, "First run. Create a master password.")
	for {
		password, err := s.secret("Master password: ")
		if err != nil {
			return err
		}
		confirm, err := s.secret("Repeat: ")
		if err != nil {
			return err
		}

		err = s.auth.Setup(ctx, password, confirm)
		if errors.Is(err, application.ErrMismatch) {
			fmt.Fprintln(s.out, "Passwords do not match.")
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, "Master password saved.")
		return nil
	}
}

func (s *Session) authenticate(ctx context.Context) error {
	for s.auth.State() != application.StateAuthenticated {
		password, err := s.secret("Enter master password: ")
		if err != nil {
			return err
		}

		err = s.auth.Verify(ctx, password)
		switch {
		case errors.Is(err, application.ErrBadPassword):
			fmt.Fprintln(s.out, "Wrong password.")
		case err != nil:
			return err
		}
	}
	return nil
}

// menuLoop dispatches menu choices until exit. Operation failures are
// rendered as messages, never propagated; only input exhaustion ends the
// loop early.
func (s *Session) menuLoop(ctx context.Context) error {
	for {
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = s.addCredential(ctx)
		case "2":
			err = s.getCredential(ctx)
		case "3":
			err = s.listCredentials(ctx)
		case "4":
			err = s.deleteCredential(ctx)
		case "5":
			err = s.generatePassword()
		case "0":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice.")
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Session) addCredential(ctx context.Context) error {
	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}
	login, err := s.prompt("Login: ")
	if err != nil {
		return err
	}
	secret, err := s.secret("Password: ")
	if err != nil {
		return err
	}

	if err := s.vault.Add(ctx, name, login, secret); err != nil {
		fmt.Fprintln(s.out, "Could not save credential:", err)
		return nil
	}
	fmt.Fprintln(s.out, "Credential saved.")
	return nil
}

func (s *Session) getCredential(ctx context.Context) error {
	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}

	login, secret, err := s.vault.Get(ctx, name)
	switch {
	case errors.Is(err, driven.ErrNotFound):
		fmt.Fprintln(s.out, "Not found.")
	case errors.Is(err, crypto.ErrDecrypt):
		fmt.Fprintln(s.out, "Entry is unreadable: it was encrypted under a different key.")
	case err != nil:
		fmt.Fprintln(s.out, "Could not read credential:", err)
	default:
		fmt.Fprintf(s.out, "Login: %s\n", login)
		fmt.Fprintf(s.out, "Password: %s\n", secret)
	}
	return nil
}

func (s *Session) listCredentials(ctx context.Context) error {
	summaries, err := s.vault.List(ctx)
	if err != nil {
		fmt.Fprintln(s.out, "Could not list credentials:", err)
		return nil
	}
	if len(summaries) == 0 {
		fmt.Fprintln(s.out, "Vault is empty.")
		return nil
	}
	for _, c := range summaries {
		fmt.Fprintf(s.out, "- %s (%s)\n", c.Name, c.Login)
	}
	return nil
}

func (s *Session) deleteCredential(ctx context.Context) error {
	name, err := s.prompt("Name: ")
	if err != nil {
		return err
	}

	if err := s.vault.Delete(ctx, name); err != nil {
		fmt.Fprintln(s.out, "Could not delete credential:", err)
		return nil
	}
	fmt.Fprintln(s.out, "Deleted.")
	return nil
}

func (s *Session) generatePassword() error {
	for {
		raw, err := s.prompt(fmt.Sprintf("Length (default %d): ", generator.DefaultLength))
		if err != nil {
			return err
		}

		length := generator.DefaultLength
		if raw != "" {
			length, err = strconv.Atoi(raw)
			if err != nil {
				fmt.Fprintln(s.out, "Invalid length.")
				continue
			}
		}

		password, err := generator.Generate(length)
		if errors.Is(err, generator.ErrInvalidLength) {
			fmt.Fprintln(s.out, "Invalid length.")
			continue
		}
		if err != nil {
			fmt.Fprintln(s.out, "Could not generate password:", err)
			return nil
		}
		fmt.Fprintln(s.out, "Generated password:", password)
		return nil
	}
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readLineSecret reads a secret as a plain line, without trimming. Used
// when stdin is not a terminal and in tests.
func (s *Session) readLineSecret(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}
