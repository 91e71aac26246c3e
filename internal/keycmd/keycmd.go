// Package keycmd implements the `lexicode setkey` terminal subcommand,
// which sets the admin key guarding destructive API endpoints.
package keycmd

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/yourusername/lexicode/internal/auth"
	"github.com/yourusername/lexicode/internal/db"
)

// Run prompts for a new admin key (masked input) and stores its bcrypt hash.
func Run(database *db.DB) error {
	key, err := prompt("New admin key: ")
	if err != nil {
		return fmt.Errorf("keycmd.Run: %w", err)
	}
	if len(key) < 8 {
		return fmt.Errorf("keycmd.Run: key must be at least 8 characters")
	}
	confirm, err := prompt("Repeat admin key: ")
	if err != nil {
		return fmt.Errorf("keycmd.Run: %w", err)
	}
	if key != confirm {
		return fmt.Errorf("keycmd.Run: keys do not match")
	}
	if err := auth.SetAdminKey(context.Background(), database, key); err != nil {
		return err
	}
	fmt.Println("Admin key updated.")
	return nil
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
