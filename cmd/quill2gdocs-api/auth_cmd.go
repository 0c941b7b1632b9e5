package main

import (
	"fmt"
	"os"

	"github.com/Skuskusku13/app-google-auth/config"
	"github.com/Skuskusku13/app-google-auth/gdocs"
)

func handleAuth(cfg *config.Config) error {
	if err := gdocs.Authenticate(cfg.CredentialsPath, cfg.TokenPath); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "Authentication complete.")
	fmt.Fprintf(os.Stderr, "Token stored at: %s\n", cfg.TokenPath)
	return nil
}
