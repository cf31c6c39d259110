package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LovationAdmin/buildadvisor-api/utils"

	"github.com/spf13/cobra"
)

var tokenFlags struct {
	userID string
	secret string
	ttl    time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an access token for local testing of the builds API",
	RunE:  runToken,
}

func init() {
	f := tokenCmd.Flags()
	f.StringVar(&tokenFlags.userID, "user", "", "User id to embed (required)")
	f.StringVar(&tokenFlags.secret, "secret", os.Getenv("JWT_SECRET"), "Signing secret (defaults to $JWT_SECRET)")
	f.DurationVar(&tokenFlags.ttl, "ttl", 24*time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("user")
}

func runToken(cmd *cobra.Command, _ []string) error {
	if tokenFlags.secret == "" {
		return fmt.Errorf("no signing secret: pass --secret or set JWT_SECRET")
	}
	token, err := utils.GenerateAccessToken(tokenFlags.secret, tokenFlags.userID, tokenFlags.ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
