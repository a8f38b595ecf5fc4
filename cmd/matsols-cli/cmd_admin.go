package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsols/matsols-api/internal/domain/user"
	"github.com/matsols/matsols-api/internal/infrastructure/auth"
	userrepo "github.com/matsols/matsols-api/internal/infrastructure/repository/user"
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create or reset the admin account",
	Long: `Create an ADMIN account, or reset the password and role of an existing
account with the same email. The password may also come from ADMIN_PASSWORD.`,
	RunE: runCreateAdmin,
}

func init() {
	createAdminCmd.Flags().String("email", "admin@matsols.com", "Admin email")
	createAdminCmd.Flags().String("password", "", "Admin password (min 8 characters)")
}

func runCreateAdmin(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("ADMIN_PASSWORD")
	}
	if password == "" {
		return errors.New("--password or ADMIN_PASSWORD is required")
	}

	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	svc := user.NewService(
		userrepo.NewUserRepository(rt.db),
		auth.NewBcryptHasher(0),
		auth.NewTokenIssuer(rt.cfg),
		rt.log,
	)
	admin, err := svc.EnsureAdmin(cmd.Context(), email, password)
	if err != nil {
		return err
	}
	fmt.Printf("admin ready: %s (%s)\n", admin.Email, admin.ID)
	return nil
}
