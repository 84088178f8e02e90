package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	authEmail    string
	authPassword string
	authName     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := api.Signup(cmd.Context(), authEmail, authPassword, authName)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), u)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := api.Login(cmd.Context(), authEmail, authPassword)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), s)
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if isDemo() {
			return errors.New("image upload is not available in demo mode")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		url, err := api.UploadImage(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "admin email")
		c.Flags().StringVar(&authPassword, "password", "", "admin password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	signupCmd.Flags().StringVar(&authName, "name", "", "display name")
	_ = signupCmd.MarkFlagRequired("name")

	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(uploadCmd)
}
