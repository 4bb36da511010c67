package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"yatube/internal/auth"
	"yatube/internal/models"
	"yatube/internal/store"
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage post groups",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group",
	Long: `Creates a new group that authors can assign posts to.

Example:
  yatube group create --title "Cats" --slug cats --description "All about cats"`,
	RunE: runGroupCreate,
}

var groupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	RunE:  runGroupList,
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE:  runUserCreate,
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a user together with all of their posts",
	RunE:  runUserDelete,
}

var (
	groupTitle       string
	groupSlug        string
	groupDescription string

	userName     string
	userEmail    string
	userPassword string
)

func init() {
	groupCreateCmd.Flags().StringVar(&groupTitle, "title", "", "group title")
	groupCreateCmd.Flags().StringVar(&groupSlug, "slug", "", "unique URL slug")
	groupCreateCmd.Flags().StringVar(&groupDescription, "description", "", "group description (up to 400 characters)")
	groupCreateCmd.MarkFlagRequired("title")
	groupCreateCmd.MarkFlagRequired("slug")
	groupCreateCmd.MarkFlagRequired("description")
	groupCmd.AddCommand(groupCreateCmd, groupListCmd)

	userCreateCmd.Flags().StringVar(&userName, "username", "", "username")
	userCreateCmd.Flags().StringVar(&userEmail, "email", "", "email address")
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "password")
	userCreateCmd.MarkFlagRequired("username")
	userCreateCmd.MarkFlagRequired("email")
	userCreateCmd.MarkFlagRequired("password")

	userDeleteCmd.Flags().StringVar(&userName, "username", "", "username")
	userDeleteCmd.MarkFlagRequired("username")
	userCmd.AddCommand(userCreateCmd, userDeleteCmd)
}

func runGroupCreate(cmd *cobra.Command, args []string) error {
	dbc, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer dbc.Close()

	g := &models.Group{Title: groupTitle, Slug: groupSlug, Description: groupDescription}
	if err := store.New(dbc).Groups.Create(cmd.Context(), g); err != nil {
		return err
	}
	logger.Info("group created", zap.Int64("id", g.ID), zap.String("slug", g.Slug))
	fmt.Fprintf(cmd.OutOrStdout(), "created group %d /group/%s\n", g.ID, g.Slug)
	return nil
}

func runGroupList(cmd *cobra.Command, args []string) error {
	dbc, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer dbc.Close()

	groups, err := store.New(dbc).Groups.List(cmd.Context())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, g := range groups {
		fmt.Fprintf(out, "%d\t%s\t%s\n", g.ID, g.Slug, g.Title)
	}
	return nil
}

func runUserCreate(cmd *cobra.Command, args []string) error {
	dbc, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer dbc.Close()

	hash, err := auth.HashPassword(userPassword)
	if err != nil {
		return err
	}
	u, err := store.New(dbc).Users.Create(cmd.Context(), userName, userEmail, hash)
	if err != nil {
		return err
	}
	logger.Info("user created", zap.Int64("id", u.ID), zap.String("username", u.Username))
	fmt.Fprintf(cmd.OutOrStdout(), "created user %d %s\n", u.ID, u.Username)
	return nil
}

func runUserDelete(cmd *cobra.Command, args []string) error {
	dbc, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer dbc.Close()

	users := store.New(dbc).Users
	u, err := users.ByUsername(cmd.Context(), userName)
	if err != nil {
		return err
	}
	if err := users.Delete(cmd.Context(), u.ID); err != nil {
		return err
	}
	logger.Info("user deleted", zap.Int64("id", u.ID), zap.String("username", u.Username))
	fmt.Fprintf(cmd.OutOrStdout(), "deleted user %s and their posts\n", u.Username)
	return nil
}
