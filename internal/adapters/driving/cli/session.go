package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:         "session",
	Short:       "Manage the handoff session",
	Annotations: map[string]string{annotationNoServices: "true"},
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh session",
	Long: `Generates a new session id and stores it as session.id. Handoffs left
by "menusearch open" under the old session are no longer seen.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runSessionNew,
}

var sessionShowCmd = &cobra.Command{
	Use:         "show",
	Short:       "Print the current session id",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoServices: "true"},
	RunE:        runSessionShow,
}

func init() {
	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionNew(cmd *cobra.Command, _ []string) error {
	svc, err := settingsService()
	if err != nil {
		return err
	}
	id := uuid.NewString()
	if err := svc.SetSession(id); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	cmd.Println(id)
	return nil
}

func runSessionShow(cmd *cobra.Command, _ []string) error {
	if opts.Session != "" {
		cmd.Println(opts.Session)
		return nil
	}
	svc, err := settingsService()
	if err != nil {
		return err
	}
	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Println(settings.Session.ID)
	return nil
}
