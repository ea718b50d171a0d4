package cli

import (
	"fmt"
	"io/fs"

	"github.com/hossam-labs/hossam-react-app/internal/config"
	"github.com/hossam-labs/hossam-react-app/internal/scaffold"
	"github.com/spf13/cobra"
)

func runTemplates(cmd *cobra.Command) error {
	plan, err := scaffold.DefaultPlan()
	if err != nil {
		return fmt.Errorf("loading template plan: %w", err)
	}
	templates, err := scaffold.OpenTemplates(config.Get(config.KeyTemplateDir))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Remove:")
	for _, p := range plan.Remove {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintln(out, "Create directories:")
	for _, d := range plan.Directories {
		fmt.Fprintf(out, "  %s/\n", d)
	}
	fmt.Fprintln(out, "Place templates:")
	for _, f := range plan.Files {
		marker := "      "
		if f.Substitute {
			marker = "[name]"
		}
		status := ""
		if _, err := fs.Stat(templates, f.Template); err != nil {
			status = " (missing, will be skipped)"
		}
		fmt.Fprintf(out, "  %s %s -> %s%s\n", marker, f.Template, f.Dest, status)
	}
	fmt.Fprintln(out, "Clean up:")
	for _, c := range plan.Cleanup {
		fmt.Fprintf(out, "  %s\n", c.Path)
	}
	return nil
}
