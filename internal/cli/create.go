package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hossam-labs/hossam-react-app/internal/branding"
	"github.com/hossam-labs/hossam-react-app/internal/config"
	"github.com/hossam-labs/hossam-react-app/internal/logger"
	"github.com/hossam-labs/hossam-react-app/internal/pipeline"
	"github.com/hossam-labs/hossam-react-app/internal/progress"
	"github.com/hossam-labs/hossam-react-app/internal/resolver"
	"github.com/hossam-labs/hossam-react-app/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	accent      = lipgloss.Color("6")
	green       = lipgloss.Color("76")
	dim         = lipgloss.Color("243")
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle   = lipgloss.NewStyle().Foreground(dim)
	successStyle = lipgloss.NewStyle().Foreground(green)
)

func runCreate(cmd *cobra.Command, args []string) error {
	settings := config.Current()

	inv, err := resolver.Resolve(args)
	if err != nil {
		return err
	}

	plan, err := scaffold.DefaultPlan()
	if err != nil {
		return fmt.Errorf("loading template plan: %w", err)
	}
	templates, err := scaffold.OpenTemplates(settings.TemplateDir)
	if err != nil {
		return err
	}
	if settings.TemplateDir != "" {
		logger.Info("Using templates from %s\n", settings.TemplateDir)
	}

	terminal := progress.Interactive(os.Stderr)
	progress.ConfigureColor(terminal)

	addons := pipeline.DefaultAddons()
	out := cmd.OutOrStdout()
	printBanner(out, inv, addons)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	run := &pipeline.Run{
		Invocation: inv,
		Settings:   settings,
		Runner:     newRunner(),
		Reporter:   progress.New(cmd.ErrOrStderr(), terminal && !noProgress && !debug),
	}
	if err := pipeline.New(addons, plan, templates).Execute(ctx, run); err != nil {
		return err
	}

	printSummary(out, run)
	return nil
}

func printBanner(w io.Writer, inv *resolver.Invocation, addons []string) {
	body := titleStyle.Render(branding.DisplayName()) + "\n" + branding.Description()
	fmt.Fprintln(w, bannerStyle.Render(body))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Project location:"), inv.Target)
	fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Auto-installed libraries:"), strings.Join(addons, ", "))
}

func printSummary(w io.Writer, run *pipeline.Run) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf("Project %s created at %s", run.Invocation.Name, run.Invocation.Target))
	if res := run.Result; res != nil {
		fmt.Fprintf(w, "%s %d boilerplate file(s) removed, %d template(s) placed\n",
			labelStyle.Render("Templates:"), len(res.Removed()), len(res.Placed()))
		for _, o := range res.SkippedTemplates() {
			logger.Warn("Skipped %s: %v\n", o.Path, o.Reason)
		}
		for _, o := range res.Skipped() {
			if o.Op != scaffold.OpPlace {
				logger.Debug("[DEBUG] Nothing to %s at %s: %v\n", o.Op, o.Path, o.Reason)
			}
		}
	}
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", run.Invocation.Name)
	fmt.Fprintf(w, "  2. %s start\n", run.Settings.PackageManager)
}
