package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hossam-labs/hossam-react-app/internal/branding"
	"github.com/hossam-labs/hossam-react-app/internal/config"
	"github.com/hossam-labs/hossam-react-app/internal/logger"
	"github.com/hossam-labs/hossam-react-app/internal/runtime"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	debug      bool
	noProgress bool
)

// newRunner builds the Runner used for external commands. Tests replace it.
var newRunner = func() runtime.Runner {
	r := &runtime.ExecRunner{}
	if logger.DebugEnabled() {
		// Plain progress is used with --debug, so streamed output can't tear a bar.
		r.Stdout, r.Stderr = os.Stderr, os.Stderr
	}
	return r
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [flags] <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a React project with the external generator, migrates it to
yarn berry in Plug'n'Play mode, installs the standard addon libraries and
replaces the generated boilerplate with a curated template set.

Every positional argument is a project name, so any word can name a project.
A project name that looks like a path falls back to the default name.
Housekeeping is done with flags instead:

  --version [--short|--json]   print build information
  --doctor                     check node, the package manager and the templates
  --check-plan FILE            validate a template plan file
  --templates                  show what happens to the generated boilerplate
  --config-list                print every setting
  --config-get KEY             print one setting
  --config-set KEY=VALUE       persist a setting to the config file
  --config-path                print the config file location`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
		config.Load()
	},
	RunE: runRoot,

	// "completion" would otherwise be claimed as a command name.
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

// action is a housekeeping flag that replaces the bootstrap run.
type action struct {
	flag string
	run  func(cmd *cobra.Command) error
}

var actions = []action{
	{"version", runVersion},
	{"doctor", runDoctor},
	{"check-plan", runCheckPlan},
	{"templates", runTemplates},
	{"config-list", runConfigList},
	{"config-get", runConfigGet},
	{"config-set", runConfigSet},
	{"config-path", runConfigPath},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&debug, "debug", false, "Enable debug logging")
	f.BoolVar(&noProgress, "no-progress", false, "Print one line per step instead of a progress bar")

	f.String("package-manager", "yarn", "Package manager executable")
	f.String("generator", "yarn", "Project generator executable")
	f.String("kind", "react-app", "Generator project kind")
	f.String("linker-variant", "berry", "Package manager version to switch to")
	f.String("template-dir", "", "Directory with template files (default: built-in set)")

	f.BoolVar(&showVersion, "version", false, "Print version information")
	f.BoolVar(&versionShort, "short", false, "With --version, print the version number only")
	f.BoolVar(&versionJSON, "json", false, "With --version, print version info as JSON")
	f.Bool("doctor", false, "Check that the tools needed to bootstrap a project are available")
	f.StringVar(&checkPlan, "check-plan", "", "Validate a template plan file at the given path")
	f.Bool("templates", false, "Show what template materialization does to a new project")
	f.Bool("config-list", false, "Print every configuration value")
	f.String("config-get", "", "Print one configuration value")
	f.String("config-set", "", "Persist a configuration value given as KEY=VALUE")
	f.Bool("config-path", false, "Print the config file location")

	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.flag
	}
	rootCmd.MarkFlagsMutuallyExclusive(names...)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := bindRunFlags(cmd); err != nil {
		return err
	}
	if (versionShort || versionJSON) && !showVersion {
		return fmt.Errorf("--short and --json are only valid with --version")
	}

	for _, a := range actions {
		if !cmd.Flags().Changed(a.flag) {
			continue
		}
		if len(args) > 0 {
			return fmt.Errorf("--%s does not take a project name, got %q", a.flag, strings.Join(args, " "))
		}
		return a.run(cmd)
	}
	return runCreate(cmd, args)
}

// runFlags maps root command flags to configuration keys.
var runFlags = map[string]string{
	"package-manager": config.KeyPackageManager,
	"generator":       config.KeyGenerator,
	"kind":            config.KeyKind,
	"linker-variant":  config.KeyLinkerVariant,
	"template-dir":    config.KeyTemplateDir,
}

func bindRunFlags(cmd *cobra.Command) error {
	for flag, key := range runFlags {
		if err := config.BindFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
