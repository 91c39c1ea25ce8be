package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sachin1-28/frontend-potfolio-code-sub000/internal/cliconfig"
	"github.com/Sachin1-28/frontend-potfolio-code-sub000/pkg/folio"
)

const helpDescription = `
Manage the content of your portfolio site from the terminal.

Highlights:
  - Sign in once; the session is kept in ~/.folio and reused by every command.
  - List, create, update and delete skills, projects, experiences and certifications.
  - Edit records as TOML drafts: export with "draft", edit, submit with --file.
  - Configure via ~/.folio/config.toml, FOLIO_* environment variables (.env honoured) or flags.
`

var exampleUsage = strings.TrimSpace(`
  folio login --email me@example.com
  folio skills list --category frontend
  folio projects draft 64f1c0 --file project.toml && folio projects update 64f1c0 --file project.toml
  folio sync --watch --output json
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// versionString is the build version followed by the SDK module versions.
func versionString() string {
	mods := folio.ModuleVersions()
	names := make([]string, 0, len(mods))
	for name := range mods {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+mods[name])
	}
	return fmt.Sprintf("%s %s/%s (%s)", getVersion(), runtime.GOOS, runtime.GOARCH, strings.Join(parts, ", "))
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "folio",
		Short:             "Manage portfolio content from the terminal",
		Long:              strings.TrimSpace(helpDescription),
		Example:           exampleUsage,
		Version:           versionString(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	a.bindFlags(root)

	root.AddCommand(
		loginCmd(a),
		logoutCmd(a),
		whoamiCmd(a),
		verifyCmd(a),
		syncCmd(a),
		skillsCmd(a),
		projectsCmd(a),
		experiencesCmd(a),
		certificationsCmd(a),
		aboutCmd(a),
		contactCmd(a),
	)
	return root
}

func main() {
	a := newApp(cliconfig.DefaultConfig())
	if err := newRootCmd(a).Execute(); err != nil {
		a.log.Error().Err(err).Msg("folio")
		_ = a.close()
		os.Exit(1)
	}
}
