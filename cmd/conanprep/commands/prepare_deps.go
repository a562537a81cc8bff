package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/conanprep/internal/app"
	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newPrepareDepsCmd() *cobra.Command {
	var buildType string

	cmd := &cobra.Command{
		Use:   "prepare-deps",
		Short: "Write the toolchain profile and run conan install",
		Long: "Detects the MSVC toolset from VCToolsVersion, writes a Conan profile for the\n" +
			"requested build type and installs the project's dependencies with it.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := c.projectRoot()
			if err != nil {
				return zerr.Wrap(err, domain.ErrWorkingDirFailed.Error())
			}

			settings, err := c.loadSettings(cmd, root)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("build-type") && settings.BuildType != "" {
				buildType = settings.BuildType.String()
			}
			bt, err := domain.ParseBuildType(buildType)
			if err != nil {
				return err
			}

			outcome, err := c.app.PrepareDeps(cmd.Context(), app.PrepareOptions{
				OutputDir: c.resolveOutputDir(root, settings),
				Installer: settings.Installer,
				Config: domain.BuildConfiguration{
					// The flag defaults to true and only has a positive form, so
					// passing it or not makes no difference. Kept as is.
					BuildMissing: true,
					BuildType:    bt,
				},
				Env: c.env,
			})
			if err != nil {
				return err
			}

			c.exitCode = outcome.ExitCode
			return nil
		},
	}

	cmd.Flags().Bool("build-missing", true, "Build packages that have no prebuilt binary")
	cmd.Flags().StringVar(&buildType, "build-type", domain.DefaultBuildType.String(),
		"Build type: Debug, Release, RelWithDebInfo or MinSizeRel")

	return cmd
}

// loadSettings reads the settings file. The default file may be absent; one named
// with --config must exist.
func (c *CLI) loadSettings(cmd *cobra.Command, root string) (*domain.Settings, error) {
	path := resolve(root, c.configPath)
	if cmd.Flags().Changed("config") {
		return c.loader.LoadFile(path)
	}
	return c.loader.Load(path)
}

// resolveOutputDir applies --output-dir, then the settings file, then "<root>/.out".
func (c *CLI) resolveOutputDir(root string, settings *domain.Settings) string {
	switch {
	case c.outputDir != "":
		return resolve(root, c.outputDir)
	case settings.OutputDir != "":
		return settings.OutputDir
	default:
		return domain.DefaultOutputDir(root)
	}
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
