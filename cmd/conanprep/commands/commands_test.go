package commands_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/conanprep/cmd/conanprep/commands"
	"go.trai.ch/conanprep/internal/adapters/config"
	"go.trai.ch/conanprep/internal/app"
	"go.trai.ch/conanprep/internal/build"
	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	prepareFunc func(ctx context.Context, opts app.PrepareOptions) (domain.ProcessOutcome, error)
}

func (m *mockApp) PrepareDeps(ctx context.Context, opts app.PrepareOptions) (domain.ProcessOutcome, error) {
	if m.prepareFunc != nil {
		return m.prepareFunc(ctx, opts)
	}
	return domain.ProcessOutcome{}, nil
}

// capture returns an app that records the options it was called with.
func capture(opts *app.PrepareOptions, outcome domain.ProcessOutcome) *mockApp {
	return &mockApp{
		prepareFunc: func(_ context.Context, o app.PrepareOptions) (domain.ProcessOutcome, error) {
			*opts = o
			return outcome, nil
		},
	}
}

func emptySettings(t *testing.T) *mocks.MockConfigLoader {
	t.Helper()
	loader := mocks.NewMockConfigLoader(gomock.NewController(t))
	loader.EXPECT().Load(gomock.Any()).Return(&domain.Settings{}, nil).AnyTimes()
	return loader
}

func TestCommands_PrepareDeps(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var got app.PrepareOptions
		env := domain.WithToolsetVersion("14.38.33130")

		cli := commands.New(capture(&got, domain.ProcessOutcome{}), emptySettings(t),
			commands.WithWorkingDir("/proj"), commands.WithEnvironment(env))
		cli.SetArgs([]string{"prepare-deps"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.BuildTypeDebug, got.Config.BuildType)
		assert.True(t, got.Config.BuildMissing)
		assert.Equal(t, filepath.Join("/proj", ".out"), got.OutputDir)
		assert.Empty(t, got.Installer)
		assert.Equal(t, env, got.Env)
		assert.Equal(t, 0, cli.ExitCode())
	})

	t.Run("build type flag", func(t *testing.T) {
		for _, bt := range domain.BuildTypes() {
			t.Run(bt.String(), func(t *testing.T) {
				var got app.PrepareOptions
				cli := commands.New(capture(&got, domain.ProcessOutcome{}), emptySettings(t),
					commands.WithWorkingDir("/proj"))
				cli.SetArgs([]string{"prepare-deps", "--build-type", bt.String()})

				require.NoError(t, cli.Execute(context.Background()))
				assert.Equal(t, bt, got.Config.BuildType)
			})
		}
	})

	t.Run("build missing is always on", func(t *testing.T) {
		for _, args := range [][]string{
			{"prepare-deps"},
			{"prepare-deps", "--build-missing"},
			{"prepare-deps", "--build-missing=false"},
		} {
			var got app.PrepareOptions
			cli := commands.New(capture(&got, domain.ProcessOutcome{}), emptySettings(t),
				commands.WithWorkingDir("/proj"))
			cli.SetArgs(args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.True(t, got.Config.BuildMissing, "args: %v", args)
		}
	})

	t.Run("rejects unknown build type", func(t *testing.T) {
		mock := &mockApp{
			prepareFunc: func(_ context.Context, _ app.PrepareOptions) (domain.ProcessOutcome, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, emptySettings(t), commands.WithWorkingDir("/proj"))
		cli.SetArgs([]string{"prepare-deps", "--build-type", "Profile"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidBuildType.Error())
	})

	t.Run("propagates installer exit code", func(t *testing.T) {
		var got app.PrepareOptions
		cli := commands.New(capture(&got, domain.ProcessOutcome{ExitCode: 6}), emptySettings(t),
			commands.WithWorkingDir("/proj"))
		cli.SetArgs([]string{"prepare-deps"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 6, cli.ExitCode())
	})

	t.Run("returns error on app failure", func(t *testing.T) {
		mock := &mockApp{
			prepareFunc: func(_ context.Context, _ app.PrepareOptions) (domain.ProcessOutcome, error) {
				return domain.ProcessOutcome{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock, emptySettings(t), commands.WithWorkingDir("/proj"))
		cli.SetArgs([]string{"prepare-deps"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Settings(t *testing.T) {
	t.Run("settings supply defaults", func(t *testing.T) {
		loader := mocks.NewMockConfigLoader(gomock.NewController(t))
		loader.EXPECT().Load(filepath.Join("/proj", domain.SettingsFileName)).Return(&domain.Settings{
			OutputDir: "/elsewhere/out",
			Installer: "conan2",
			BuildType: domain.BuildTypeRelease,
		}, nil)

		var got app.PrepareOptions
		cli := commands.New(capture(&got, domain.ProcessOutcome{}), loader, commands.WithWorkingDir("/proj"))
		cli.SetArgs([]string{"prepare-deps"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/elsewhere/out", got.OutputDir)
		assert.Equal(t, "conan2", got.Installer)
		assert.Equal(t, domain.BuildTypeRelease, got.Config.BuildType)
	})

	t.Run("flags win over settings", func(t *testing.T) {
		loader := mocks.NewMockConfigLoader(gomock.NewController(t))
		loader.EXPECT().LoadFile(filepath.Join("/proj", "ci", "conanprep.yaml")).Return(&domain.Settings{
			OutputDir: "/elsewhere/out",
			BuildType: domain.BuildTypeRelease,
		}, nil)

		var got app.PrepareOptions
		cli := commands.New(capture(&got, domain.ProcessOutcome{}), loader, commands.WithWorkingDir("/proj"))
		cli.SetArgs([]string{
			"prepare-deps",
			"--config", "ci/conanprep.yaml",
			"--output-dir", "build",
			"--build-type", "MinSizeRel",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, filepath.Join("/proj", "build"), got.OutputDir)
		assert.Equal(t, domain.BuildTypeMinSizeRel, got.Config.BuildType)
	})

	t.Run("settings error", func(t *testing.T) {
		loader := mocks.NewMockConfigLoader(gomock.NewController(t))
		loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigParseFailed)

		cli := commands.New(&mockApp{}, loader, commands.WithWorkingDir("/proj"))
		cli.SetArgs([]string{"prepare-deps"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
	})
}

func TestCommands_ConfigFlag(t *testing.T) {
	t.Run("named file must exist", func(t *testing.T) {
		root := t.TempDir()
		loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))
		mock := &mockApp{
			prepareFunc: func(_ context.Context, _ app.PrepareOptions) (domain.ProcessOutcome, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, loader, commands.WithWorkingDir(root))
		cli.SetArgs([]string{"prepare-deps", "--config", "typo.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
		assert.ErrorContains(t, err, filepath.Join(root, "typo.yaml"))
	})

	t.Run("default file may be absent", func(t *testing.T) {
		root := t.TempDir()
		loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))

		var got app.PrepareOptions
		cli := commands.New(capture(&got, domain.ProcessOutcome{}), loader, commands.WithWorkingDir(root))
		cli.SetArgs([]string{"prepare-deps"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.DefaultOutputDir(root), got.OutputDir)
	})

	t.Run("named file is read", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "ci.yaml"), []byte("build_type: Release\n"), domain.FilePerm))
		loader := config.NewLoader(mocks.NewMockLogger(gomock.NewController(t)))

		var got app.PrepareOptions
		cli := commands.New(capture(&got, domain.ProcessOutcome{}), loader, commands.WithWorkingDir(root))
		cli.SetArgs([]string{"prepare-deps", "-c", "ci.yaml"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.BuildTypeRelease, got.Config.BuildType)
	})
}

func TestCommands_NoSubcommand(t *testing.T) {
	mock := &mockApp{
		prepareFunc: func(_ context.Context, _ app.PrepareOptions) (domain.ProcessOutcome, error) {
			panic("should not be called")
		},
	}

	cli := commands.New(mock, mocks.NewMockConfigLoader(gomock.NewController(t)))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "prepare-deps")
	assert.Equal(t, 0, cli.ExitCode())
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, mocks.NewMockConfigLoader(gomock.NewController(t)))
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"conanprep version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String(),
	)
}
