package main

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
	"go.trai.ch/conanprep/internal/adapters/conan"
	"go.trai.ch/conanprep/internal/adapters/config"
	"go.trai.ch/conanprep/internal/adapters/detector"
	"go.trai.ch/conanprep/internal/adapters/linear"
	"go.trai.ch/conanprep/internal/adapters/logger"
	"go.trai.ch/conanprep/internal/adapters/profile"
	"go.trai.ch/conanprep/internal/app"
	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newProvider wires the real adapters around a mocked executor, writing diagnostics to stderr.
func newProvider(executor *mocks.MockExecutor, stderr *bytes.Buffer) ComponentProvider {
	return func(_ context.Context) (*app.Components, error) {
		log := logger.NewWithWriter(stderr)
		reporter := linear.NewReporter(stderr)
		application := app.New(
			detector.New(nil, log),
			profile.NewStore(),
			conan.NewInstaller(executor, reporter),
			reporter,
		)
		return app.NewComponents(application, log, config.NewLoader(log)), nil
	}
}

func TestRun_Version(t *testing.T) {
	ctrl := gomock.NewController(t)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, domain.Environment{}, stderr,
		newProvider(mocks.NewMockExecutor(ctrl), stderr))
	assert.Equal(t, 0, exitCode)
}

func TestRun_NoSubcommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{}, domain.Environment{}, stderr,
		newProvider(mocks.NewMockExecutor(ctrl), stderr))
	assert.Equal(t, 0, exitCode)
}

func TestRun_PrepareDeps_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	stderr := new(bytes.Buffer)
	root := t.TempDir()
	out := filepath.Join(root, ".out")
	profilePath := filepath.Join(out, "conan", "profiles", "Release.txt")

	executor.EXPECT().Execute(gomock.Any(), []string{
		"conan", "install", ".", "--update",
		"--output-folder=" + out,
		"--profile:host=" + profilePath,
		"--profile:build=" + profilePath,
		"--build=missing",
	}).Return(0, nil)

	exitCode := run(context.Background(),
		[]string{"prepare-deps", "--build-type", "Release"},
		domain.WithToolsetVersion("14.38.33130"),
		stderr,
		newProvider(executor, stderr),
		commands.WithWorkingDir(root),
	)
	require.Equal(t, 0, exitCode, stderr.String())

	content, err := os.ReadFile(profilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "compiler.version=193\n")
	assert.Contains(t, string(content), "build_type=Release\n")

	assert.Contains(t, stderr.String(), "Detected MSVC version: 193")
	assert.Contains(t, stderr.String(), "run command: conan install . --update")
	assert.Contains(t, stderr.String(), "Conan install success\nConan profile content:\n"+string(content))
}

func TestRun_PrepareDeps_PropagatesExitCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	stderr := new(bytes.Buffer)
	root := t.TempDir()

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(7, nil)

	exitCode := run(context.Background(),
		[]string{"prepare-deps"},
		domain.WithToolsetVersion("14.29.30133"),
		stderr,
		newProvider(executor, stderr),
		commands.WithWorkingDir(root),
	)
	assert.Equal(t, 7, exitCode)
	assert.NotContains(t, stderr.String(), "Conan install success")

	content, err := os.ReadFile(filepath.Join(root, ".out", "conan", "profiles", "Debug.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "compiler.version=192\n")
}

func TestRun_PrepareDeps_MissingToolset(t *testing.T) {
	ctrl := gomock.NewController(t)
	stderr := new(bytes.Buffer)
	root := t.TempDir()

	exitCode := run(context.Background(),
		[]string{"prepare-deps"},
		domain.Environment{},
		stderr,
		newProvider(mocks.NewMockExecutor(ctrl), stderr),
		commands.WithWorkingDir(root),
	)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "VCToolsVersion")

	_, err := os.Stat(filepath.Join(root, ".out"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_ProviderError(t *testing.T) {
	stderr := new(bytes.Buffer)
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	}

	exitCode := run(context.Background(), []string{"version"}, domain.Environment{}, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}
