package shell_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/conanprep/internal/adapters/shell"
	"go.trai.ch/conanprep/internal/core/domain"
)

func TestExecutor_Execute_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutor(strings.NewReader(""), &stdout, &stderr)

	code, err := executor.Execute(context.Background(), []string{"sh", "-c", "echo out; echo err >&2"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestExecutor_Execute_NonZeroExitIsNotAnError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	executor := shell.NewExecutor(strings.NewReader(""), &stdout, &stderr)

	code, err := executor.Execute(context.Background(), []string{"sh", "-c", "exit 3"})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestExecutor_Execute_Stdin(t *testing.T) {
	var stdout bytes.Buffer
	executor := shell.NewExecutor(strings.NewReader("hello\n"), &stdout, &bytes.Buffer{})

	code, err := executor.Execute(context.Background(), []string{"cat"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())
}

func TestExecutor_Execute_StartFailure(t *testing.T) {
	executor := shell.NewExecutor(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	code, err := executor.Execute(context.Background(), []string{"conanprep-definitely-not-installed"})
	require.Error(t, err)
	assert.Equal(t, -1, code)
	assert.ErrorContains(t, err, domain.ErrInstallerStartFailed.Error())
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := shell.NewExecutor(nil, nil, nil)

	_, err := executor.Execute(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEmptyCommand.Error())
}
