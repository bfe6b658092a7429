package system

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockInfoSource struct {
	mock.Mock
}

func (m *mockInfoSource) EOL() string { return m.Called().String(0) }

func (m *mockInfoSource) CPUs() []CPU { return m.Called().Get(0).([]CPU) }

func (m *mockInfoSource) HomeDir() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockInfoSource) Username() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockInfoSource) Architecture() string { return m.Called().String(0) }

func run(t *testing.T, p *Provider, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	sess := &types.Session{CurrentDir: "/", Out: &out}
	err := p.Handlers()["os"](context.Background(), sess, args)
	return out.String(), err
}

func TestOSFlags(t *testing.T) {
	src := new(mockInfoSource)
	src.On("EOL").Return("\n")
	src.On("CPUs").Return([]CPU{{Model: "Test CPU", MHz: "2400.000"}, {Model: "Test CPU"}})
	src.On("HomeDir").Return("/home/user", nil)
	src.On("Username").Return("user", nil)
	src.On("Architecture").Return("amd64")
	p := NewProvider(src)

	tests := []struct {
		flag     string
		expected string
	}{
		{FlagEOL, "\"\\n\"\n"},
		{FlagCPUs, "Overall amount of CPUS: 2\n  1: Test CPU (2400.000 MHz)\n  2: Test CPU\n"},
		{FlagHomeDir, "/home/user\n"},
		{FlagUsername, "user\n"},
		{FlagArchitecture, "amd64\n"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			out, err := run(t, p, tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	src.AssertExpectations(t)
}

func TestOSInvalidFlag(t *testing.T) {
	p := NewProvider(new(mockInfoSource))

	_, err := run(t, p)
	assert.True(t, types.IsKind(err, types.KindInvalidInput))

	_, err = run(t, p, "--kernel")
	assert.True(t, types.IsKind(err, types.KindInvalidInput))
}

func TestOSSourceFailure(t *testing.T) {
	src := new(mockInfoSource)
	src.On("Username").Return("", errors.New("no passwd entry"))
	p := NewProvider(src)

	_, err := run(t, p, FlagUsername)
	require.Error(t, err)
	assert.Equal(t, types.KindOperationError, types.KindOf(err))
}

func TestDefinitionMatchesHandlers(t *testing.T) {
	p := NewProvider(nil)
	handlers := p.Handlers()
	for _, tool := range p.Definition().Tools {
		assert.Contains(t, handlers, tool.ID)
	}
}

func TestHostInfo(t *testing.T) {
	h := HostInfo{}
	assert.Len(t, h.CPUs(), runtime.NumCPU())
	assert.Equal(t, runtime.GOARCH, h.Architecture())
	assert.NotEmpty(t, h.EOL())
}

func TestReadCPUInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpuinfo")
	content := "processor\t: 0\nmodel name\t: Alpha\ncpu MHz\t\t: 1000.000\n\nprocessor\t: 1\nmodel name\t: Beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cpus := readCPUInfo(path)
	require.Len(t, cpus, 2)
	assert.Equal(t, CPU{Model: "Alpha", MHz: "1000.000"}, cpus[0])
	assert.Equal(t, CPU{Model: "Beta"}, cpus[1])

	assert.Nil(t, readCPUInfo(filepath.Join(t.TempDir(), "missing")))
}
