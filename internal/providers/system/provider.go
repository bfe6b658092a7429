package system

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/GriffinCanCode/fileshell/internal/shared/types"
)

// CPU describes one logical processor
type CPU struct {
	Model string
	MHz   string
}

// InfoSource answers process-level OS queries
type InfoSource interface {
	EOL() string
	CPUs() []CPU
	HomeDir() (string, error)
	Username() (string, error)
	Architecture() string
}

// Provider implements the os command
type Provider struct {
	source InfoSource
}

// NewProvider creates a system provider. A nil source uses the host.
func NewProvider(source InfoSource) *Provider {
	if source == nil {
		source = HostInfo{}
	}
	return &Provider{source: source}
}

// Flags recognized by the os command
const (
	FlagEOL          = "--EOL"
	FlagCPUs         = "--cpus"
	FlagHomeDir      = "--homedir"
	FlagUsername     = "--username"
	FlagArchitecture = "--architecture"
)

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	return types.Service{
		ID:          "system",
		Name:        "System Service",
		Description: "Operating system information",
		Category:    types.CategorySystem,
		Tools: []types.Tool{
			{
				ID:          "os",
				Name:        "OS Info",
				Description: "Print one system field: --EOL, --cpus, --homedir, --username, --architecture",
				Parameters: []types.Parameter{
					{Name: "flag", Description: "Field selector", Required: true},
				},
			},
		},
	}
}

// Handlers returns the command table
func (p *Provider) Handlers() map[string]types.Handler {
	return map[string]types.Handler{
		"os": p.info,
	}
}

func (p *Provider) info(ctx context.Context, sess *types.Session, args []string) error {
	if len(args) == 0 {
		return types.InvalidInput("os", "flag required")
	}

	switch args[0] {
	case FlagEOL:
		quoted, _ := json.Marshal(p.source.EOL())
		fmt.Fprintln(sess.Out, string(quoted))
	case FlagCPUs:
		cpus := p.source.CPUs()
		fmt.Fprintf(sess.Out, "Overall amount of CPUS: %d\n", len(cpus))
		for i, cpu := range cpus {
			line := fmt.Sprintf("  %d: %s", i+1, cpu.Model)
			if cpu.MHz != "" {
				line += fmt.Sprintf(" (%s MHz)", cpu.MHz)
			}
			fmt.Fprintln(sess.Out, line)
		}
	case FlagHomeDir:
		home, err := p.source.HomeDir()
		if err != nil {
			return types.Wrap(types.KindOperationError, "os", "", err)
		}
		fmt.Fprintln(sess.Out, home)
	case FlagUsername:
		name, err := p.source.Username()
		if err != nil {
			return types.Wrap(types.KindOperationError, "os", "", err)
		}
		fmt.Fprintln(sess.Out, name)
	case FlagArchitecture:
		fmt.Fprintln(sess.Out, p.source.Architecture())
	default:
		return types.InvalidInput("os", "unknown flag %q", args[0])
	}
	return nil
}

// HostInfo reads the running host
type HostInfo struct{}

func (HostInfo) EOL() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// CPUs returns one entry per logical CPU. Models come from /proc/cpuinfo
// where available and are "unknown" elsewhere.
func (HostInfo) CPUs() []CPU {
	n := runtime.NumCPU()
	cpus := readCPUInfo("/proc/cpuinfo")
	if len(cpus) == n {
		return cpus
	}
	cpus = make([]CPU, n)
	for i := range cpus {
		cpus[i] = CPU{Model: "unknown"}
	}
	return cpus
}

func (HostInfo) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (HostInfo) Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

func (HostInfo) Architecture() string {
	return runtime.GOARCH
}

func readCPUInfo(path string) []CPU {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var cpus []CPU
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		switch key {
		case "processor":
			cpus = append(cpus, CPU{Model: "unknown"})
		case "model name":
			if len(cpus) > 0 {
				cpus[len(cpus)-1].Model = value
			}
		case "cpu MHz":
			if len(cpus) > 0 {
				cpus[len(cpus)-1].MHz = value
			}
		}
	}
	return cpus
}
