package awareness

import (
	"os"
	"runtime"
	"strings"
	"time"
)

// EnvInfo is a point-in-time description of where the agent is running.
type EnvInfo struct {
	Platform         string `json:"platform"`
	PlatformRelease  string `json:"platform_release"`
	Architecture     string `json:"architecture"`
	Hostname         string `json:"hostname"`
	RuntimeVersion   string `json:"runtime_version"`
	WorkingDirectory string `json:"working_directory"`
	CurrentTimeUTC   string `json:"current_time_utc"`
	CurrentTimeLocal string `json:"current_time_local"`
	Timezone         string `json:"timezone"`
}

// EnvSource supplies environment facts. It is a pure read with no side
// effects.
type EnvSource interface {
	Info() EnvInfo
}

// HostEnv reads environment facts from the local host.
type HostEnv struct{}

// Info returns the current host environment.
func (HostEnv) Info() EnvInfo {
	hostname, _ := os.Hostname()
	wd, _ := os.Getwd()
	now := time.Now()
	zone, _ := now.Zone()

	return EnvInfo{
		Platform:         runtime.GOOS,
		PlatformRelease:  kernelRelease(),
		Architecture:     runtime.GOARCH,
		Hostname:         hostname,
		RuntimeVersion:   runtime.Version(),
		WorkingDirectory: wd,
		CurrentTimeUTC:   now.UTC().Format(time.RFC3339),
		CurrentTimeLocal: now.Format(time.RFC3339),
		Timezone:         zone,
	}
}

// kernelRelease returns the OS release string where the platform
// exposes one, empty otherwise.
func kernelRelease() string {
	if b, err := os.ReadFile("/proc/sys/kernel/osrelease"); err == nil {
		return strings.TrimSpace(string(b))
	}
	return ""
}
