// Package environment detects the host platform and proposes the projects
// and vault locations used by setup.
package environment

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Kind names a host environment.
type Kind string

const (
	WSL     Kind = "wsl"
	Linux   Kind = "linux"
	MacOS   Kind = "macos"
	Windows Kind = "windows"
	Unknown Kind = "unknown"
)

// kernelReleasePath holds the Linux kernel release string.
var kernelReleasePath = "/proc/sys/kernel/osrelease"

// Detect returns the environment this process runs in.
func Detect() Kind {
	return detect(runtime.GOOS, kernelRelease())
}

func detect(goos, release string) Kind {
	switch goos {
	case "linux":
		if strings.Contains(strings.ToLower(release), "microsoft") {
			return WSL
		}
		return Linux
	case "darwin":
		return MacOS
	case "windows":
		return Windows
	}
	return Unknown
}

func kernelRelease() string {
	data, err := os.ReadFile(kernelReleasePath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Username returns the login name used in default paths.
func Username() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return "user"
}

// Paths are the suggested locations for one environment.
type Paths struct {
	Projects string
	Vault    string
	VaultAlt string
}

// DefaultPaths returns the suggested locations for env and user. Unknown
// environments get empty paths.
func DefaultPaths(env Kind, user string) Paths {
	switch env {
	case WSL:
		return Paths{
			Projects: "/home/" + user + "/projects",
			Vault:    "/mnt/c/Users/" + user + "/Documents/Vault 76",
			VaultAlt: "/mnt/c/Users/" + user + "/Documents/Obsidian Vault",
		}
	case MacOS:
		return Paths{
			Projects: "/Users/" + user + "/projects",
			Vault:    "/Users/" + user + "/Documents/Vault 76",
			VaultAlt: "/Users/" + user + "/Documents/Obsidian Vault",
		}
	case Linux:
		return Paths{
			Projects: "/home/" + user + "/projects",
			Vault:    "/home/" + user + "/Documents/Obsidian Vault",
			VaultAlt: "/home/" + user + "/obsidian-vault",
		}
	case Windows:
		return Paths{
			Projects: `C:\Users\` + user + `\projects`,
			Vault:    `C:\Users\` + user + `\Documents\Vault 76`,
			VaultAlt: `C:\Users\` + user + `\Documents\Obsidian Vault`,
		}
	}
	return Paths{}
}

// FindVault returns the first vault candidate that exists.
func FindVault(p Paths) (string, bool) {
	for _, candidate := range []string{p.Vault, p.VaultAlt} {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(filepath.Clean(candidate)); err == nil && info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
