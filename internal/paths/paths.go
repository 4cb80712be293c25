// Package paths resolves yearsort's per-user state locations.
//
// When running under sudo, paths resolve to the invoking user's directories
// (via SUDO_USER) rather than root's, so a `sudo yearsort organize` run still
// reads the user's config and appends to the user's ledger.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
)

// AppName is the directory name used under the user config dir.
const AppName = "yearsort"

// UserHomeDir returns the home directory of the actual user.
func UserHomeDir() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil {
			return u.HomeDir, nil
		}
	}
	return os.UserHomeDir()
}

// UserConfigDir returns ~/.config for the actual user.
func UserConfigDir() (string, error) {
	homeDir, err := UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// AppDir returns ~/.config/yearsort.
func AppDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}

func ConfigPath() (string, error) {
	return inAppDir("config.toml")
}

// LedgerPath returns the move ledger database location.
func LedgerPath() (string, error) {
	return inAppDir("ledger.db")
}

// ActivityDir returns the parent of the daily activity logs.
func ActivityDir() (string, error) {
	return AppDir()
}

func LogPath() (string, error) {
	return inAppDir(filepath.Join("logs", "yearsort.log"))
}

func inAppDir(name string) (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
