package dailynote

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrVaultNotFound is returned when the vault root does not exist.
var ErrVaultNotFound = errors.New("obsidian vault not found")

// Vault is an Obsidian vault holding daily notes.
type Vault struct {
	Root   string
	Format string
}

// OpenVault returns the vault at root. The root must be an existing directory.
func OpenVault(root, format string) (*Vault, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w at %s", ErrVaultNotFound, root)
		}
		return nil, fmt.Errorf("failed to stat vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrVaultNotFound, root)
	}
	return &Vault{Root: root, Format: format}, nil
}

// NotePath returns the daily note path for date.
func (v *Vault) NotePath(date time.Time) string {
	rel := ExpandTemplate(v.Format, date) + ".md"
	return filepath.Join(v.Root, filepath.FromSlash(rel))
}

// Update merges body into the daily note for date.
func (v *Vault) Update(body string, date time.Time) (Outcome, error) {
	return Merge(v.NotePath(date), body, date)
}

// ExpandTemplate fills {year}, {month}, {month_name} and {day} in format.
// Month and day are zero padded; {month:02d} and {day:02d} are accepted as
// aliases.
func ExpandTemplate(format string, date time.Time) string {
	r := strings.NewReplacer(
		"{year}", fmt.Sprintf("%d", date.Year()),
		"{month:02d}", fmt.Sprintf("%02d", int(date.Month())),
		"{month}", fmt.Sprintf("%02d", int(date.Month())),
		"{month_name}", date.Month().String(),
		"{day:02d}", fmt.Sprintf("%02d", date.Day()),
		"{day}", fmt.Sprintf("%02d", date.Day()),
	)
	return r.Replace(format)
}
