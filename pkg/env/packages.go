// pkg/env/packages.go
package env

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PackageRecord is the installed-package metadata an environment manager
// keeps in <root>/conda-meta/<name>-<version>-<build>.json
type PackageRecord struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Build   string `json:"build"`
	Channel string `json:"channel"`
}

// MetaDir returns the directory holding installed-package records
func (e *Environment) MetaDir() string {
	return filepath.Join(e.Root, "conda-meta")
}

// InstalledPackages lists the package records of the environment, sorted by
// name. An environment without a metadata directory has no records.
func (e *Environment) InstalledPackages() ([]*PackageRecord, error) {
	entries, err := os.ReadDir(e.MetaDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []*PackageRecord{}, nil
		}
		return nil, fmt.Errorf("reading package metadata: %w", err)
	}

	var records []*PackageRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(e.MetaDir(), entry.Name()))
		if err != nil {
			continue
		}

		var rec PackageRecord
		if err := json.Unmarshal(data, &rec); err != nil || rec.Name == "" {
			log.Debugf("skipping unreadable package record %s", entry.Name())
			continue
		}
		records = append(records, &rec)
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// FindPackage returns the record of an installed package, or nil
func (e *Environment) FindPackage(name string) *PackageRecord {
	records, err := e.InstalledPackages()
	if err != nil {
		return nil
	}
	for _, rec := range records {
		if rec.Name == name {
			return rec
		}
	}
	return nil
}

// MissingCompanions returns the companion packages that have no directory
// under site-packages, in the order given
func (e *Environment) MissingCompanions(names []string) []string {
	var missing []string
	for _, name := range names {
		if !dirExists(e.CompanionDir(name)) {
			missing = append(missing, name)
		}
	}
	return missing
}
