package plugins

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"reqsmith/internal/domain"
	"reqsmith/internal/logging"
	"reqsmith/internal/registry"
)

const manifestSuffix = "_handler.yaml"

// LoadDir reads every *_handler.yaml manifest in dir, in lexical order
// so registration order is stable across restarts. Invalid manifests
// are skipped with a log line rather than failing the whole load.
func LoadDir(dir string) ([]domain.RuleSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plugins dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), manifestSuffix) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	specs := make([]domain.RuleSpec, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		spec, err := LoadSpecFile(path)
		if err != nil {
			logging.PluginsWarn("skipping manifest %s: %v", name, err)
			continue
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// LoadSpecFile reads and validates a single manifest file.
func LoadSpecFile(path string) (domain.RuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.RuleSpec{}, err
	}
	return ParseSpec(string(data))
}

// SaveSpec persists a manifest as <domain>_handler.yaml under dir,
// creating the directory when needed.
func SaveSpec(dir string, spec domain.RuleSpec) (string, error) {
	if err := ValidateSpec(spec); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create plugins dir: %w", err)
	}

	data, err := yaml.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("marshal spec: %w", err)
	}

	path := filepath.Join(dir, spec.DomainName+manifestSuffix)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	logging.Plugins("saved manifest %s", path)
	return path, nil
}

// RegisterDir loads dir and registers each manifest on r. Manifests
// whose domain is already registered are applied via Replace, so a
// restart never fails on its own persisted handlers.
func RegisterDir(r *registry.Registry, dir string) (int, error) {
	specs, err := LoadDir(dir)
	if err != nil {
		return 0, err
	}

	registered := 0
	for _, spec := range specs {
		h := domain.NewRuleHandler(spec)
		if r.Has(spec.DomainName) {
			err = r.Replace(h)
		} else {
			err = r.Register(h)
		}
		if err != nil {
			logging.PluginsWarn("manifest %s not registered: %v", spec.DomainName, err)
			continue
		}
		registered++
	}
	logging.Plugins("registered %d manifest handlers from %s", registered, dir)
	return registered, nil
}
