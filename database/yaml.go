/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomoncle/smartenum"
	"gopkg.in/yaml.v3"
)

// CatalogFile is the YAML document listing every set and its members, used
// for documentation and migration review.
type CatalogFile struct {
	Sets []smartenum.SetDescriptor `yaml:"sets"`
}

// ExportCatalog writes all registered sets into a YAML file at the given
// path, creating directories as needed.
func ExportCatalog(path string) error {
	file := CatalogFile{Sets: smartenum.RegisteredSets()}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to serialize enum catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write enum catalog file: %w", err)
	}

	return nil
}

// LoadCatalog reads a catalog file previously written by ExportCatalog.
func LoadCatalog(path string) (*CatalogFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog file does not exist: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &file, nil
}
