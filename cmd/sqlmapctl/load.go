/*
Copyright 2023 eatmoreapple

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"io/fs"
	"os"
	unixpath "path"
	"strings"

	"github.com/pkg/errors"

	"github.com/sqlmap-go/sqlmap/registry"
)

// dirRoot scopes an fs.FS to a base directory, joining with Unix-style
// separators so the same path logic works regardless of host OS.
type dirRoot struct {
	fs      fs.FS
	baseDir string
}

func (d dirRoot) Open(name string) (fs.File, error) {
	return d.fs.Open(unixpath.Join(d.baseDir, name))
}

var _ fs.FS = dirRoot{}

// loadMapperDir registers every "*.xml" file directly under dir as its own
// mapper namespace, the namespace taken from the file's base name with its
// extension stripped.
func loadMapperDir(reg *registry.Registry, dir string) error {
	root := dirRoot{fs: os.DirFS(dir), baseDir: "."}
	entries, err := fs.ReadDir(root, ".")
	if err != nil {
		return errors.Wrapf(err, "sqlmapctl: reading mapper directory %q", dir)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		namespace := strings.TrimSuffix(entry.Name(), ".xml")
		f, err := root.Open(entry.Name())
		if err != nil {
			return errors.Wrapf(err, "sqlmapctl: opening %q", entry.Name())
		}
		err = reg.RegisterMapper(namespace, f)
		_ = f.Close()
		if err != nil {
			return errors.Wrapf(err, "sqlmapctl: registering mapper %q", namespace)
		}
	}
	return nil
}

// loadMapperFile registers a single mapper file under namespace.
func loadMapperFile(reg *registry.Registry, path, namespace string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "sqlmapctl: opening %q", path)
	}
	defer f.Close()
	return reg.RegisterMapper(namespace, f)
}
