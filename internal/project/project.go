/*
 * Copyright 2022 The Gremlins Authors
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *        http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

// Package project locates the root of the target project being mutated, by
// walking up from a given path until a file named after the active
// language capability's manifest is found.
package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// Project represents the target project the engine is about to mutate.
//
//	Root is the directory containing the manifest file.
//	CallingDir is the path passed to Init, relative to Root.
type Project struct {
	Root       string
	CallingDir string
}

// Init locates the project root by looking for manifestName starting at path
// and walking up the directory tree, the same way the Go toolchain finds a
// module root.
func Init(path, manifestName string) (Project, error) {
	if path == "" {
		return Project{}, fmt.Errorf("path is not set")
	}
	root := findRoot(path, manifestName)
	if root == "" {
		return Project{}, fmt.Errorf("no %s found above %s", manifestName, path)
	}
	rel, _ := filepath.Rel(root, path)

	return Project{
		Root:       root,
		CallingDir: rel,
	}, nil
}

func findRoot(path, manifestName string) string {
	path = filepath.Clean(path)
	for {
		if fi, err := os.Stat(filepath.Join(path, manifestName)); err == nil && !fi.IsDir() {
			return path
		}
		d := filepath.Dir(path)
		if d == path {
			break
		}
		path = d
	}

	return ""
}
