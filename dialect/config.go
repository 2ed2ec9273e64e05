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

package dialect

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the TOML-decodable shape of a dialect configuration file:
//
//	name = "postgres"
//	marker = "dollar"
//
//	[formats]
//	id = "{}::uuid"
//	tags = "{}::text[]"
type Config struct {
	Name   string            `toml:"name"`
	Marker string            `toml:"marker"`
	Formats map[string]string `toml:"formats"`
}

// Load decodes a dialect Config from TOML and resolves it into a Dialect.
func Load(data []byte) (Dialect, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Dialect{}, errors.Wrap(err, "dialect: decode config")
	}
	return cfg.Resolve()
}

// Resolve turns a decoded Config into a Dialect, choosing the marker
// function named by Marker ("question" or "dollar").
func (c Config) Resolve() (Dialect, error) {
	var marker Marker
	switch c.Marker {
	case "", "question":
		marker = Question
	case "dollar":
		marker = Dollar
	default:
		return Dialect{}, errors.Errorf("dialect: unknown marker style %q", c.Marker)
	}
	return Dialect{Name: c.Name, Marker: marker, Formats: c.Formats}, nil
}
