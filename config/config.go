// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads the field/variant name registries that back
// biniou.MakeUnhash from a YAML file, and stamps each registry with
// a stable identifier so multiple versions of a schema can be told
// apart in logs or fixtures.
package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"

	"github.com/hhugo/biniou"
)

// Schema is the on-disk shape of a name registry:
//
//	id: 3fa85f64-5717-4562-b3fc-2c963f66afa6
//	names:
//	  - accountId
//	  - createdAt
type Schema struct {
	ID    string   `json:"id"`
	Names []string `json:"names"`
}

// NewSchema builds a Schema around names, minting a fresh ID.
func NewSchema(names []string) Schema {
	return Schema{ID: uuid.New().String(), Names: names}
}

// Load reads a Schema from a YAML file. sigs.k8s.io/yaml round-trips
// through encoding/json, so Schema only needs json struct tags.
func Load(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("config: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as YAML.
func Save(path string, s Schema) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("config: encoding schema: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Unhash builds a biniou.Unhash table from s.Names.
func (s Schema) Unhash() (biniou.Unhash, error) {
	uh, err := biniou.MakeUnhash(s.Names)
	if err != nil {
		return nil, fmt.Errorf("config: schema %s: %w", s.ID, err)
	}
	return uh, nil
}

// Shard splits s.Names across n biniou.Unhash tables using
// biniou.NameBucket, seeded from the first 8 bytes of the schema ID's
// UUID, read big-endian. This lets a large registry be partitioned (e.g. one
// shard per worker) while keeping the partitioning reproducible for
// a given schema ID.
func (s Schema) Shard(n int) ([]biniou.Unhash, error) {
	if n <= 0 {
		return nil, fmt.Errorf("config: shard count must be positive, got %d", n)
	}
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return nil, fmt.Errorf("config: schema %s: %w", s.ID, err)
	}
	seed := uint64(0)
	for _, b := range id[:8] {
		seed = seed<<8 | uint64(b)
	}
	buckets := make([][]string, n)
	for _, name := range s.Names {
		h := biniou.HashName(name)
		i := biniou.NameBucket(seed, h, n)
		buckets[i] = append(buckets[i], name)
	}
	out := make([]biniou.Unhash, n)
	for i, names := range buckets {
		uh, err := biniou.MakeUnhash(names)
		if err != nil {
			return nil, fmt.Errorf("config: schema %s shard %d: %w", s.ID, i, err)
		}
		out[i] = uh
	}
	return out, nil
}
