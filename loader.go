package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LoadBlocks reads a decoded-blocks JSON file (the external .sor decoder's
// output) into typed records. A malformed file is the decoder boundary's
// only failure surface; the error propagates unchanged.
func LoadBlocks(path string) (*Blocks, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadBlocks(f)
}

// ReadBlocks decodes the block mapping from r.
func ReadBlocks(r io.Reader) (*Blocks, error) {
	var b Blocks
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode blocks: %w", err)
	}
	return &b, nil
}
