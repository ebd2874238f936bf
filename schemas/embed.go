// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import "embed"

// FS contains every *.schema.json file in this directory
//
//go:embed *.schema.json
var FS embed.FS

// Seed is the file name of the seed data schema
const Seed = "seed.schema.json"
