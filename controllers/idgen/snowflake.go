// Package idgen hands out the 64-bit serials stamped on freshly registered
// asset tags. A single snowflake node covers one server process; serials stay
// unique across restarts without touching the database.
package idgen

import (
	"log"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init builds the process-wide generator node. Call once at startup, before
// any tag registration runs.
func Init() {
	var err error
	node, err = snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("Failed to init Snowflake: %v", err)
	}
}

// GenerateID returns the next tag serial.
func GenerateID() int64 {
	return node.Generate().Int64()
}
