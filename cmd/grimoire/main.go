package main

import (
	"log"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/crowlands/grimoire/internal/config"
	"github.com/crowlands/grimoire/internal/logger"
	"github.com/crowlands/grimoire/internal/server"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(newSnowflakeNode),
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		log.Fatalf("snowflake node: %v", err)
	}
	return node
}
