package main

import (
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/circuitbreaker"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/config"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/game"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/nats"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/server"
)

func main() {
	conf := config.Init()

	circuitbreaker.InitBreakers()
	nats.Connect(conf.NatsURL)

	g := game.NewGame(conf)
	go g.Run()

	server.Start(conf, g)
}
