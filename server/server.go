package server

import (
	"net/http"

	"github.com/Spidey-Batsy/Coin-collector-multiplayer/config"
	"github.com/Spidey-Batsy/Coin-collector-multiplayer/game"

	log "github.com/sirupsen/logrus"
)

// Start blocks serving websocket connections for the given game.
func Start(conf config.Config, g *game.Game) {
	mux := http.NewServeMux()
	mux.HandleFunc("/connect", g.HandleNewConnection)

	log.Info("Listening on ", conf.ListenAddr)
	err := http.ListenAndServe(conf.ListenAddr, mux)
	log.WithError(err).Fatal("HTTP server stopped")
}
