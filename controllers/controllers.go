package controllers

import (
	"github.com/promovia/promovia-api/config"
	"github.com/promovia/promovia-api/services/capture"
	"github.com/promovia/promovia-api/services/feed"
	"github.com/promovia/promovia-api/services/sms"
)

var (
	AppConfig *config.Config
	SMS       *sms.Client
	Capture   *capture.Engine
	Feed      *feed.Hub
)

// Init wires the shared services the handlers use. Called once from main
// after the database and collaborators are ready.
func Init(cfg *config.Config, smsClient *sms.Client, engine *capture.Engine, hub *feed.Hub) {
	AppConfig = cfg
	SMS = smsClient
	Capture = engine
	Feed = hub
}
