package main

import (
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/backend"
	"vincit.fi/image-viewer/common/logger"
	"vincit.fi/image-viewer/common/util"
	ui "vincit.fi/image-viewer/ui/giu"
)

func main() {
	params := util.ParseParams()
	logger.Initialize(logger.StringToLogLevel(params.GetLogLevel()))

	brokers := backend.InitializeEventBrokers(params.GetEventQueueSize())
	defer brokers.Close()

	services := backend.InitializeServices(params, brokers)
	defer services.Close()

	gui := ui.NewUi(params, brokers.Broker, services.ImageCache, brokers.GuiQueue)

	brokers.Broker.Subscribe(api.ImageRequestOpen, services.ImageService.OpenImage)

	brokers.Broker.ConnectToGui(api.ImageLoaded, gui.SetImage)
	brokers.Broker.ConnectToGui(api.ShowError, gui.ShowError)

	gui.Run()
}
