package backend

import (
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/backend/imageloader"
	"vincit.fi/image-viewer/backend/viewer"
	"vincit.fi/image-viewer/common/event"
	"vincit.fi/image-viewer/common/logger"
	"vincit.fi/image-viewer/common/util"
)

type Services struct {
	ImageService api.ImageService
	ImageLoader  api.ImageLoader
	ImageCache   api.ImageStore
}

func (s *Services) Close() {
	defer s.ImageService.Close()
}

type Brokers struct {
	Broker   *event.Broker
	GuiQueue *event.GuiQueue
}

func (s *Brokers) Close() {
	s.Broker.Close()
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	guiQueue := event.NewGuiQueue()
	brokers := &Brokers{
		Broker:   event.InitBus(eventBusQueueSize, guiQueue),
		GuiQueue: guiQueue,
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

func InitializeServices(params *util.Params, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	scaler := imageloader.NewScaler(params.GetScaler(), params.GetQuality())
	logger.Info.Printf("Using scaler '%s'", scaler.Name())

	imageLoader := imageloader.NewImageLoader()
	imageCache := imageloader.NewImageCache(scaler)
	services := &Services{
		ImageService: viewer.NewImageService(brokers.Broker, imageLoader, imageCache),
		ImageLoader:  imageLoader,
		ImageCache:   imageCache,
	}
	logger.Debug.Printf("Services initialized")
	return services
}
