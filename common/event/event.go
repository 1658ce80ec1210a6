package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"reflect"
	"vincit.fi/image-viewer/api"
	"vincit.fi/image-viewer/api/apitype"
	"vincit.fi/image-viewer/common/logger"
	"vincit.fi/image-viewer/common/util"
)

type Broker struct {
	bus      messagebus.MessageBus
	guiQueue *GuiQueue
	topics   *util.Set[api.Topic]

	api.Sender
}

func InitBus(queueSize int, guiQueue *GuiQueue) *Broker {
	return &Broker{
		bus:      messagebus.New(queueSize),
		guiQueue: guiQueue,
		topics:   util.NewSet[api.Topic](),
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	err := s.bus.Subscribe(string(topic), fn)
	if err != nil {
		logger.Error.Panic("Could not subscribe")
	}
	s.topics.Add(topic)
}

// ConnectToGui subscribes the callback so that it is always invoked on
// the GUI thread, when the GUI loop drains its queue.
func (s *Broker) ConnectToGui(topic api.Topic, callback interface{}) {
	cb := func(params ...interface{}) {
		sendFn := func() {
			args := make([]reflect.Value, 0, len(params))
			for _, param := range params {
				args = append(args, reflect.ValueOf(param))
			}
			if logger.IsLogLevel(logger.TRACE) {
				logger.Trace.Printf("Calling topic '%s' with: %s", topic, params)
			}
			reflect.ValueOf(callback).Call(args)
		}
		s.guiQueue.Post(sendFn)
	}
	s.Subscribe(topic, cb)
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := ""
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	} else {
		formattedMessage = message
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: formattedMessage})
}

// Close stops the handler goroutines of every subscribed topic.
func (s *Broker) Close() {
	for _, topic := range s.topics.Values() {
		s.bus.Close(string(topic))
	}
	s.topics.Clear()
}
