package stream

import (
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// Streamer ticks at the frame duration and publishes composited
// frames as binary over MQTT to a glyphrx device. The ticker is the
// explicit redraw scheduler standing in for a host that refreshes
// live timer text on its own; its granularity is exactly one frame
// duration, the finest the masks ever need.
type Streamer struct {
	client     mqtt.Client
	config     Config
	controller *Controller
	commands   chan string
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.client = client
	s.config = config
	s.controller = controller
	s.commands = make(chan string, 4)
	return s
}

// Subscribe registers the control-topic handler. Commands are handed
// to the run loop rather than applied here, so the controller is only
// ever touched from one goroutine.
func (s *Streamer) Subscribe() {
	topic := s.config.Mqtt.Topics.Control
	token := s.client.Subscribe(topic, 0, func(client mqtt.Client, msg mqtt.Message) {
		select {
		case s.commands <- string(msg.Payload()):
		default:
			log.Printf("dropping control command, queue full")
		}
	})
	if token.Wait() && token.Error() != nil {
		log.Println(token.Error())
	}
}

// SendFrame composites and publishes a single frame.
func (s *Streamer) SendFrame(now time.Time) {
	f := s.controller.CalculateFrame(now)
	b, _ := f.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Frames continuously.
func (s *Streamer) Run() {
	publishTimer := time.NewTicker(s.config.Widget.FrameDuration())
	for {
		select {
		case now := <-publishTimer.C:
			s.SendFrame(now)
		case command := <-s.commands:
			if err := s.controller.Apply(command, time.Now()); err != nil {
				log.Println(err)
			}
		}
	}
}
