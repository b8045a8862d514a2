package main

import (
	"flag"
	"log"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/timefont/glyphtx/api"
	"github.com/timefont/glyphtx/stream"
)

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Streamer   *stream.Streamer
	Controller *stream.Controller
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	a.Streamer.Subscribe()
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		panic(token.Error())
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		panic(err)
	}

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&a.Config)
	if err != nil {
		panic(err)
	}
	a.Config.Widget.ApplyDefaults()
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	previewAddr := flag.String("preview", ":3000", "HTTP preview address.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: %+v", a.Config)

	widget := a.Config.Widget
	glyphs, err := stream.LoadGlyphSet(widget.FontDir, widget.FontPoints, widget.FrameCount)
	if err != nil {
		log.Fatal(err)
	}

	a.Controller, err = stream.NewController(a.Config, glyphs)
	if err != nil {
		log.Fatal(err)
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("glyphtx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Streamer = stream.NewStreamer(a.Config, client, a.Controller)

	// The preview renders its own compositor; frames are a pure
	// function of time, so it never touches the streamer's state.
	preview, err := stream.NewCompositor(widget,
		stream.NewReference(time.Now(), widget.ReferenceBias()), glyphs)
	if err != nil {
		log.Fatal(err)
	}
	go api.NewApi(preview).Serve(*previewAddr)

	a.run()
}
