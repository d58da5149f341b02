package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/scrolltx/api"
	"github.com/matt-g-everett/scrolltx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
}

func newApp() *app {
	a := new(app)
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
	if err := a.Streamer.Subscribe(); err != nil {
		log.Println(err)
	}
}

func (a *app) run(ctx context.Context) {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal(token.Error())
	}
	defer a.Client.Disconnect(250)

	a.Streamer.Run(ctx)
	log.Println("Stopped")
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	a.Config, err = stream.ReadConfig(f)
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	// mqtt.DEBUG = log.New(os.Stdout, "", 0)
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	listen := flag.String("listen", ":3000", "HTTP API address, empty to disable.")
	flag.Parse()

	a := newApp()
	a.readConfig(*configPath)
	log.Printf("Config: broker %s, %d tracks, %v fps", a.Config.Mqtt.URL, len(a.Config.Tracks), a.Config.FrameRate)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	var err error
	a.Streamer, err = stream.NewStreamer(a.Config, stream.NewMqttTransport(a.Client))
	if err != nil {
		log.Fatal(err)
	}

	if *listen != "" {
		go func() {
			if err := api.NewApi(a.Streamer).Serve(*listen); err != nil {
				log.Println(err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a.run(ctx)
}
