package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kodausch/advertising-go-client/advert"
	commonCtx "github.com/kodausch/advertising-go-client/context"
	"github.com/kodausch/advertising-go-client/event"
	"github.com/kodausch/advertising-go-client/lifecycle"
	"github.com/kodausch/advertising-go-client/logger"
	"github.com/kodausch/advertising-go-client/reachability"
	"github.com/kodausch/advertising-go-client/storage"

	_ "github.com/joho/godotenv/autoload"
)

const clientVersion = "dev"

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = context.WithValue(ctx, commonCtx.ClientVersionKey, clientVersion)
	ctx = context.WithValue(ctx, commonCtx.DeviceIdKey, config.IDFA)

	closer, err := lifecycle.NewService(ctx, lifecycle.WithLogger(logger.SlogFactory))
	if err != nil {
		log.Fatalf("Failed to create lifecycle service: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := closer.CloseAll(shutdownCtx); err != nil {
			log.Printf("Failed to shut down cleanly: %v", err)
		}
	}()

	cache, err := storage.NewBoltStorage(config.CachePath)
	if err != nil {
		log.Fatalf("Failed to open advert cache: %v", err)
	}
	closer.Register(cache)

	eventService, err := event.NewService(ctx, config.EventsURL, event.WithLogger(logger.SlogFactory))
	if err != nil {
		log.Fatalf("Failed to create event service: %v", err)
	}
	closer.Register(eventService)

	monitor, err := reachability.NewService(ctx, &reachability.DialProber{Address: config.ProbeAddress},
		reachability.WithInterval(config.ProbeEvery),
		reachability.WithLogger(logger.SlogFactory),
		reachability.WithEventEmitter(event.NewBufferedEmitter(event.BufferedEmitterConfig{})),
	)
	if err != nil {
		log.Fatalf("Failed to create reachability monitor: %v", err)
	}
	// the event service closes its producers before the final flush
	eventService.RegisterProducer(monitor)

	client, err := advert.NewClient(ctx,
		advert.WithStorage(cache),
		advert.WithLogger(logger.SlogFactory),
		advert.WithEventEmitter(event.NewBufferedEmitter(event.BufferedEmitterConfig{})),
	)
	if err != nil {
		log.Fatalf("Failed to create advert client: %v", err)
	}
	eventService.RegisterProducer(client)

	presenter := NewTerminalPresenter(os.Stdout)
	monitor.Subscribe(presenter)

	presented, err := client.FetchAndPresent(ctx, presenter, config.FetchRequest())
	if err != nil {
		log.Fatalf("Failed to fetch advert: %v", err)
	}
	if !presented {
		log.Println("No advert available")
		return
	}

	<-ctx.Done()
}
