package main

import (
	"flag"
	"fmt"

	"github.com/leandrodaf/buzzer/internal/config"
	"github.com/leandrodaf/buzzer/internal/logger"
	"github.com/leandrodaf/buzzer/sdk/buzzer"
	"github.com/leandrodaf/buzzer/sdk/contracts"
	"github.com/leandrodaf/buzzer/sdk/device"
)

const simpsons = "Simpsons:d=4,o=5,b=160:32p,c.6,e6,f#6,8a6,g.6,e6,c6,8a,8f#,8f#,8f#,2g"

func main() {
	configPath := flag.String("config", "buzzers.yaml", "device file listing the buzzers to register")
	name := flag.String("buzzer", "", "buzzer to play on (first registered when empty)")
	tune := flag.String("tune", simpsons, "RTTTL tune to play")
	flag.Parse()

	log := logger.NewZapLogger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config", log.Field().Error("error", err))
	}
	log.SetLevel(cfg.Level())

	registry := device.NewRegistry(log)
	for _, bc := range cfg.Buzzers {
		opts := append(bc.Options(), contracts.WithLogger(log), contracts.WithLogLevel(cfg.Level()))
		b, err := buzzer.NewBuzzer(opts...)
		if err != nil {
			log.Error("Failed to create buzzer",
				log.Field().String("name", bc.Name),
				log.Field().Error("error", err))
			continue
		}
		if err := registry.Register(b); err != nil {
			log.Error("Failed to register buzzer", log.Field().Error("error", err))
			continue
		}
		defer registry.Unregister(b)
	}

	devices := registry.Devices()
	if len(devices) == 0 {
		log.Error("No buzzers available")
		return
	}
	fmt.Println("Available buzzers:", devices)

	target := registry.SearchFirst()
	if *name != "" {
		target = registry.Search(*name)
	}
	if target == nil {
		log.Error("Buzzer not found", log.Field().String("name", *name))
		return
	}

	fmt.Printf("Playing on %s... \n", target.Name())
	if _, err := registry.Write(target.Name(), device.AttrPlay, []byte(*tune)); err != nil {
		log.Error("Failed to play tune", log.Field().Error("error", err))
		return
	}

	freq, err := registry.Read(target.Name(), device.AttrFrequency)
	if err != nil {
		log.Error("Failed to read frequency", log.Field().Error("error", err))
		return
	}
	log.Info("Done", log.Field().String("frequency", freq))
}
