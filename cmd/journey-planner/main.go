package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/journey-planner"
	"github.com/theoremus-urban-solutions/journey-planner/config"
)

func main() {
	mode := flag.String("mode", "oneshot", "oneshot|serve")
	configPath := flag.String("config", "", "config file path (default config.yml)")
	networkName := flag.String("network", "", "network name from config.networks[]")
	source := flag.String("source", "", "network source file or URL (overrides config)")
	from := flag.String("from", "", "origin station id")
	to := flag.String("to", "", "destination station id")
	modes := flag.String("modes", "", "comma-separated search modes: direct,cheap,balanced (default all)")
	format := flag.String("format", "json", "json|text")
	flag.Parse()

	lib.InitLogging()
	// .env is optional; it may carry PORT and NETWORK_SOURCE overrides
	_ = godotenv.Load()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		panic(err)
	}
	if port := getEnvAsInt("PORT", 0); port > 0 {
		cfg.Server.Port = port
	}

	netCfg := config.SelectNetwork(cfg, *networkName)
	if s := os.Getenv("NETWORK_SOURCE"); s != "" {
		netCfg.Source = s
	}
	if *source != "" {
		netCfg.Source = *source
	}

	app, err := lib.NewApp(cfg, netCfg)
	if err != nil {
		panic(err)
	}

	switch *mode {
	case "oneshot":
		params := map[string]string{"from": *from, "to": *to, "format": *format}
		if *modes != "" {
			params["mode"] = *modes
		}
		buf, _, err := app.Itineraries(params)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	case "serve":
		lib.StartServer(app)
		lib.HandleGracefulShutdown()
	default:
		panic("unknown mode")
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	if valueStr := os.Getenv(key); valueStr != "" {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
