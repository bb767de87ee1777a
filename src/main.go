package main

import (
	"flag"

	"NFTMarketLedger/src/app"
	"NFTMarketLedger/src/config"
	"NFTMarketLedger/src/router"
	"NFTMarketLedger/src/svc"
)

const (
	defaultConfigPath = "./config/config.toml"
)

func main() {
	conf := flag.String("conf", defaultConfigPath, "conf file path")
	flag.Parse()
	c, err := config.UnmarshalConfig(*conf)
	if err != nil {
		panic(err)
	}

	if c.Marketplace == nil || c.Marketplace.Address == "" {
		panic("invalid marketplace config")
	}

	serverCtx, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}

	r := router.NewRouter(serverCtx)
	app := app.NewPlatform(c, r, serverCtx)
	app.Start()
}
