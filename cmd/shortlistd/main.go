package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/fulldump/box"
	"github.com/fulldump/goconfig"

	"github.com/shortlist-tui/shortlist/internal/server"
	"github.com/shortlist-tui/shortlist/internal/server/store"
	"github.com/shortlist-tui/shortlist/internal/server/store/dbstore"
	"github.com/shortlist-tui/shortlist/internal/server/store/memstore"
)

var VERSION = "dev"

type serverConfig struct {
	HttpAddr string `json:"httpaddr" usage:"HTTP listen address"`
	Dir      string `json:"dir" usage:"SQLite database file; empty keeps items in memory"`
	Seed     int    `json:"seed" usage:"items to seed into an empty store"`
	Version  bool   `json:"version" usage:"print version and exit"`
}

func main() {

	c := serverConfig{
		HttpAddr: "127.0.0.1:7607",
		Seed:     server.DefaultSeedCount,
	}
	goconfig.Read(&c)

	if c.Version {
		fmt.Println("Version:", VERSION)
		return
	}

	var s store.Store
	var err error
	if c.Dir == "" {
		s = memstore.NewMemoryStore()
	} else {
		s, err = dbstore.NewSQLiteStore(c.Dir)
		if err != nil {
			log.Println("ERROR:", err.Error())
			os.Exit(-1)
		}
	}

	if err := server.Seed(s, c.Seed); err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}

	b := server.Build(s, VERSION)
	b.WithInterceptors(
		server.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		server.RecoverFromPanic,
		server.PrettyErrorInterceptor,
	)

	httpServer := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-signalChan
		fmt.Println("Signal received", sig.String())
		httpServer.Shutdown(context.Background())
	}()

	wg := &sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			fmt.Println(err.Error())
		}
	}()

	wg.Wait()

	if err := s.Close(); err != nil {
		log.Println("ERROR:", err.Error())
	}
}
