package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusaid-inc/campusaid-api/background"
	"github.com/campusaid-inc/campusaid-api/external/geoinfo"
	"github.com/campusaid-inc/campusaid-api/feed"
)

var (
	mongoClient *mongo.Client
	manager     *background.BackgroundManager
)

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("campusaid")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Worker is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			mongoClient.Disconnect(ctx)
		}

		os.Exit(0)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	redisOpts, err := redis.ParseURL(viper.GetString("redis.conn"))
	if err != nil {
		log.Panicf("parse redis connection string with error: %s", err)
	}
	bus := feed.NewBus(redis.NewClient(redisOpts))

	geoClient, err := geoinfo.New(viper.GetString("map.apikey"))
	if err != nil {
		log.Panicf("create geo client with error: %s", err)
	}

	var conf = &config.Config{
		Broker:        viper.GetString("redis.conn"),
		DefaultQueue:  "campusaid_background",
		ResultBackend: viper.GetString("redis.conn"),
	}
	taskServer, err := machinery.NewServer(conf)
	if err != nil {
		log.Panic(err)
	}

	manager = background.New(mongoClient, geoClient, bus, taskServer)
	panicIfError(manager.RegisterTask("broadcast_new_help", manager.BroadcastNewHelp))
	panicIfError(manager.RegisterTask("notify_help_accepted", manager.NotifyHelpAccepted))
	panicIfError(manager.RegisterTask("notify_new_message", manager.NotifyNewMessage))
	panicIfError(manager.RegisterTask("expire_help_requests", manager.ExpireHelpRequests))
	panicIfError(manager.RegisterTask("purge_chat_room", manager.PurgeChatRoom))
	panicIfError(manager.RegisterTask("purge_stale_chats", manager.PurgeStaleChatRooms))

	// overdue requests and orphaned chat rooms are swept on a schedule so a
	// lost delayed task never strands data
	panicIfError(taskServer.RegisterPeriodicTask("* * * * *", "periodic_expire", &tasks.Signature{
		Name: "expire_help_requests",
	}))
	panicIfError(taskServer.RegisterPeriodicTask("* * * * *", "periodic_purge", &tasks.Signature{
		Name: "purge_stale_chats",
	}))

	if err := manager.Run(); err != nil {
		log.Panic(err)
	}
}
