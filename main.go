package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gen2brain/beeep"

	"github.com/peninsulatransit/caltraind/types"
)

var mainLog = log.New(os.Stdout, "", log.Ldate|log.Ltime)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "start":
		cmdStart(os.Args[2:])
	case "kill":
		cmdKill(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: caltraind <command> [flags]

Commands:
  start    start the arrival monitor
  kill     terminate a running instance

Run 'caltraind <command> -h' for the flags of each command.
`)
}

func cmdStart(args []string) {
	fs := flag.NewFlagSet("start", flag.ExitOnError)
	configPath := fs.String("config", "caltraind.toml", "path to configuration file")
	station := fs.String("station", "", "override the configured station")
	fs.Parse(args)

	config, err := LoadConfig(*configPath)
	if err != nil {
		mainLog.Fatalln(err)
	}
	if *station != "" {
		config.Station, err = types.ParseStation(*station)
		if err != nil {
			mainLog.Fatalln(err)
		}
	}

	if err := ensureRuntimeDir(config.RuntimeDir); err != nil {
		mainLog.Fatalln(err)
	}
	pidPath := pidFilePath(config.RuntimeDir)
	if err := killExisting(pidPath); err != nil {
		mainLog.Fatalln(err)
	}
	if err := writePidFile(pidPath); err != nil {
		mainLog.Fatalln(err)
	}
	defer os.Remove(pidPath)

	deliver := desktopDeliver
	if config.Slack.APIToken != "" {
		slackNotifier := NewSlackNotifier(config.Slack.APIToken, config.Slack.Channel,
			log.New(os.Stdout, "slack ", log.Ldate|log.Ltime))
		deliver = combineDeliver(deliver, slackNotifier.Deliver)
	}

	notifierLog := log.New(os.Stdout, "notifier ", log.Ldate|log.Ltime)
	for _, notifyAt := range config.NotifyAt {
		notifier, err := NewNotifier(notifyAt, config.Direction, config.TrainTypes,
			config.NotifyAfter, deliver, notifierLog)
		if err != nil {
			mainLog.Fatalln(err)
		}
		registerStatusSink(notifier.HandleStatus)
	}

	holder := &statusHolder{}
	registerStatusSink(holder.HandleStatus)

	if err := SetUpScrapers(config); err != nil {
		mainLog.Fatalln(err)
	}
	defer TearDownScrapers()

	go func() {
		err := APIServer(socketPath(config.RuntimeDir), holder,
			log.New(os.Stdout, "api ", log.Ldate|log.Ltime))
		if err != nil {
			mainLog.Println("API server stopped:", err)
		}
	}()

	mainLog.Printf("Watching %s departures at %s, notifying at %v minutes\n",
		config.Direction, config.Station, config.NotifyAt)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	<-signals
	mainLog.Println("Shutting down")
}

func cmdKill(args []string) {
	fs := flag.NewFlagSet("kill", flag.ExitOnError)
	runtimeDir := fs.String("runtime-dir", "/tmp/caltraind", "runtime directory of the instance to kill")
	fs.Parse(args)

	if err := killExisting(pidFilePath(*runtimeDir)); err != nil {
		mainLog.Fatalln(err)
	}
}

func desktopDeliver(title, body string) error {
	return beeep.Notify(title, body, "")
}

func combineDeliver(funcs ...DeliverFunc) DeliverFunc {
	return func(title, body string) error {
		var errs []error
		for _, f := range funcs {
			errs = append(errs, f(title, body))
		}
		return errors.Join(errs...)
	}
}
