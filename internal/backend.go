package internal

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/markusressel/pid2go/internal/api"
	"github.com/markusressel/pid2go/internal/configuration"
	"github.com/markusressel/pid2go/internal/controller"
	"github.com/markusressel/pid2go/internal/display"
	"github.com/markusressel/pid2go/internal/operator"
	"github.com/markusressel/pid2go/internal/persistence"
	"github.com/markusressel/pid2go/internal/pid"
	"github.com/markusressel/pid2go/internal/serialport"
	"github.com/markusressel/pid2go/internal/statistics"
	"github.com/markusressel/pid2go/internal/trend"
	"github.com/markusressel/pid2go/internal/ui"
	"github.com/oklog/run"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func RunDaemon() {
	pers := persistence.NewPersistence(configuration.CurrentConfig.DbPath)
	if err := pers.Init(); err != nil {
		ui.Fatal("Unable to initialize persistence: %v", err)
	}

	consoleLoop := ""
	if configuration.CurrentConfig.Console.Enabled {
		consoleLoop = findConsoleLoop(configuration.CurrentConfig)
	}
	controllers, err := InitializeControllers(configuration.CurrentConfig, pers, consoleLoop)
	if err != nil {
		ui.Fatal("%v", err)
	}
	if len(controllers) == 0 {
		ui.Fatal("No executable loop configurations, exiting.")
	}

	statistics.Register(statistics.NewLoopCollector())
	statistics.Register(statistics.NewControllerCollector())

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		enabled := configuration.CurrentConfig.Statistics.Enabled
		if enabled {
			// === Prometheus Exporter
			port := configuration.CurrentConfig.Statistics.Port
			if port <= 0 || port >= 65535 {
				port = 9000
			}
			addServer(&g, "statistics", api.CreateWebserver(), fmt.Sprintf(":%d", port))
		}
	}
	{
		enabled := configuration.CurrentConfig.Api.Enabled
		if enabled {
			// === REST API
			rest := api.CreateRestService()
			rest.Use(echoprometheus.NewMiddleware("pid2go_api"))
			addr := fmt.Sprintf("%s:%d", configuration.CurrentConfig.Api.Host, configuration.CurrentConfig.Api.Port)
			addServer(&g, "api", rest, addr)
		}
	}
	{
		// === loop controllers
		for _, loopController := range controllers {
			c := loopController

			g.Add(func() error {
				err := c.Run(ctx)
				ui.Info("Controller for loop %s stopped.", c.GetId())
				return err
			}, func(err error) {
				cancel()
				if err != nil {
					ui.Warning("Something went wrong: %v", err)
				}
			})
		}
	}
	{
		// === operator keyboard
		if source, ok := controller.EventSourceMap.Get(consoleLoop); ok && len(consoleLoop) > 0 {
			// the listener cannot be interrupted, it ends with the process
			go func() {
				if err := operator.ListenKeyboard(source); err != nil {
					ui.Warning("Keyboard input is not available: %v", err)
				}
			}()
		}
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			select {
			case <-sig:
				ui.Info("Received SIGTERM signal, exiting...")
			case <-ctx.Done():
			}
			return nil
		}, func(err error) {
			signal.Stop(sig)
			cancel()
		})
	}

	err = g.Run()
	serialport.CloseAll()
	if err != nil {
		ui.Error("%v", err)
		os.Exit(1)
	} else {
		ui.Info("Done.")
		os.Exit(0)
	}
}

// addServer runs the given webserver as a member of the run group
func addServer(g *run.Group, name string, server *echo.Echo, addr string) {
	g.Add(func() error {
		ui.Info("Starting %s server on %s", name, addr)
		err := server.Start(addr)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			ui.Error("Cannot start %s server (%s)", name, err.Error())
		}
		return err
	}, func(err error) {
		ui.Info("Stopping %s server...", name)
		timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer timeoutCancel()
		if err := server.Shutdown(timeoutCtx); err != nil {
			ui.Warning("Error stopping %s server: %v", name, err)
		} else {
			ui.Info("%s server stopped.", name)
		}
	})
}

// findConsoleLoop returns the id of the loop shown on the console
func findConsoleLoop(config configuration.Configuration) string {
	if len(config.Console.Loop) > 0 {
		return config.Console.Loop
	}
	for _, loopConfig := range config.Loops {
		loopType, err := loopConfig.Type.Parse()
		if err == nil && loopType.IsExecuted() {
			return loopConfig.ID
		}
	}
	return ""
}

// InitializeControllers creates a controller for each executable loop and registers
// its event queue. The loop with id consoleLoop is rendered on the terminal.
func InitializeControllers(config configuration.Configuration, pers persistence.Persistence, consoleLoop string) ([]controller.LoopController, error) {
	exporter := trend.NewCsvExporter(config.ExportDir)

	var result []controller.LoopController
	for _, loopConfig := range config.Loops {
		loopType, err := loopConfig.Type.Parse()
		if err != nil {
			return nil, fmt.Errorf("unable to process loop configuration %s: %w", loopConfig.ID, err)
		}
		if !loopType.IsExecuted() {
			ui.Warning("Loop %s: %s loops are not executed, skipping", loopConfig.ID, loopType)
			continue
		}

		deps, err := controller.NewDependencies(loopConfig, config.TrendWidth)
		if err != nil {
			return nil, fmt.Errorf("unable to process loop configuration %s: %w", loopConfig.ID, err)
		}

		source := operator.NewChannelSource(operator.DefaultQueueSize)
		controller.EventSourceMap.Set(loopConfig.ID, source)

		deps.Events = source
		deps.Exporter = exporter
		deps.Persistence = pers
		deps.ScanDelay = config.ScanDelay
		if loopConfig.ID == consoleLoop {
			terminal, err := display.NewTerminalDisplay()
			if err != nil {
				ui.Warning("Cannot show loop %s on the terminal: %v", loopConfig.ID, err)
			} else {
				deps.Display = terminal
			}
		}

		if loopType == pid.LoopTypeSimulation {
			ui.Info("Loop %s: simulating the process", loopConfig.ID)
		}

		result = append(result, controller.NewLoopController(deps))
	}

	return result, nil
}
