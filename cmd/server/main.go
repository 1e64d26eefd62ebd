package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"verdant-server/internal/agent"
	"verdant-server/internal/config"
	"verdant-server/internal/engine"
	"verdant-server/internal/observe"
	"verdant-server/internal/server"
	"verdant-server/internal/version"
	"verdant-server/pkg/logger"
	"verdant-server/pkg/strain"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		configPath string
		seed       int64
		initial    int
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config (optional)")
	flag.Int64Var(&seed, "seed", 0, "Phenotype RNG seed (0 for random)")
	flag.IntVar(&initial, "plants", 3, "Number of starter plants")
	flag.Parse()

	logger.Log.Info("Starting Verdant Server...")
	logger.Log.Info(version.String())

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			logger.Log.Fatal("Config error: ", err)
		}
		cfg = loaded
	}
	if cfg.Server.LogLevel != "" {
		if level, err := logrus.ParseLevel(string(cfg.Server.LogLevel)); err == nil {
			logger.Log.SetLevel(level)
		}
	}
	if seed != 0 {
		cfg.Sim.Seed = seed
	}

	if port := os.Getenv("VS_PORT"); port != "" {
		cfg.Server.Port = port
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Метрики (экспорт через /metrics)
	shutdownMetrics, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceName:    version.Service,
		ServiceVersion: version.String(),
	})
	if err != nil {
		logger.Log.Fatal("Metrics init error: ", err)
	}
	metrics, err := observe.Default()
	if err != nil {
		logger.Log.Fatal("Metrics init error: ", err)
	}

	// 3. Каталог сортов: встроенные + YAML
	catalog := strain.NewCatalog()
	for _, sc := range cfg.Strains {
		if err := catalog.Add(sc.Strain()); err != nil {
			logger.Log.Fatal("Strain catalog error: ", err)
		}
	}

	// 4. Ядро симуляции
	ecfg := cfg.EngineConfig()
	logger.Log.Infof("🎲 Master Seed: %d", ecfg.Seed)

	sim := engine.NewService(ecfg, catalog, nil)
	sim.SetMetrics(metrics)
	sim.Bus().Subscribe(metrics.ObserveEvent)

	// Стартовая посадка: ротация по каталогу
	ids := catalog.IDs()
	for i := 0; i < initial && len(ids) > 0; i++ {
		if _, err := sim.AddPlant(ids[i%len(ids)], 1, ""); err != nil {
			logger.Log.Warn("Starter plant error: ", err)
		}
	}

	// 5. Агент автоматизации живет внутри тик-цикла
	agent.New(sim).Attach()

	// 6. Запуск: цикл симуляции + HTTP
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sim.RunLoop(gctx)
		return nil
	})
	g.Go(func() error {
		return server.New(sim, cfg.Server.Port).Run(gctx)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Error("Server error: ", err)
	}

	logger.Log.Info("Shutting down...")
	if err := shutdownMetrics(context.Background()); err != nil {
		logger.Log.Warn("Metrics shutdown: ", err)
	}
	logger.Log.Info("Done.")
}
