// generator subscribes to topology.requested, runs the generation
// pipeline (prompt → inference backend → sanitize → validate), and
// publishes topology.generated or topology.failed.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/lft-ai/lftgen/shared/backend"
	"github.com/lft-ai/lftgen/shared/config"
	"github.com/lft-ai/lftgen/shared/events"
	"github.com/lft-ai/lftgen/shared/gen"
	"github.com/lft-ai/lftgen/shared/lfterr"
	"github.com/lft-ai/lftgen/shared/mq"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	b, err := backend.New(cfg.BackendConfig(), log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("backend init")
	}
	svc := gen.New(b, gen.WithLogger(log.Logger))

	broker, err := mq.New(cfg.AMQPURL)
	if err != nil {
		log.Fatal().Err(err).Msg("mq connect")
	}
	defer broker.Close()

	deliveries, err := broker.Subscribe("svc.generator", events.TopologyRequested)
	if err != nil {
		log.Fatal().Err(err).Msg("subscribe")
	}

	log.Info().Str("backend", cfg.Variant).Str("model", cfg.Model).
		Int("workers", cfg.Workers).Msg("generator service started")

	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() { <-sigs; cancel() }()

	// Fan-out: the workers share one backend handle. The remote client is
	// safe for concurrent use; the local model is not, so LFTGEN_WORKERS
	// should be 1 for the local variant.
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case d, ok := <-deliveries:
					if !ok {
						return nil
					}
					if err := handle(ctx, d, broker, svc, cfg.Model); err != nil {
						log.Error().Err(err).Msg("generator error")
						d.Nack(false, true)
					} else {
						d.Ack(false)
					}
				}
			}
		})
	}
	_ = g.Wait()
}

func handle(ctx context.Context, d amqp.Delivery, broker *mq.Broker, svc *gen.Service, model string) error {
	p, err := events.Unwrap[events.TopologyRequestedPayload](d.Body)
	if err != nil {
		return err
	}

	log.Info().Str("job", p.JobID).Str("description", p.Description).Msg("generating topology")

	started := time.Now()
	art, err := generate(ctx, svc, p)
	if err != nil {
		b, _ := events.Wrap(events.TopologyFailed, events.TopologyFailedPayload{
			JobID:       p.JobID,
			Description: p.Description,
			Error:       err.Error(),
			Kind:        lfterr.CauseKind(err).String(),
		})
		return broker.Publish(ctx, events.TopologyFailed, b)
	}

	b, _ := events.Wrap(events.TopologyGenerated, events.TopologyGeneratedPayload{
		JobID:       p.JobID,
		Description: p.Description,
		Code:        art.Code,
		Valid:       art.Valid,
		Model:       model,
		OutputPath:  p.OutputPath,
		ElapsedMS:   time.Since(started).Milliseconds(),
	})
	return broker.Publish(ctx, events.TopologyGenerated, b)
}

func generate(ctx context.Context, svc *gen.Service, p *events.TopologyRequestedPayload) (gen.Artifact, error) {
	if p.Description == "" {
		return gen.Artifact{}, lfterr.New(lfterr.KindConfiguration, "empty topology description")
	}
	art, err := svc.Generate(ctx, p.Description)
	if err != nil {
		return gen.Artifact{}, err
	}
	if p.OutputPath != "" {
		if _, err := svc.Persist(art, p.OutputPath); err != nil {
			return gen.Artifact{}, err
		}
	}
	return art, nil
}
