package main

import (
	"errors"
	"io"
	"os"
	"time"

	"rampart/communication"
	"rampart/config"
	"rampart/engine"
	"rampart/experiments/metrics"
	"rampart/game"
	"rampart/meta"
	"rampart/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	if err := config.Load(meta.CONFIG_DIR); err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	conf, err := config.Get()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	// The match server owns stdout for commands, so logs go to stderr.
	log.Logger = log.Output(os.Stderr)
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	seed := uint64(time.Now().UnixNano())
	rand.Seed(seed)
	log.Info().Uint64("seed", seed).Msg("starting match")

	comm := communication.NewStdio(os.Stdin, os.Stdout)
	if err := run(comm, conf); err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
}

func run(comm communication.Communicator, conf config.Config) error {
	// The first frame is the one-time match configuration.
	raw, err := comm.ReadFrame()
	if err != nil {
		return err
	}
	cfg, err := game.ParseMatchConfig(raw)
	if err != nil {
		return err
	}

	agent := strategy.New(cfg, conf)
	collector := metrics.NewDummyCollector()
	if conf.RecordPath != "" {
		collector = metrics.NewCollector()
	}
	agent.SetCollector(collector)

	for {
		raw, err := comm.ReadFrame()
		if errors.Is(err, io.EOF) {
			log.Warn().Msg("frame stream closed without an end frame")
			return writeRecords(conf, collector)
		}
		if err != nil {
			return err
		}

		kind, err := game.PeekFrameKind(raw)
		if err != nil {
			log.Error().Err(err).Msg("unroutable frame")
			continue
		}

		switch kind {
		case game.TurnFrame:
			snap, err := game.ParseSnapshot(cfg, raw)
			if err != nil {
				log.Error().Err(err).Msg("rejected turn frame")
				continue
			}
			if snap.Turn > meta.MAX_TURNS {
				log.Warn().Int("turn", snap.Turn).Msg("turn counter past server cap")
			}
			eng := engine.NewMatchEngine(cfg, snap, comm)
			if err := agent.PlayTurn(eng); err != nil {
				return err
			}

		case game.ActionFrame:
			batch, err := game.ParseEventBatch(raw)
			if err != nil {
				// A misparsed batch would corrupt breach ownership,
				// so the whole batch is dropped.
				log.Error().Err(err).Msg("rejected event batch")
				continue
			}
			agent.OnEventBatch(batch)

		case game.EndFrame:
			log.Info().Int("scoredOn", len(agent.ScoredOn())).Msg("match over")
			return writeRecords(conf, collector)

		default:
			log.Warn().Int("kind", int(kind)).Msg("unknown frame kind")
		}
	}
}

func writeRecords(conf config.Config, collector metrics.Collector) error {
	records := collector.Records()
	if conf.RecordPath == "" || len(records) == 0 {
		return nil
	}
	writer, err := metrics.NewWriter(conf.RecordPath)
	if err != nil {
		return err
	}
	return writer.WriteTurnRecords(records)
}
