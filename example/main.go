// Command example simulates a complete in-process election: a trusted dealer
// preprocesses a set of tally nodes, voters mask their ballots concurrently,
// the CBOR-encoded votes are broadcast to every node, and the nodes' shares
// are combined into the final tally.
package main

import (
	"crypto/rand"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/veilvote/veilvote/pkg/nmc"
	"github.com/veilvote/veilvote/pkg/pool"
	"github.com/veilvote/veilvote/pkg/voting"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML election description")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := run(log, cfg); err != nil {
		log.Fatal().Err(err).Msg("election failed")
	}
}

func run(log zerolog.Logger, cfg Config) error {
	nodes := make([]*voting.Node, cfg.Nodes)
	for i := range nodes {
		nodes[i] = voting.NewNode()
	}

	if err := voting.Preprocess(rand.Reader, nodes, len(cfg.Ballots), cfg.Choices); err != nil {
		return err
	}
	log.Info().
		Hex("sid", nodes[0].SID()).
		Int("nodes", cfg.Nodes).
		Int("votes", len(cfg.Ballots)).
		Int("choices", cfg.Choices).
		Msg("preprocessing complete")

	// Voters act concurrently: each collects masks from every node, builds a
	// masked ballot, and broadcasts its wire form.
	encoded := make([][]byte, len(cfg.Ballots))
	var voters errgroup.Group
	for v := range cfg.Ballots {
		v := v
		voters.Go(func() error {
			req := voting.NewRequest(v)
			masks := make([][]nmc.Masks, len(nodes))
			for k, node := range nodes {
				m, err := node.Masks(req)
				if err != nil {
					return err
				}
				masks[k] = m
			}
			vote, err := voting.NewVote(req, masks, cfg.Ballots[v])
			if err != nil {
				return err
			}
			data, err := vote.MarshalBinary()
			if err != nil {
				return err
			}
			encoded[v] = data
			return nil
		})
	}
	if err := voters.Wait(); err != nil {
		return err
	}
	log.Info().Int("votes", len(encoded)).Msg("ballots broadcast")

	// Every node receives the same batch and computes its share.
	votes := make([]voting.Vote, len(encoded))
	for v, data := range encoded {
		if err := votes[v].UnmarshalBinary(data); err != nil {
			return err
		}
	}

	pl := pool.NewPool(0)
	defer pl.TearDown()

	shares := make([]voting.Share, len(nodes))
	for k, node := range nodes {
		share, err := node.Outcome(pl, votes)
		if err != nil {
			return err
		}
		shares[k] = share
	}

	tally, err := voting.Reveal(shares)
	if err != nil {
		return err
	}
	log.Info().Ints("tally", tally).Msg("election revealed")
	return nil
}
