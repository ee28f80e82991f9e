package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"minimax/agent"
	"minimax/engine"
	"minimax/experiments"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"minimax/player"

	pkgerrors "github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	timeout    time.Duration
	side       game.Player
	evaluator  string
	experiment string
	games      int
	out        string
	debug      bool
	profile    bool
}

func main() {
	mode := flag.String("mode", "play", "One of play, selfplay or experiment")
	timeout := flag.String("timeout", strconv.FormatFloat(meta.DEFAULT_TIMEOUT.Seconds(), 'f', -1, 64), "Search time per move in seconds")
	side := flag.String("side", "circle", "Side played by the human in play mode (circle moves first)")
	evaluator := flag.String("evaluator", agent.DefaultEvaluator, "Position evaluator: outcome or lines")
	experiment := flag.String("experiment", "strength", "Experiment to run: strength or depth")
	games := flag.Int("games", meta.GAMES, "Number of games per experiment matchup")
	out := flag.String("out", meta.RESULTS_DIR, "Directory for experiment results")
	debug := flag.Bool("debug", false, "Log every search depth")
	prof := flag.Bool("profile", false, "Write a CPU profile of the run")
	flag.Parse()

	cfg, err := parseConfig(*mode, *timeout, *side, *evaluator, *experiment, *games, *out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg.debug = *debug
	cfg.profile = *prof

	setupLogging(cfg.debug)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msgf("%s failed", cfg.mode)
		stop()
		os.Exit(1)
	}
}

func setupLogging(debug bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func parseConfig(mode, timeout, side, evaluator, experiment string, games int, out string) (config, error) {
	cfg := config{
		mode:       mode,
		evaluator:  evaluator,
		experiment: experiment,
		games:      games,
		out:        out,
	}

	switch mode {
	case "play", "selfplay", "experiment":
	default:
		return cfg, pkgerrors.Errorf("unknown mode %q: use play, selfplay or experiment", mode)
	}

	var err error
	cfg.timeout, err = parseTimeout(timeout)
	if err != nil {
		return cfg, err
	}
	cfg.side, err = game.ParsePlayer(side)
	if err != nil {
		return cfg, pkgerrors.Wrap(err, "invalid side")
	}
	if _, err := game.EvaluatorByName(evaluator); err != nil {
		return cfg, pkgerrors.Wrap(err, "invalid evaluator")
	}
	if mode == "experiment" {
		if experiment != "strength" && experiment != "depth" {
			return cfg, pkgerrors.Errorf("unknown experiment %q: use strength or depth", experiment)
		}
		if games <= 0 {
			return cfg, pkgerrors.Errorf("number of games must be positive, got %d", games)
		}
	}
	return cfg, nil
}

// parseTimeout reads a positive number of seconds.
func parseTimeout(text string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(err, "invalid timeout %q", text)
	}
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return 0, pkgerrors.Errorf("invalid timeout %q: must be a positive number of seconds", text)
	}
	if seconds >= float64(math.MaxInt64)/float64(time.Second) {
		return 0, pkgerrors.Errorf("invalid timeout %q: too large", text)
	}
	timeout := time.Duration(seconds * float64(time.Second))
	if timeout <= 0 {
		return 0, pkgerrors.Errorf("invalid timeout %q: too small", text)
	}
	return timeout, nil
}

func run(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	if cfg.profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	switch cfg.mode {
	case "selfplay":
		return selfPlay(ctx, cfg, out)
	case "experiment":
		return runExperiment(ctx, cfg, out)
	default:
		return play(ctx, cfg, in, out)
	}
}

func searchConfig(cfg config) metrics.AgentConfig {
	return metrics.AgentConfig{
		Kind:      metrics.SearchAgent,
		Timeout:   cfg.timeout,
		Evaluator: cfg.evaluator,
	}
}

// play runs a game between a person on the console and the search agent. The
// person moves first.
func play(ctx context.Context, cfg config, in io.Reader, out io.Writer) error {
	machine, err := agent.FromConfig(searchConfig(cfg), 0)
	if err != nil {
		return err
	}
	var human agent.Agent = player.NewHuman(in, out)

	agents := [2]agent.Agent{human, machine}
	if cfg.side == game.Cross {
		agents = [2]agent.Agent{machine, human}
	}

	e := engine.LocalEngine(agents, game.NewBoard(cfg.side))
	e.OnMove = func(p game.Player, move game.Move, _ game.Board) {
		if p != cfg.side {
			fmt.Fprintf(out, "Machine played %s\n", move)
		}
	}

	winner, _, _, err := e.Run(ctx)
	if errors.Is(err, agent.ErrNoMove) {
		fmt.Fprintln(out, "The machine could not find a move in time, try a larger -timeout")
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, e.State)
	switch winner {
	case game.None:
		fmt.Fprintln(out, "Draw!")
	case cfg.side:
		fmt.Fprintln(out, "You won!")
	default:
		fmt.Fprintln(out, "You lost!")
	}
	return nil
}

// selfPlay lets the search agent play both sides and prints every position.
func selfPlay(ctx context.Context, cfg config, out io.Writer) error {
	var agents [2]agent.Agent
	for i := range agents {
		a, err := agent.FromConfig(searchConfig(cfg), i)
		if err != nil {
			return err
		}
		agents[i] = a
	}

	e := engine.LocalEngine(agents, game.NewBoard(game.Circle))
	e.OnMove = func(p game.Player, move game.Move, board game.Board) {
		fmt.Fprintf(out, "%s plays %s\n%s\n", p, move, board)
	}

	winner, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if winner == game.None {
		fmt.Fprintf(out, "Draw after %d moves\n", gameMetric.TotalMoves)
	} else {
		fmt.Fprintf(out, "%s wins after %d moves\n", winner, gameMetric.TotalMoves)
	}
	return nil
}

func runExperiment(ctx context.Context, cfg config, out io.Writer) error {
	setup := experiments.DefaultSetup()
	setup.Root = cfg.out
	setup.NumGames = cfg.games

	runner := experiments.RunStrengthExperiment
	if cfg.experiment == "depth" {
		runner = experiments.RunDepthExperiment
	}

	dir, err := runner(ctx, setup)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Results written to %s\n", dir)
	return nil
}
