package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"minimax/agent"
	"minimax/experiments/metrics"
	"minimax/game"

	"github.com/rs/zerolog/log"
)

type Local struct {
	State  game.Board
	Agents [2]agent.Agent // Agents[0] plays game.Circle, Agents[1] plays game.Cross
	// OnMove, if set, is called after every move with the new board.
	OnMove func(player game.Player, move game.Move, board game.Board)
	// Forfeit ends the game as a loss for a player whose agent returns
	// agent.ErrNoMove, instead of failing the run.
	Forfeit bool
}

func LocalEngine(agents [2]agent.Agent, start game.Board) *Local {
	if agents[0] == nil || agents[1] == nil {
		panic("need an agent for each player")
	}
	return &Local{
		State:  start,
		Agents: agents,
	}
}

// Run executes the entire game loop until the game is over.
func (e *Local) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	startTime := time.Now()
	starting := e.State.ToPlay()
	gameMetric := metrics.GameMetric{
		StartingPlayer: starting.String(),
		StartTime:      startTime,
	}

	log.Info().Msgf("player %s is starting", starting)

	var moveMetrics []metrics.MoveMetric
	forfeited := game.None
	step := 1
	for !e.State.Over() && step <= MaxMoves {
		player := e.State.ToPlay()

		move, metric, err := e.agentFor(player).FindMove(ctx, e.State)
		if e.Forfeit && errors.Is(err, agent.ErrNoMove) {
			log.Warn().Msgf("player %s found no move and forfeits", player)
			forfeited = player
			break
		}
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("player %s failed to find a move: %w", player, err)
		}

		next, err := e.State.Play(move)
		if err != nil {
			return game.None, gameMetric, moveMetrics, fmt.Errorf("player %s played %s: %w", player, move, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player.String(),
			SearchMetric: metric,
		})

		log.Debug().Msgf("player %s played %s (depth %d, %d nodes)", player, move, metric.Depth, metric.Nodes)

		e.State = next
		if e.OnMove != nil {
			e.OnMove(player, move, next)
		}
		step++
	}

	winner := e.State.Winner()
	if forfeited != game.None {
		winner = forfeited.Opponent()
		gameMetric.Forfeit = true
	}
	endTime := time.Now()
	gameMetric.EndTime = endTime
	gameMetric.Duration = endTime.Sub(startTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.None {
		gameMetric.Winner = winner.String()
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game over after %d moves, draw", gameMetric.TotalMoves)
	}

	return winner, gameMetric, moveMetrics, nil
}

func (e *Local) agentFor(player game.Player) agent.Agent {
	if player == game.Circle {
		return e.Agents[0]
	}
	return e.Agents[1]
}
