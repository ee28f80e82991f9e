// meta/meta.go
package meta

import "time"

// DEFAULT_TIMEOUT is the search budget per move when none is given.
const DEFAULT_TIMEOUT = 200 * time.Millisecond

// GAMES defines the number of games per experiment matchup.
const GAMES = 10

// PARALLEL_GAMES defines how many experiment games run at once.
const PARALLEL_GAMES = 4

// RESULTS_DIR is where experiment CSV files are written.
const RESULTS_DIR = "results"

// RANDOM_SEED seeds the random baseline agent.
const RANDOM_SEED = 1
