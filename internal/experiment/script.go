package experiment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/orbitsim/internal/input"
	"github.com/san-kum/orbitsim/internal/sim"
)

// Script schedules commands by the 1-based tick that consumes them.
type Script map[int][]input.Command

// ParseScript reads entries of the form "TICK:COMMAND", e.g.
// "120:speed-up". Entries sharing a tick keep their order.
func ParseScript(entries []string) (Script, error) {
	s := make(Script)
	for _, e := range entries {
		tickStr, name, ok := strings.Cut(strings.TrimSpace(e), ":")
		if !ok {
			return nil, fmt.Errorf("script entry %q: want TICK:COMMAND", e)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("script entry %q: bad tick", e)
		}
		cmd, ok := input.ParseCommand(name)
		if !ok {
			return nil, fmt.Errorf("script entry %q: unknown command %q", e, name)
		}
		s[tick] = append(s[tick], cmd)
	}
	return s, nil
}

// Source feeds the script to c, keyed on the tick about to run.
func (s Script) Source(c *sim.Controller) sim.Source {
	return sim.SourceFunc(func() []input.Command {
		return s[c.Ticks()+1]
	})
}

func (s Script) String() string {
	ticks := make([]int, 0, len(s))
	for t := range s {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)

	var parts []string
	for _, t := range ticks {
		for _, c := range s[t] {
			parts = append(parts, fmt.Sprintf("%d:%s", t, c))
		}
	}
	return strings.Join(parts, " ")
}
