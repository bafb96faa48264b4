package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/bounce-arena/input"
)

// scriptStep holds a key set for a duration in seconds
type scriptStep struct {
	Keys     input.KeySet
	Duration float64
}

// parseScript reads "right:1.0,up+left:0.5,idle:0.2" into steps
// "idle" or an empty key list holds nothing
func parseScript(s string) ([]scriptStep, error) {
	var steps []scriptStep
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keysPart, durPart, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("script step %q: missing ':duration'", part)
		}
		dur, err := strconv.ParseFloat(strings.TrimSpace(durPart), 64)
		if err != nil || dur < 0 {
			return nil, fmt.Errorf("script step %q: bad duration", part)
		}

		var keys input.KeySet
		keysPart = strings.TrimSpace(keysPart)
		if keysPart != "" && !strings.EqualFold(keysPart, "idle") {
			for _, name := range strings.Split(keysPart, "+") {
				k, ok := input.ParseKey(name)
				if !ok {
					return nil, fmt.Errorf("script step %q: unknown key %q", part, name)
				}
				keys.Press(k)
			}
		}
		steps = append(steps, scriptStep{Keys: keys, Duration: dur})
	}
	return steps, nil
}
