package main

import (
	"fmt"
	"strconv"
)

// parseVars converts the string-valued --var flags collected by pflag
// into the int-valued placeholder map the dice engine expects.
func parseVars(raw map[string]string) (map[string]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	variables := make(map[string]int, len(raw))
	for name, value := range raw {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("--var %s=%s: value must be an integer", name, value)
		}
		variables[name] = n
	}
	return variables, nil
}
