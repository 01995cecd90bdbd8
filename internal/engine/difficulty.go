package engine

import (
	"fmt"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/duke-git/lancet/v2/slice"
)

// difficultyTargets maps each recognized difficulty label to the
// number of empty cells the generator carves out of a full solution.
var difficultyTargets = map[string]int{
	"easy":   30,
	"medium": 40,
	"hard":   50,
	"expert": 60,
}

// Difficulties returns the recognized difficulty labels sorted
// alphabetically.
func Difficulties() []string {
	labels := maputil.Keys(difficultyTargets)
	slice.Sort(labels)
	return labels
}

// checkDifficulty rejects labels outside the recognized set.
func checkDifficulty(label string) error {
	if _, ok := difficultyTargets[label]; !ok {
		return fmt.Errorf("%q is not a valid difficulty, expected one of: %s",
			label, strings.Join(Difficulties(), ", "))
	}
	return nil
}
