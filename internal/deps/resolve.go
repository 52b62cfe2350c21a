package deps

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsatisfiable tags every resolution failure, so callers can
// branch with errors.Is without caring which requirement broke.
var ErrUnsatisfiable = errors.New("unsatisfiable requirement")

// UnsatisfiableError reports a requirement no indexed version meets.
// It carries enough to print the constraints next to what was
// available, which is usually all a user needs to fix a pin.
type UnsatisfiableError struct {
	Requirement Requirement
	Available   []string
}

func (e *UnsatisfiableError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("package %s is not in the version index", e.Requirement.Name)
	}
	return fmt.Sprintf("no version of %s satisfies %s (available: %s)",
		e.Requirement.Name, e.Requirement.String(), strings.Join(e.Available, ", "))
}

func (e *UnsatisfiableError) Unwrap() error { return ErrUnsatisfiable }

// Resolve merges the requirements and picks, per package, the highest
// indexed version satisfying every constraint. Packages resolve
// independently and in name order, so the same inputs always produce
// the same lockfile. The first unsatisfiable requirement aborts
// resolution.
func Resolve(reqs []Requirement, idx *Index) (*Lockfile, error) {
	merged := Merge(reqs)
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })

	lock := &Lockfile{}
	for _, req := range merged {
		available, ok := idx.Versions(req.Name)
		if !ok {
			return nil, &UnsatisfiableError{Requirement: req}
		}

		picked := ""
		for _, v := range available { // ascending, so the last hit wins
			if req.Satisfies(v) {
				picked = v
			}
		}
		if picked == "" {
			return nil, &UnsatisfiableError{Requirement: req, Available: available}
		}

		lock.Packages = append(lock.Packages, LockedPackage{
			Name:    req.Name,
			Version: picked,
		})
	}
	return lock, nil
}
